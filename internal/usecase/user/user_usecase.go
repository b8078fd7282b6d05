package user

import (
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// UserUseCase implements domain.UserUseCase
type UserUseCase struct {
	userRepo domain.UserRepository
	logger   *logger.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(userRepo domain.UserRepository, logger *logger.Logger) domain.UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetProfile retrieves a user's lifetime counters. Counter rows are created
// lazily on first room interaction, so a user the service has never seen
// reads as a fresh zeroed profile rather than an error.
func (uc *UserUseCase) GetProfile(userID int64) (*domain.User, error) {
	if userID <= 0 {
		uc.logger.Warn("Invalid user ID provided", zap.Int64("user_id", userID))
		return nil, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid user ID", 400, nil)
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		uc.logger.Error("Failed to get user from database",
			zap.Int64("user_id", userID),
			zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user", 500, err)
	}

	if user == nil {
		return &domain.User{ID: userID}, nil
	}

	return user, nil
}
