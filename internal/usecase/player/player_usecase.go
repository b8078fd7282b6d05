package player

import (
	"context"
	"time"

	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/lock"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PlayerUseCase implements the in-game player operations. Mutations
// serialize on the player's user lock, so two commands for the same player
// cannot both observe the pre-transition row.
type PlayerUseCase struct {
	playerRepo domain.PlayerRepository
	db         *gorm.DB
	logger     *logger.Logger
	locks      *lock.UserLockManager
}

// NewPlayerUseCase creates a new player usecase
func NewPlayerUseCase(
	playerRepo domain.PlayerRepository,
	db *gorm.DB,
	logger *logger.Logger,
	locks *lock.UserLockManager,
) domain.PlayerUseCase {
	logger.Info("PlayerUseCase initialized successfully")
	return &PlayerUseCase{
		playerRepo: playerRepo,
		db:         db,
		logger:     logger,
		locks:      locks,
	}
}

// GetPlayer returns the player row for a user in a running game
func (uc *PlayerUseCase) GetPlayer(userID int64) (*domain.Player, error) {
	player, err := uc.playerRepo.GetByUserID(userID)
	if err != nil {
		uc.logger.Error("Failed to get player from database", zap.Int64("userID", userID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player from DB", 500, err)
	}
	if player == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodePlayerNotFound, "Player")
	}
	return player, nil
}

// UseItem consumes the player's held item and returns the updated row.
// Using an absent or spent item fails loudly rather than silently.
func (uc *PlayerUseCase) UseItem(userID int64) (*domain.Player, error) {
	return uc.mutatePlayer(userID, func(p *domain.Player) error {
		return p.UseItem()
	})
}

// EliminatePlayer marks the player as dead and returns the updated row
func (uc *PlayerUseCase) EliminatePlayer(userID int64) (*domain.Player, error) {
	return uc.mutatePlayer(userID, func(p *domain.Player) error {
		p.Eliminate()
		return nil
	})
}

// mutatePlayer applies one state transition to a player row under the
// user's lock and a database transaction
func (uc *PlayerUseCase) mutatePlayer(userID int64, mutate func(*domain.Player) error) (*domain.Player, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := uc.locks.Lock(ctx, userID); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to acquire user lock", 500, err)
	}
	defer uc.locks.Unlock(userID)

	tx := uc.db.Begin()
	if tx.Error != nil {
		uc.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}
	txPlayerRepo := uc.playerRepo.WithTransaction(tx)

	player, err := txPlayerRepo.GetByUserID(userID)
	if err != nil {
		tx.Rollback()
		uc.logger.Error("Failed to get player from database", zap.Int64("userID", userID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player from DB", 500, err)
	}
	if player == nil {
		tx.Rollback()
		return nil, domain.NewNotFoundError(domain.ErrCodePlayerNotFound, "Player")
	}

	if err := mutate(player); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := txPlayerRepo.Update(player); err != nil {
		tx.Rollback()
		uc.logger.Error("Failed to update player", zap.Int64("userID", userID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to update player", 500, err)
	}

	if err := tx.Commit().Error; err != nil {
		uc.logger.Error("Failed to commit database transaction", zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}

	return player, nil
}
