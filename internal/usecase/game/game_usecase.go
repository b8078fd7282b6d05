package game

import (
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/lock"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"github.com/lsgame/roomsvc/internal/infrastructure/metrics"
	"gorm.io/gorm"
)

// GameUseCase implements the game lifecycle primitives. Starting a game
// freezes the room's membership behind player rows; finishing it tears the
// player rows down and hands the stat awards to the outbox.
type GameUseCase struct {
	roomRepo   domain.RoomRepository
	userRepo   domain.UserRepository
	playerRepo domain.PlayerRepository
	outboxRepo domain.OutboxRepository
	db         *gorm.DB
	logger     *logger.Logger
	locks      *lock.UserLockManager
	metrics    *metrics.Metrics
}

// NewGameUseCase creates a new game usecase
func NewGameUseCase(
	roomRepo domain.RoomRepository,
	userRepo domain.UserRepository,
	playerRepo domain.PlayerRepository,
	outboxRepo domain.OutboxRepository,
	db *gorm.DB,
	logger *logger.Logger,
	locks *lock.UserLockManager,
	metrics *metrics.Metrics,
) domain.GameUseCase {
	logger.Info("GameUseCase initialized successfully")
	return &GameUseCase{
		roomRepo:   roomRepo,
		userRepo:   userRepo,
		playerRepo: playerRepo,
		outboxRepo: outboxRepo,
		db:         db,
		logger:     logger,
		locks:      locks,
		metrics:    metrics,
	}
}

// StartGame begins a game in the host's room with the given assignments
func (uc *GameUseCase) StartGame(hostID int64, assignments []domain.PlayerAssignment) error {
	return uc.startGame(hostID, assignments)
}

// FinishGame ends the game in the host's room and records the results
func (uc *GameUseCase) FinishGame(hostID int64, results []domain.PlayerResult) error {
	return uc.finishGame(hostID, results)
}
