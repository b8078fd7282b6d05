package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/lsgame/roomsvc/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// *****  Database Transaction Management

// setupTransactionDB sets up a database transaction with repositories
func (uc *GameUseCase) setupTransactionDB() (*gorm.DB, domain.RoomRepository, domain.UserRepository, domain.PlayerRepository, domain.OutboxRepository, error) {
	tx := uc.db.Begin()
	if tx.Error != nil {
		uc.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return nil, nil, nil, nil, nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	return tx,
		uc.roomRepo.WithTransaction(tx),
		uc.userRepo.WithTransaction(tx),
		uc.playerRepo.WithTransaction(tx),
		uc.outboxRepo.WithTransaction(tx),
		nil
}

// commitTransaction commits database transaction with error handling
func (uc *GameUseCase) commitTransaction(dbTx *gorm.DB) error {
	if err := dbTx.Commit().Error; err != nil {
		uc.logger.Error("Failed to commit database transaction", zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}
	return nil
}

// rollbackTransaction rolls back database transaction and passes the error through
func (uc *GameUseCase) rollbackTransaction(dbTx *gorm.DB, err error) error {
	dbTx.Rollback()
	return err
}

// lockUser acquires the host's lock for the duration of one operation
func (uc *GameUseCase) lockUser(userID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return uc.locks.Lock(ctx, userID)
}

// *****  Room Access

// getHostedRoomForUpdate loads the caller's room under row locks, verifying
// that the caller actually holds the host seat
func (uc *GameUseCase) getHostedRoomForUpdate(roomRepo domain.RoomRepository, userRepo domain.UserRepository, hostID int64) (*domain.Room, error) {
	host, err := userRepo.GetByIDForUpdate(hostID)
	if err != nil {
		uc.logger.Error("Failed to get host from database", zap.Int64("hostID", hostID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user from DB", 500, err)
	}
	if host == nil || !host.IsHosting() {
		return nil, domain.NewStateConflictError(domain.ErrCodeNotInRoom, "You are not hosting a room")
	}

	room, err := roomRepo.GetByHostIDForUpdate(hostID)
	if err != nil {
		uc.logger.Error("Failed to get room from database", zap.Int64("hostID", hostID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get room from DB", 500, err)
	}
	if room == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeRoomNotFound, "Room")
	}
	return room, nil
}

// *****  Outbox

// newEventID generates a random outbox event id
func newEventID() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// enqueueGameResult stores one player's award in the outbox. The event
// rides the same transaction as the player teardown.
func (uc *GameUseCase) enqueueGameResult(outboxRepo domain.OutboxRepository, result domain.PlayerResult) error {
	event := &domain.OutboxEvent{
		ID:   newEventID(),
		Type: domain.EventTypeGameResult,
		Data: domain.JSONB{
			"user_id": result.UserID,
			"won":     result.Won,
			"xp":      result.XP,
		},
		Status:    domain.EventStatusPending,
		CreatedAt: time.Now(),
	}
	if err := outboxRepo.Save(event); err != nil {
		uc.logger.Error("Failed to enqueue game result", zap.Int64("userID", result.UserID), zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to enqueue game result", 500, err)
	}
	return nil
}
