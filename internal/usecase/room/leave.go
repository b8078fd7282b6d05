package room

import (
	"github.com/lsgame/roomsvc/internal/domain"
	"go.uber.org/zap"
)

// leaveRoom removes the user from their current room. Hosts cannot leave
// their own room, and a user with a player row is part of a running game's
// cast and stays seated until the game finishes. Members outside the cast
// may leave at any time.
func (uc *RoomUseCase) leaveRoom(userID int64) error {
	uc.logger.Info("Leaving room", zap.Int64("userID", userID))

	if err := uc.lockUser(userID); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to acquire user lock", 500, err)
	}
	defer uc.locks.Unlock(userID)

	tx, _, txUserRepo, txPlayerRepo, err := uc.setupTransactionDB()
	if err != nil {
		return err
	}

	user, err := uc.getUser(txUserRepo, userID)
	if err != nil {
		return uc.rollbackTransaction(tx, err)
	}

	player, err := txPlayerRepo.GetByUserID(userID)
	if err != nil {
		return uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player from DB", 500, err))
	}

	if err := uc.checkLeavePreconditions(user, player); err != nil {
		return uc.rollbackTransaction(tx, err)
	}

	if err := txUserRepo.SetRoomHost(userID, nil); err != nil {
		return uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to release user from room", 500, err))
	}

	if err := uc.commitTransaction(tx); err != nil {
		return err
	}

	uc.metrics.RoomLeaves.Inc()
	uc.logger.Info("User left room", zap.Int64("userID", userID), zap.Int64("hostID", *user.RoomHost))
	return nil
}
