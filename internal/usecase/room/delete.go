package room

import (
	"github.com/lsgame/roomsvc/internal/domain"
	"go.uber.org/zap"
)

// deleteRoom closes the caller's room and releases every member in the same
// transaction, so no user row is left pointing at a vanished room. A room
// with a running game must finish it first.
func (uc *RoomUseCase) deleteRoom(hostID int64) error {
	uc.logger.Info("Deleting room", zap.Int64("hostID", hostID))

	if err := uc.lockUser(hostID); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to acquire user lock", 500, err)
	}
	defer uc.locks.Unlock(hostID)

	tx, txRoomRepo, txUserRepo, _, err := uc.setupTransactionDB()
	if err != nil {
		return err
	}

	host, err := uc.getUser(txUserRepo, hostID)
	if err != nil {
		return uc.rollbackTransaction(tx, err)
	}
	if host == nil || !host.IsHosting() {
		return uc.rollbackTransaction(tx,
			domain.NewStateConflictError(domain.ErrCodeNotInRoom, "You are not hosting a room"))
	}

	room, err := txRoomRepo.GetByHostIDForUpdate(hostID)
	if err != nil {
		return uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get room from DB", 500, err))
	}
	if room == nil {
		return uc.rollbackTransaction(tx,
			domain.NewNotFoundError(domain.ErrCodeRoomNotFound, "Room"))
	}
	if room.GameStarted() {
		return uc.rollbackTransaction(tx,
			domain.NewStateConflictError(domain.ErrCodeGameInProgress, "Finish the game before deleting the room"))
	}

	if err := txUserRepo.ClearRoomHostForRoom(hostID); err != nil {
		return uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to release room members", 500, err))
	}

	if err := txRoomRepo.Delete(hostID); err != nil {
		return uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to delete room", 500, err))
	}

	if err := uc.commitTransaction(tx); err != nil {
		return err
	}

	uc.metrics.RoomsDeleted.Inc()
	uc.metrics.ActiveRooms.Dec()
	uc.logger.Info("Room deleted", zap.Int64("hostID", hostID))
	return nil
}
