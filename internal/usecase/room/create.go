package room

import (
	"time"

	"github.com/lsgame/roomsvc/internal/domain"
	"go.uber.org/zap"
)

// createRoom opens a new room hosted by the given user. A user who is
// hosting or occupying any room cannot open another one.
func (uc *RoomUseCase) createRoom(userID int64) (*domain.RoomInfo, error) {
	uc.logger.Info("Creating room", zap.Int64("userID", userID))

	handle, err := uc.resolveHandle(userID)
	if err != nil {
		return nil, err
	}

	if err := uc.lockUser(userID); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to acquire user lock", 500, err)
	}
	defer uc.locks.Unlock(userID)

	tx, txRoomRepo, txUserRepo, _, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	user, err := uc.getOrCreateUser(txUserRepo, userID)
	if err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}

	if err := uc.checkCreatePreconditions(user); err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}

	room := &domain.Room{
		HostID:    userID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := txRoomRepo.Create(room); err != nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create room", 500, err))
	}

	if err := txUserRepo.SetRoomHost(userID, &userID); err != nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to seat host in room", 500, err))
	}

	if err := uc.commitTransaction(tx); err != nil {
		return nil, err
	}

	uc.metrics.RoomsCreated.Inc()
	uc.metrics.ActiveRooms.Inc()
	uc.logger.Info("Room created", zap.Int64("hostID", userID))

	return uc.buildRoomInfo(room, handle, 1), nil
}
