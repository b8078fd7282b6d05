package room

import (
	"github.com/lsgame/roomsvc/internal/domain"
	"go.uber.org/zap"
)

// joinRoom adds the user to the room keyed by hostID. The room is locked
// first, then the joiner's row; a joiner who already occupies any room is
// rejected, which keeps the one-room-per-user invariant under races.
func (uc *RoomUseCase) joinRoom(userID, hostID int64) (*domain.RoomInfo, error) {
	uc.logger.Info("Joining room", zap.Int64("userID", userID), zap.Int64("hostID", hostID))

	handle, err := uc.resolveHostHandle(hostID)
	if err != nil {
		return nil, err
	}

	if err := uc.lockUser(userID); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to acquire user lock", 500, err)
	}
	defer uc.locks.Unlock(userID)

	tx, txRoomRepo, txUserRepo, txPlayerRepo, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	room, err := txRoomRepo.GetByHostIDForUpdate(hostID)
	if err != nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get room from DB", 500, err))
	}
	if room == nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewNotFoundError(domain.ErrCodeRoomNotFound, "Room"))
	}

	user, err := uc.getOrCreateUser(txUserRepo, userID)
	if err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}

	player, err := txPlayerRepo.GetByUserID(userID)
	if err != nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get player from DB", 500, err))
	}

	if err := uc.checkJoinPreconditions(room, user, player); err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}

	if err := txUserRepo.SetRoomHost(userID, &hostID); err != nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to seat user in room", 500, err))
	}

	memberCount, err := uc.countMembers(txUserRepo, hostID)
	if err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}

	if err := uc.commitTransaction(tx); err != nil {
		return nil, err
	}

	uc.metrics.RoomJoins.Inc()
	uc.logger.Info("User joined room", zap.Int64("userID", userID), zap.Int64("hostID", hostID))

	return uc.buildRoomInfo(room, handle, memberCount), nil
}
