package room

import (
	"time"

	"github.com/lsgame/roomsvc/internal/domain"
	"go.uber.org/zap"
)

// transferHost re-keys the room from the current host to another member.
// Rooms are keyed by their host's id, so the transfer writes a new room row
// under the new key, re-points every member and player row, and drops the
// old row, all in one transaction. Game state carries over unchanged.
func (uc *RoomUseCase) transferHost(hostID, newHostID int64) (*domain.RoomInfo, error) {
	uc.logger.Info("Transferring host seat", zap.Int64("hostID", hostID), zap.Int64("newHostID", newHostID))

	if hostID == newHostID {
		return nil, domain.NewStateConflictError(domain.ErrCodeHostConflict, "You already hold the host seat")
	}

	handle, err := uc.resolveHandle(newHostID)
	if err != nil {
		return nil, err
	}
	if handle.IsBot {
		return nil, domain.NewNotFoundError(domain.ErrCodeUserNotFound, "User")
	}

	if err := uc.lockUserPair(hostID, newHostID); err != nil {
		return nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to acquire user locks", 500, err)
	}
	defer uc.locks.UnlockPair(hostID, newHostID)

	tx, txRoomRepo, txUserRepo, txPlayerRepo, err := uc.setupTransactionDB()
	if err != nil {
		return nil, err
	}

	host, err := uc.getUser(txUserRepo, hostID)
	if err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}
	if host == nil || !host.IsHosting() {
		return nil, uc.rollbackTransaction(tx,
			domain.NewStateConflictError(domain.ErrCodeNotInRoom, "You are not hosting a room"))
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

	newHost, err := uc.getUser(txUserRepo, newHostID)
	if err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}
	if newHost == nil || newHost.RoomHost == nil || *newHost.RoomHost != hostID {
		return nil, uc.rollbackTransaction(tx,
			domain.NewStateConflictError(domain.ErrCodeNotAMember, "That user is not in your room"))
	}

	newRoom := &domain.Room{
		HostID:    newHostID,
		GamePhase: room.GamePhase,
		GameRound: room.GameRound,
		GameTurn:  room.GameTurn,
		CreatedAt: room.CreatedAt,
		UpdatedAt: time.Now(),
	}
	if err := txRoomRepo.Create(newRoom); err != nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create re-keyed room", 500, err))
	}

	if err := txUserRepo.MoveRoomMembers(hostID, newHostID); err != nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to move room members", 500, err))
	}
	if err := txPlayerRepo.MoveRoomPlayers(hostID, newHostID); err != nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to move room players", 500, err))
	}

	if err := txRoomRepo.Delete(hostID); err != nil {
		return nil, uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to delete old room row", 500, err))
	}

	memberCount, err := uc.countMembers(txUserRepo, newHostID)
	if err != nil {
		return nil, uc.rollbackTransaction(tx, err)
	}

	if err := uc.commitTransaction(tx); err != nil {
		return nil, err
	}

	uc.metrics.HostTransfers.Inc()
	uc.logger.Info("Host seat transferred", zap.Int64("oldHostID", hostID), zap.Int64("newHostID", newHostID))

	return uc.buildRoomInfo(newRoom, handle, memberCount), nil
}
