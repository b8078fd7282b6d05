package room

import (
	"github.com/lsgame/roomsvc/internal/domain"
	"go.uber.org/zap"
)

// getRoomInfo looks up a room. With an explicit target the lookup is keyed
// by that host id; without one it falls back to the caller's current room.
// Lookups are read-only and take no locks.
func (uc *RoomUseCase) getRoomInfo(callerID int64, target *int64) (*domain.RoomInfo, error) {
	hostID, err := uc.resolveTargetRoom(callerID, target)
	if err != nil {
		return nil, err
	}

	handle, err := uc.resolveHostHandle(hostID)
	if err != nil {
		return nil, err
	}

	room, err := uc.roomRepo.GetByHostID(hostID)
	if err != nil {
		uc.logger.Error("Failed to get room from database", zap.Int64("hostID", hostID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get room from DB", 500, err)
	}
	if room == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeRoomNotFound, "Room")
	}

	memberCount, err := uc.countMembers(uc.userRepo, hostID)
	if err != nil {
		return nil, err
	}

	return uc.buildRoomInfo(room, handle, memberCount), nil
}

// resolveTargetRoom picks the host id the lookup is about
func (uc *RoomUseCase) resolveTargetRoom(callerID int64, target *int64) (int64, error) {
	if target != nil {
		return *target, nil
	}

	caller, err := uc.userRepo.GetByID(callerID)
	if err != nil {
		uc.logger.Error("Failed to get caller from database", zap.Int64("callerID", callerID), zap.Error(err))
		return 0, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user from DB", 500, err)
	}
	if caller == nil || !caller.InRoom() {
		return 0, domain.NewStateConflictError(domain.ErrCodeNotInRoom, "You are not in a room")
	}
	return *caller.RoomHost, nil
}
