package room

import (
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/lock"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"github.com/lsgame/roomsvc/internal/infrastructure/metrics"
	"gorm.io/gorm"
)

// RoomUseCase implements the membership coordinator. Every mutating
// operation serializes on the acting user's lock and runs its checks and
// writes inside a single database transaction, so the membership invariants
// hold under concurrent commands.
type RoomUseCase struct {
	roomRepo    domain.RoomRepository
	userRepo    domain.UserRepository
	playerRepo  domain.PlayerRepository
	identitySvc domain.IdentityService
	db          *gorm.DB
	logger      *logger.Logger
	locks       *lock.UserLockManager
	metrics     *metrics.Metrics
}

// NewRoomUseCase creates a new room usecase
func NewRoomUseCase(
	roomRepo domain.RoomRepository,
	userRepo domain.UserRepository,
	playerRepo domain.PlayerRepository,
	identitySvc domain.IdentityService,
	db *gorm.DB,
	logger *logger.Logger,
	locks *lock.UserLockManager,
	metrics *metrics.Metrics,
) domain.RoomUseCase {
	logger.Info("RoomUseCase initialized successfully")
	return &RoomUseCase{
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		playerRepo:  playerRepo,
		identitySvc: identitySvc,
		db:          db,
		logger:      logger,
		locks:       locks,
		metrics:     metrics,
	}
}

// CreateRoom opens a new room hosted by the given user
func (uc *RoomUseCase) CreateRoom(userID int64) (*domain.RoomInfo, error) {
	return uc.createRoom(userID)
}

// JoinRoom adds the user to the room keyed by hostID
func (uc *RoomUseCase) JoinRoom(userID, hostID int64) (*domain.RoomInfo, error) {
	return uc.joinRoom(userID, hostID)
}

// LeaveRoom removes the user from their current room
func (uc *RoomUseCase) LeaveRoom(userID int64) error {
	return uc.leaveRoom(userID)
}

// GetRoomInfo looks up a room by explicit host id, or by the caller's
// current room when target is nil
func (uc *RoomUseCase) GetRoomInfo(callerID int64, target *int64) (*domain.RoomInfo, error) {
	return uc.getRoomInfo(callerID, target)
}

// TransferHost re-keys the room from the current host to another member
func (uc *RoomUseCase) TransferHost(hostID, newHostID int64) (*domain.RoomInfo, error) {
	return uc.transferHost(hostID, newHostID)
}

// DeleteRoom closes the caller's room and releases its members
func (uc *RoomUseCase) DeleteRoom(hostID int64) error {
	return uc.deleteRoom(hostID)
}
