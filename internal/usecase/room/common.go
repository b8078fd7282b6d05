package room

import (
	"context"
	"time"

	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/external/identity"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// *****  Database Transaction Management

// setupTransactionDB sets up a database transaction with repositories
func (uc *RoomUseCase) setupTransactionDB() (*gorm.DB, domain.RoomRepository, domain.UserRepository, domain.PlayerRepository, error) {
	tx := uc.db.Begin()
	if tx.Error != nil {
		uc.logger.Error("Failed to start database transaction", zap.Error(tx.Error))
		return nil, nil, nil, nil, domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to start transaction", 500, tx.Error)
	}

	txRoomRepo := uc.roomRepo.WithTransaction(tx)
	txUserRepo := uc.userRepo.WithTransaction(tx)
	txPlayerRepo := uc.playerRepo.WithTransaction(tx)

	return tx, txRoomRepo, txUserRepo, txPlayerRepo, nil
}

// commitTransaction commits database transaction with error handling
func (uc *RoomUseCase) commitTransaction(dbTx *gorm.DB) error {
	if err := dbTx.Commit().Error; err != nil {
		uc.logger.Error("Failed to commit database transaction", zap.Error(err))
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to commit transaction", 500, err)
	}
	return nil
}

// rollbackTransaction rolls back database transaction and passes the error through
func (uc *RoomUseCase) rollbackTransaction(dbTx *gorm.DB, err error) error {
	dbTx.Rollback()
	return err
}

// lockUser acquires the acting user's lock for the duration of one operation
func (uc *RoomUseCase) lockUser(userID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return uc.locks.Lock(ctx, userID)
}

// lockUserPair acquires both users' locks in a deadlock-free order
func (uc *RoomUseCase) lockUserPair(a, b int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return uc.locks.LockPair(ctx, a, b)
}

// *****  User Access

// getOrCreateUser loads the user row under a row lock, creating a fresh row
// on first contact. Counter rows exist lazily and are never deleted.
func (uc *RoomUseCase) getOrCreateUser(repo domain.UserRepository, userID int64) (*domain.User, error) {
	user, err := repo.GetByIDForUpdate(userID)
	if err != nil {
		uc.logger.Error("Failed to get user from database", zap.Int64("userID", userID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user from DB", 500, err)
	}
	if user != nil {
		return user, nil
	}

	user = &domain.User{ID: userID}
	if err := repo.Create(user); err != nil {
		uc.logger.Error("Failed to create user row", zap.Int64("userID", userID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create user", 500, err)
	}

	uc.logger.Info("Created user row on first contact", zap.Int64("userID", userID))
	return user, nil
}

// getUser loads the user row under a row lock without creating it
func (uc *RoomUseCase) getUser(repo domain.UserRepository, userID int64) (*domain.User, error) {
	user, err := repo.GetByIDForUpdate(userID)
	if err != nil {
		uc.logger.Error("Failed to get user from database", zap.Int64("userID", userID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to get user from DB", 500, err)
	}
	return user, nil
}

// *****  Membership Preconditions

// checkCreatePreconditions verifies the user may open a room
func (uc *RoomUseCase) checkCreatePreconditions(user *domain.User) error {
	if user.IsHosting() {
		return domain.NewStateConflictError(domain.ErrCodeAlreadyHosting, "You are already hosting a room")
	}
	if user.InRoom() {
		return domain.NewStateConflictError(domain.ErrCodeAlreadyMember, "You are already in a room")
	}
	return nil
}

// checkJoinPreconditions verifies the user may take a seat in the room. A
// player row marks the user as part of a running game's cast and is checked
// before the membership state.
func (uc *RoomUseCase) checkJoinPreconditions(room *domain.Room, user *domain.User, player *domain.Player) error {
	if player != nil {
		return domain.NewStateConflictError(domain.ErrCodeAlreadyInGame, "You are in a running game")
	}
	if user.IsHosting() {
		return domain.NewStateConflictError(domain.ErrCodeHostConflict, "You are hosting a room; delete it before joining another")
	}
	if user.InRoom() {
		return domain.NewStateConflictError(domain.ErrCodeAlreadyMember, "You are already in a room")
	}
	if room.GameStarted() {
		return domain.NewStateConflictError(domain.ErrCodeGameInProgress, "A game is in progress in that room")
	}
	return nil
}

// checkLeavePreconditions verifies the user may give up their seat. Cast
// membership is checked first, so a host whose game is running is told about
// the game, not the host seat.
func (uc *RoomUseCase) checkLeavePreconditions(user *domain.User, player *domain.Player) error {
	if player != nil {
		return domain.NewStateConflictError(domain.ErrCodeAlreadyInGame, "You cannot leave while your game is in progress")
	}
	if user == nil || !user.InRoom() {
		return domain.NewStateConflictError(domain.ErrCodeNotInRoom, "You are not in a room")
	}
	if user.IsHosting() {
		return domain.NewStateConflictError(domain.ErrCodeHostConflict, "Hosts cannot leave their own room; delete it or transfer the host seat")
	}
	return nil
}

// *****  Identity Resolution

// resolveHandle resolves an opaque user id to its platform handle
func (uc *RoomUseCase) resolveHandle(userID int64) (*domain.UserHandle, error) {
	handle, err := uc.identitySvc.ResolveUser(userID)
	if err != nil {
		if identity.IsNotFoundError(err) {
			uc.logger.Warn("Identity resolver does not know user", zap.Int64("userID", userID))
			return nil, domain.NewNotFoundError(domain.ErrCodeUserNotFound, "User")
		}
		uc.logger.Error("Identity resolver call failed", zap.Int64("userID", userID), zap.Error(err))
		return nil, domain.NewAppError(domain.ErrCodeIdentityServiceError, "Failed to resolve user identity", 500, err)
	}
	return handle, nil
}

// resolveHostHandle resolves a room target's handle. Synthetic accounts can
// never host a room, so a bot target reads as a missing room rather than
// leaking the account classification.
func (uc *RoomUseCase) resolveHostHandle(hostID int64) (*domain.UserHandle, error) {
	handle, err := uc.resolveHandle(hostID)
	if err != nil {
		return nil, err
	}
	if handle.IsBot {
		uc.logger.Warn("Room target is a synthetic account", zap.Int64("hostID", hostID))
		return nil, domain.NewNotFoundError(domain.ErrCodeRoomNotFound, "Room")
	}
	return handle, nil
}

// *****  Room Info Assembly

// countMembers counts the occupants of a room
func (uc *RoomUseCase) countMembers(repo domain.UserRepository, hostID int64) (int, error) {
	members, err := repo.GetByRoomHost(hostID)
	if err != nil {
		uc.logger.Error("Failed to list room members", zap.Int64("hostID", hostID), zap.Error(err))
		return 0, domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list room members", 500, err)
	}
	return len(members), nil
}

// buildRoomInfo assembles the lookup payload for a room
func (uc *RoomUseCase) buildRoomInfo(room *domain.Room, host *domain.UserHandle, memberCount int) *domain.RoomInfo {
	return &domain.RoomInfo{
		Host:        host,
		GameState:   room.GameState(),
		MemberCount: memberCount,
	}
}
