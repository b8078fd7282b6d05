package game

import (
	"fmt"
	"time"

	"github.com/lsgame/roomsvc/internal/domain"
	"go.uber.org/zap"
)

// startGame begins a game in the host's room. Every assignment must name a
// current member; player rows for the whole cast and the initial game state
// are written in one transaction, so the game either starts for everyone or
// for no one.
func (uc *GameUseCase) startGame(hostID int64, assignments []domain.PlayerAssignment) error {
	uc.logger.Info("Starting game", zap.Int64("hostID", hostID), zap.Int("players", len(assignments)))

	if err := uc.validateAssignments(assignments); err != nil {
		return err
	}

	if err := uc.lockUser(hostID); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to acquire user lock", 500, err)
	}
	defer uc.locks.Unlock(hostID)

	tx, txRoomRepo, txUserRepo, txPlayerRepo, _, err := uc.setupTransactionDB()
	if err != nil {
		return err
	}

	room, err := uc.getHostedRoomForUpdate(txRoomRepo, txUserRepo, hostID)
	if err != nil {
		return uc.rollbackTransaction(tx, err)
	}
	if room.GameStarted() {
		return uc.rollbackTransaction(tx,
			domain.NewStateConflictError(domain.ErrCodeAlreadyInGame, "A game is already running in this room"))
	}

	members, err := txUserRepo.GetByRoomHost(hostID)
	if err != nil {
		return uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list room members", 500, err))
	}
	memberSet := make(map[int64]struct{}, len(members))
	for _, m := range members {
		memberSet[m.ID] = struct{}{}
	}

	for _, a := range assignments {
		if _, ok := memberSet[a.UserID]; !ok {
			return uc.rollbackTransaction(tx,
				domain.NewStateConflictError(domain.ErrCodeNotAMember,
					fmt.Sprintf("User %d is not in this room", a.UserID)))
		}

		player := &domain.Player{
			UserID:    a.UserID,
			Alias:     a.Alias,
			Alive:     true,
			RoomHost:  hostID,
			Info:      a.Info,
			Item:      a.Item,
			Role:      a.Role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := txPlayerRepo.Create(player); err != nil {
			return uc.rollbackTransaction(tx,
				domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to create player", 500, err))
		}
	}

	room.SetGameState(&domain.GameState{Phase: 1, Round: 1, Turn: 1})
	if err := txRoomRepo.Update(room); err != nil {
		return uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to set game state", 500, err))
	}

	if err := uc.commitTransaction(tx); err != nil {
		return err
	}

	uc.metrics.GamesStarted.Inc()
	uc.logger.Info("Game started", zap.Int64("hostID", hostID), zap.Int("players", len(assignments)))
	return nil
}

// validateAssignments validates the cast before any locking happens
func (uc *GameUseCase) validateAssignments(assignments []domain.PlayerAssignment) error {
	if len(assignments) == 0 {
		return domain.NewAppError(domain.ErrCodeRequiredField, "At least one player assignment is required", 400, nil)
	}

	seen := make(map[int64]struct{}, len(assignments))
	for _, a := range assignments {
		if a.Alias == "" {
			return domain.NewAppError(domain.ErrCodeRequiredField,
				fmt.Sprintf("Player %d has no alias", a.UserID), 400, nil)
		}
		if !a.Role.Valid() {
			return domain.NewAppError(domain.ErrCodeInvalidRole,
				fmt.Sprintf("Player %d has an unknown role", a.UserID), 400, nil)
		}
		if a.Item != nil && !a.Item.Kind.Valid() {
			return domain.NewAppError(domain.ErrCodeInvalidItem,
				fmt.Sprintf("Player %d holds an unknown item", a.UserID), 400, nil)
		}
		if _, dup := seen[a.UserID]; dup {
			return domain.NewAppError(domain.ErrCodeInvalidFormat,
				fmt.Sprintf("User %d is assigned twice", a.UserID), 400, nil)
		}
		seen[a.UserID] = struct{}{}
	}
	return nil
}
