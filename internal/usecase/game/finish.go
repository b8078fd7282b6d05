package game

import (
	"fmt"

	"github.com/lsgame/roomsvc/internal/domain"
	"go.uber.org/zap"
)

// finishGame ends the game in the host's room. The player rows are torn
// down and the game state cleared in the same transaction that enqueues the
// stat awards, so a crash never drops an award or leaves a half-finished
// game behind. The awards themselves are applied asynchronously by the
// outbox processor.
func (uc *GameUseCase) finishGame(hostID int64, results []domain.PlayerResult) error {
	uc.logger.Info("Finishing game", zap.Int64("hostID", hostID), zap.Int("results", len(results)))

	if err := uc.validateResults(results); err != nil {
		return err
	}

	if err := uc.lockUser(hostID); err != nil {
		return domain.NewAppError(domain.ErrCodeDatabaseConnection, "Failed to acquire user lock", 500, err)
	}
	defer uc.locks.Unlock(hostID)

	tx, txRoomRepo, txUserRepo, txPlayerRepo, txOutboxRepo, err := uc.setupTransactionDB()
	if err != nil {
		return err
	}

	room, err := uc.getHostedRoomForUpdate(txRoomRepo, txUserRepo, hostID)
	if err != nil {
		return uc.rollbackTransaction(tx, err)
	}
	if !room.GameStarted() {
		return uc.rollbackTransaction(tx,
			domain.NewStateConflictError(domain.ErrCodeGameNotStarted, "No game is running in this room"))
	}

	players, err := txPlayerRepo.GetByRoomHost(hostID)
	if err != nil {
		return uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to list players", 500, err))
	}
	playerSet := make(map[int64]struct{}, len(players))
	for _, p := range players {
		playerSet[p.UserID] = struct{}{}
	}

	for _, r := range results {
		if _, ok := playerSet[r.UserID]; !ok {
			return uc.rollbackTransaction(tx,
				domain.NewNotFoundError(domain.ErrCodePlayerNotFound,
					fmt.Sprintf("Player %d", r.UserID)))
		}
		if err := uc.enqueueGameResult(txOutboxRepo, r); err != nil {
			return uc.rollbackTransaction(tx, err)
		}
	}

	if err := txPlayerRepo.DeleteByRoomHost(hostID); err != nil {
		return uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to delete players", 500, err))
	}

	room.SetGameState(nil)
	if err := txRoomRepo.Update(room); err != nil {
		return uc.rollbackTransaction(tx,
			domain.NewAppError(domain.ErrCodeDatabaseQuery, "Failed to clear game state", 500, err))
	}

	if err := uc.commitTransaction(tx); err != nil {
		return err
	}

	uc.metrics.GamesFinished.Inc()
	uc.logger.Info("Game finished", zap.Int64("hostID", hostID), zap.Int("awards", len(results)))
	return nil
}

// validateResults validates the outcomes before any locking happens. A user
// may appear at most once; a duplicate would enqueue a second award and
// double-count that player's game.
func (uc *GameUseCase) validateResults(results []domain.PlayerResult) error {
	seen := make(map[int64]struct{}, len(results))
	for _, r := range results {
		if _, dup := seen[r.UserID]; dup {
			return domain.NewAppError(domain.ErrCodeInvalidFormat,
				fmt.Sprintf("User %d appears twice in the results", r.UserID), 400, nil)
		}
		seen[r.UserID] = struct{}{}
	}
	return nil
}
