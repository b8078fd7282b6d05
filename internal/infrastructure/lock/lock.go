package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// UserLockManager serializes membership transitions per acting user. Two
// concurrent operations for the same user id must not both observe a
// pre-transition state and both succeed; operations for different users
// proceed independently.
type UserLockManager struct {
	locks  sync.Map // map[int64]*sync.Mutex
	logger *zap.Logger
}

// NewUserLockManager creates a new lock manager
func NewUserLockManager() *UserLockManager {
	logger, _ := zap.NewProduction()
	return &UserLockManager{
		logger: logger,
	}
}

// Lock acquires a lock for the given userID with timeout
func (m *UserLockManager) Lock(ctx context.Context, userID int64) error {
	mu := m.getOrCreateMutex(userID)

	// acquire lock with context timeout
	lockChan := make(chan struct{})
	go func() {
		mu.Lock()
		close(lockChan)
	}()

	select {
	case <-lockChan:
		m.logger.Debug("Acquired user lock", zap.Int64("userID", userID))
		return nil
	case <-ctx.Done():
		m.logger.Error("Failed to acquire user lock: context cancelled", zap.Int64("userID", userID), zap.Error(ctx.Err()))
		return fmt.Errorf("failed to acquire lock for user %d: %w", userID, ctx.Err())
	case <-time.After(5 * time.Second):
		m.logger.Error("Failed to acquire user lock: timeout", zap.Int64("userID", userID), zap.Duration("timeout", 5*time.Second))
		return fmt.Errorf("failed to acquire lock for user %d: timeout", userID)
	}
}

// Unlock releases the lock for the given userID
func (m *UserLockManager) Unlock(userID int64) {
	muInterface, ok := m.locks.Load(userID)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.Int64("userID", userID))
		return
	}
	mu := muInterface.(*sync.Mutex)
	mu.Unlock()
	m.logger.Debug("Released user lock", zap.Int64("userID", userID))
}

// TryLock attempts to acquire a lock without blocking
func (m *UserLockManager) TryLock(userID int64) bool {
	mu := m.getOrCreateMutex(userID)
	return mu.TryLock()
}

// LockPair acquires locks for two users in ascending id order, so two
// concurrent pair operations can never deadlock each other
func (m *UserLockManager) LockPair(ctx context.Context, a, b int64) error {
	first, second := a, b
	if second < first {
		first, second = second, first
	}
	if err := m.Lock(ctx, first); err != nil {
		return err
	}
	if first == second {
		return nil
	}
	if err := m.Lock(ctx, second); err != nil {
		m.Unlock(first)
		return err
	}
	return nil
}

// UnlockPair releases the locks taken by LockPair
func (m *UserLockManager) UnlockPair(a, b int64) {
	first, second := a, b
	if second < first {
		first, second = second, first
	}
	if first != second {
		m.Unlock(second)
	}
	m.Unlock(first)
}

func (m *UserLockManager) getOrCreateMutex(userID int64) *sync.Mutex {
	mu, ok := m.locks.Load(userID)
	if ok {
		return mu.(*sync.Mutex)
	}

	newMu := &sync.Mutex{}
	actual, _ := m.locks.LoadOrStore(userID, newMu)
	return actual.(*sync.Mutex)
}
