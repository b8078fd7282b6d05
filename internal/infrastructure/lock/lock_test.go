package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockUnlock(t *testing.T) {
	m := NewUserLockManager()

	require.NoError(t, m.Lock(context.Background(), 1))
	m.Unlock(1)
	require.NoError(t, m.Lock(context.Background(), 1))
	m.Unlock(1)
}

func TestLockSerializesSameUser(t *testing.T) {
	m := NewUserLockManager()

	const workers = 10
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, m.Lock(context.Background(), 42))
			defer m.Unlock(42)
			// non-atomic increment; the lock is what keeps it safe
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestLockTimesOutWhenHeld(t *testing.T) {
	m := NewUserLockManager()

	require.NoError(t, m.Lock(context.Background(), 7))
	defer m.Unlock(7)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := m.Lock(ctx, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLockDifferentUsersIndependent(t *testing.T) {
	m := NewUserLockManager()

	require.NoError(t, m.Lock(context.Background(), 1))
	defer m.Unlock(1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.Lock(ctx, 2))
	m.Unlock(2)
}

func TestTryLock(t *testing.T) {
	m := NewUserLockManager()

	assert.True(t, m.TryLock(5))
	assert.False(t, m.TryLock(5))
	m.Unlock(5)
	assert.True(t, m.TryLock(5))
	m.Unlock(5)
}

func TestLockPairSameUser(t *testing.T) {
	m := NewUserLockManager()

	require.NoError(t, m.LockPair(context.Background(), 3, 3))
	m.UnlockPair(3, 3)

	// the single lock must be fully released
	assert.True(t, m.TryLock(3))
	m.Unlock(3)
}

func TestLockPairOppositeOrdersDoNotDeadlock(t *testing.T) {
	m := NewUserLockManager()

	const rounds = 50
	var wg sync.WaitGroup
	wg.Add(2)

	run := func(a, b int64) {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			require.NoError(t, m.LockPair(context.Background(), a, b))
			m.UnlockPair(a, b)
		}
	}

	go run(10, 20)
	go run(20, 10)

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pair locking deadlocked")
	}
}
