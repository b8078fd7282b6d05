package app

import "github.com/lsgame/roomsvc/internal/infrastructure/lock"

func (a *application) InitUserLockManager() *lock.UserLockManager {
	return lock.NewUserLockManager()
}
