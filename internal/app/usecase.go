package app

import (
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/lock"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"github.com/lsgame/roomsvc/internal/infrastructure/metrics"
	"github.com/lsgame/roomsvc/internal/usecase/game"
	"github.com/lsgame/roomsvc/internal/usecase/player"
	"github.com/lsgame/roomsvc/internal/usecase/room"
	"github.com/lsgame/roomsvc/internal/usecase/user"
	"gorm.io/gorm"
)

func (a *application) InitRoomUseCase(
	rr domain.RoomRepository,
	ur domain.UserRepository,
	pr domain.PlayerRepository,
	is domain.IdentityService,
	db *gorm.DB,
	l *logger.Logger,
	locks *lock.UserLockManager,
	m *metrics.Metrics,
) domain.RoomUseCase {
	return room.NewRoomUseCase(rr, ur, pr, is, db, l, locks, m)
}

func (a *application) InitGameUseCase(
	rr domain.RoomRepository,
	ur domain.UserRepository,
	pr domain.PlayerRepository,
	or domain.OutboxRepository,
	db *gorm.DB,
	l *logger.Logger,
	locks *lock.UserLockManager,
	m *metrics.Metrics,
) domain.GameUseCase {
	return game.NewGameUseCase(rr, ur, pr, or, db, l, locks, m)
}

func (a *application) InitPlayerUseCase(
	pr domain.PlayerRepository,
	db *gorm.DB,
	l *logger.Logger,
	locks *lock.UserLockManager,
) domain.PlayerUseCase {
	return player.NewPlayerUseCase(pr, db, l, locks)
}

func (a *application) InitUserUseCase(ur domain.UserRepository, l *logger.Logger) domain.UserUseCase {
	return user.NewUserUseCase(ur, l)
}
