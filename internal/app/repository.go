package app

import (
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewUserRepository(db)
}

func (a *application) InitRoomRepository(db *gorm.DB) domain.RoomRepository {
	return repository.NewRoomRepository(db)
}

func (a *application) InitPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return repository.NewPlayerRepository(db)
}

func (a *application) InitOutboxRepository(db *gorm.DB) domain.OutboxRepository {
	return repository.NewOutboxRepository(db)
}
