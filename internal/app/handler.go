package app

import (
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/http/handlers"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
)

func (a *application) InitRoomHandler(uc domain.RoomUseCase, l *logger.Logger) *handlers.RoomHandler {
	return handlers.NewRoomHandler(uc, l)
}

func (a *application) InitGameHandler(uc domain.GameUseCase, l *logger.Logger) *handlers.GameHandler {
	return handlers.NewGameHandler(uc, l)
}

func (a *application) InitPlayerHandler(uc domain.PlayerUseCase, l *logger.Logger) *handlers.PlayerHandler {
	return handlers.NewPlayerHandler(uc, l)
}

func (a *application) InitUserHandler(uc domain.UserUseCase, l *logger.Logger) *handlers.UserHandler {
	return handlers.NewUserHandler(uc, l)
}
