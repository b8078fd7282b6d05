package app

import (
	"context"

	"github.com/lsgame/roomsvc/internal/http"
	"github.com/lsgame/roomsvc/internal/http/handlers"
	"github.com/lsgame/roomsvc/internal/http/middleware"
	"github.com/lsgame/roomsvc/internal/infrastructure/auth"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"github.com/lsgame/roomsvc/internal/infrastructure/metrics"
	"go.uber.org/fx"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	roomHandler *handlers.RoomHandler,
	gameHandler *handlers.GameHandler,
	playerHandler *handlers.PlayerHandler,
	userHandler *handlers.UserHandler,
	errorHandler *middleware.ErrorHandler,
	m *metrics.Metrics,
	l *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(jwtService, roomHandler, gameHandler, playerHandler, userHandler, errorHandler, m, l, port)
}

// StartHTTPServer starts serving when the fx application starts
func (a *application) StartHTTPServer(lc fx.Lifecycle, server *http.Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					panic(err)
				}
			}()
			return nil
		},
	})
}
