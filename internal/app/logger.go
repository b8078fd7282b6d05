package app

import (
	"github.com/lsgame/roomsvc/internal/config"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
