package app

import (
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"github.com/lsgame/roomsvc/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

func (a *application) InitMetrics(roomRepo domain.RoomRepository, l *logger.Logger) *metrics.Metrics {
	m := metrics.NewMetrics("roomsvc")

	count, err := roomRepo.Count()
	if err != nil {
		l.Warn("Failed to seed active rooms gauge", zap.Error(err))
		return m
	}
	m.SeedActiveRooms(count)

	return m
}
