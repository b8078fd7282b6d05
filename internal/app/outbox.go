package app

import (
	"context"
	"time"

	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"github.com/lsgame/roomsvc/internal/infrastructure/outbox"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func (a *application) InitOutboxProcessor(
	outboxRepo domain.OutboxRepository,
	userRepo domain.UserRepository,
	db *gorm.DB,
	l *logger.Logger,
) domain.OutboxProcessor {
	return outbox.NewProcessor(outboxRepo, userRepo, db, l)
}

// StartOutboxProcessor runs the award processor for the fx application's lifetime
func (a *application) StartOutboxProcessor(lc fx.Lifecycle, processor domain.OutboxProcessor) {
	interval := a.config.Outbox.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			processor.Start(interval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			processor.Stop()
			return nil
		},
	})
}
