package outbox

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Processor implements domain.OutboxProcessor. It drains pending
// game-result events and applies the stat awards they carry. Each award
// commits in the same transaction as the event's processed mark, so a
// retried event never double-counts.
type Processor struct {
	outboxRepo domain.OutboxRepository
	userRepo   domain.UserRepository
	db         *gorm.DB
	logger     *logger.Logger
	maxRetries int

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	isRunning bool
}

// NewProcessor creates a new outbox processor
func NewProcessor(
	outboxRepo domain.OutboxRepository,
	userRepo domain.UserRepository,
	db *gorm.DB,
	logger *logger.Logger,
) *Processor {
	ctx, cancel := context.WithCancel(context.Background())
	return &Processor{
		outboxRepo: outboxRepo,
		userRepo:   userRepo,
		db:         db,
		logger:     logger,
		maxRetries: 5,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start begins polling for pending events at the given interval
func (p *Processor) Start(interval time.Duration) {
	p.mu.Lock()
	if p.isRunning {
		p.mu.Unlock()
		return
	}
	p.isRunning = true
	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-p.ctx.Done():
				return
			case <-ticker.C:
				if err := p.ProcessEvents(); err != nil {
					p.logger.Error("Outbox processing pass failed", zap.Error(err))
				}
			}
		}
	}()

	p.logger.Info("Outbox processor started", zap.Duration("interval", interval))
}

// Stop cancels the polling loop and waits for it to finish
func (p *Processor) Stop() {
	p.mu.Lock()
	if !p.isRunning {
		p.mu.Unlock()
		return
	}
	p.isRunning = false
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()
	p.logger.Info("Outbox processor stopped")
}

// ProcessEvents processes all pending events
func (p *Processor) ProcessEvents() error {
	events, err := p.outboxRepo.GetPendingEvents(100)
	if err != nil {
		p.logger.Error("Failed to get pending events", zap.Error(err))
		return err
	}

	for _, event := range events {
		select {
		case <-p.ctx.Done():
			return fmt.Errorf("processor cancelled")
		default:
		}

		if err := p.ProcessEvent(event); err != nil {
			p.logger.Error("Failed to process event",
				zap.String("eventID", event.ID),
				zap.String("eventType", event.Type),
				zap.Error(err))

			if event.RetryCount < p.maxRetries {
				if retryErr := p.outboxRepo.IncrementRetryCount(event.ID); retryErr != nil {
					p.logger.Error("Failed to increment retry count", zap.Error(retryErr))
				}
			} else {
				if failErr := p.outboxRepo.MarkAsFailed(event.ID, err.Error()); failErr != nil {
					p.logger.Error("Failed to mark event as failed", zap.Error(failErr))
				}
			}
		}
	}

	return nil
}

// ProcessEvent processes a single outbox event
func (p *Processor) ProcessEvent(event *domain.OutboxEvent) error {
	p.logger.Debug("Processing outbox event",
		zap.String("eventID", event.ID),
		zap.String("eventType", event.Type))

	if event.Type == domain.EventTypeGameResult {
		return p.handleGameResult(event)
	}

	p.logger.Warn("Unknown event type",
		zap.String("eventID", event.ID),
		zap.String("eventType", event.Type))
	return fmt.Errorf("unknown event type: %s", event.Type)
}

// handleGameResult applies one player's game-result award. The counter
// increment and the processed mark ride one transaction: either the event
// is spent and the counters moved, or neither happened and the retry starts
// from a clean slate.
func (p *Processor) handleGameResult(event *domain.OutboxEvent) error {
	userID, won, xp, err := p.extractGameResultData(event)
	if err != nil {
		return err
	}

	tx := p.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to start transaction: %w", tx.Error)
	}

	if err := p.userRepo.WithTransaction(tx).AwardGameResult(userID, won, xp); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to award game result: %w", err)
	}

	if err := p.outboxRepo.WithTransaction(tx).MarkAsProcessed(event.ID); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to mark event as processed: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit award: %w", err)
	}

	p.logger.Info("Game result awarded",
		zap.String("eventID", event.ID),
		zap.Int64("userID", userID),
		zap.Bool("won", won),
		zap.Int64("xp", xp))
	return nil
}

// extractGameResultData extracts the award fields from event data
func (p *Processor) extractGameResultData(event *domain.OutboxEvent) (int64, bool, int64, error) {
	userID, ok := event.Data["user_id"].(float64)
	if !ok {
		return 0, false, 0, fmt.Errorf("invalid user_id in event data")
	}

	won, ok := event.Data["won"].(bool)
	if !ok {
		return 0, false, 0, fmt.Errorf("invalid won flag in event data")
	}

	xp, ok := event.Data["xp"].(float64)
	if !ok {
		return 0, false, 0, fmt.Errorf("invalid xp in event data")
	}

	return int64(userID), won, int64(xp), nil
}
