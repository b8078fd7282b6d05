package outbox

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang/mock/gomock"
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/domain/mocks"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newStubDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func newTestProcessor(t *testing.T, ctrl *gomock.Controller) (*Processor, sqlmock.Sqlmock, *mocks.MockOutboxRepository, *mocks.MockUserRepository) {
	outboxRepo := mocks.NewMockOutboxRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	outboxRepo.EXPECT().WithTransaction(gomock.Any()).Return(outboxRepo).AnyTimes()
	userRepo.EXPECT().WithTransaction(gomock.Any()).Return(userRepo).AnyTimes()

	db, mock := newStubDB(t)
	p := NewProcessor(outboxRepo, userRepo, db, logger.NewLogger("test", "debug"))
	return p, mock, outboxRepo, userRepo
}

// gameResultEvent mimics an event read back from the database, where JSONB
// numbers come out as float64.
func gameResultEvent(id string, userID int64, won bool, xp int64) *domain.OutboxEvent {
	return &domain.OutboxEvent{
		ID:     id,
		Type:   domain.EventTypeGameResult,
		Status: domain.EventStatusPending,
		Data: domain.JSONB{
			"user_id": float64(userID),
			"won":     won,
			"xp":      float64(xp),
		},
	}
}

func TestProcessEventsAwardsGameResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mock, outboxRepo, userRepo := newTestProcessor(t, ctrl)
	mock.ExpectBegin()
	mock.ExpectCommit()

	event := gameResultEvent("ev-1", 34633089486, true, 120)

	outboxRepo.EXPECT().GetPendingEvents(100).Return([]*domain.OutboxEvent{event}, nil)
	userRepo.EXPECT().AwardGameResult(int64(34633089486), true, int64(120)).Return(nil)
	outboxRepo.EXPECT().MarkAsProcessed("ev-1").Return(nil)

	require.NoError(t, p.ProcessEvents())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGameResultAwardRollsBackWhenMarkFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mock, outboxRepo, userRepo := newTestProcessor(t, ctrl)
	mock.ExpectBegin()
	mock.ExpectRollback()

	event := gameResultEvent("ev-2", 42, true, 100)

	userRepo.EXPECT().AwardGameResult(int64(42), true, int64(100)).Return(nil)
	outboxRepo.EXPECT().MarkAsProcessed("ev-2").Return(errors.New("connection reset"))

	err := p.ProcessEvent(event)
	require.Error(t, err)

	// the award must not survive a failed processed mark: begin and
	// rollback happened, commit never did
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessEventsRetriesOnAwardFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mock, outboxRepo, userRepo := newTestProcessor(t, ctrl)
	mock.ExpectBegin()
	mock.ExpectRollback()

	event := gameResultEvent("ev-3", 12, false, 30)
	event.RetryCount = 2

	outboxRepo.EXPECT().GetPendingEvents(100).Return([]*domain.OutboxEvent{event}, nil)
	userRepo.EXPECT().AwardGameResult(int64(12), false, int64(30)).Return(errors.New("deadlock detected"))
	outboxRepo.EXPECT().IncrementRetryCount("ev-3").Return(nil)

	require.NoError(t, p.ProcessEvents())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessEventsMarksExhaustedEventFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, outboxRepo, _ := newTestProcessor(t, ctrl)

	event := &domain.OutboxEvent{
		ID:         "ev-4",
		Type:       domain.EventTypeGameResult,
		Status:     domain.EventStatusPending,
		Data:       domain.JSONB{"user_id": "not-a-number"},
		RetryCount: 5,
	}

	outboxRepo.EXPECT().GetPendingEvents(100).Return([]*domain.OutboxEvent{event}, nil)
	outboxRepo.EXPECT().MarkAsFailed("ev-4", gomock.Any()).Return(nil)

	require.NoError(t, p.ProcessEvents())
}

func TestProcessEventRejectsUnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _, _ := newTestProcessor(t, ctrl)

	err := p.ProcessEvent(&domain.OutboxEvent{ID: "ev-5", Type: "room_snapshot"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event type")
}

func TestProcessEventsContinuesPastBadEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, mock, outboxRepo, userRepo := newTestProcessor(t, ctrl)
	mock.ExpectBegin()
	mock.ExpectCommit()

	bad := &domain.OutboxEvent{
		ID:     "ev-6",
		Type:   domain.EventTypeGameResult,
		Status: domain.EventStatusPending,
		Data:   domain.JSONB{"won": true},
	}
	good := gameResultEvent("ev-7", 7, true, 50)

	outboxRepo.EXPECT().GetPendingEvents(100).Return([]*domain.OutboxEvent{bad, good}, nil)
	outboxRepo.EXPECT().IncrementRetryCount("ev-6").Return(nil)
	userRepo.EXPECT().AwardGameResult(int64(7), true, int64(50)).Return(nil)
	outboxRepo.EXPECT().MarkAsProcessed("ev-7").Return(nil)

	require.NoError(t, p.ProcessEvents())
	assert.NoError(t, mock.ExpectationsWereMet())
}
