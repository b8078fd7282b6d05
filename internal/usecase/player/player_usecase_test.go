package player

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/domain/mocks"
	"github.com/lsgame/roomsvc/internal/infrastructure/lock"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayerUseCase(ctrl *gomock.Controller) (*PlayerUseCase, *mocks.MockPlayerRepository) {
	playerRepo := mocks.NewMockPlayerRepository(ctrl)
	uc := &PlayerUseCase{
		playerRepo: playerRepo,
		db:         nil,
		logger:     logger.NewLogger("test", "debug"),
		locks:      lock.NewUserLockManager(),
	}
	return uc, playerRepo
}

func TestGetPlayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, playerRepo := newTestPlayerUseCase(ctrl)

	item, err := domain.NewItem(domain.ItemBat)
	require.NoError(t, err)
	expected := &domain.Player{
		UserID:   34633089486,
		Alias:    "watari",
		Alive:    true,
		RoomHost: 10,
		Item:     &item,
		Role:     domain.RoleInvestigator,
	}

	playerRepo.EXPECT().GetByUserID(int64(34633089486)).Return(expected, nil)

	player, err := uc.GetPlayer(34633089486)
	require.NoError(t, err)
	assert.Equal(t, expected, player)
}

func TestGetPlayerNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, playerRepo := newTestPlayerUseCase(ctrl)

	playerRepo.EXPECT().GetByUserID(int64(99)).Return(nil, nil)

	_, err := uc.GetPlayer(99)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodePlayerNotFound))
}

func TestGetPlayerDatabaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, playerRepo := newTestPlayerUseCase(ctrl)

	playerRepo.EXPECT().GetByUserID(int64(99)).Return(nil, errors.New("connection reset"))

	_, err := uc.GetPlayer(99)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeDatabaseQuery))
}
