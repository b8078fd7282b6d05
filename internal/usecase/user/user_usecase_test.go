package user

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/domain/mocks"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserUseCase(ctrl *gomock.Controller) (domain.UserUseCase, *mocks.MockUserRepository) {
	userRepo := mocks.NewMockUserRepository(ctrl)
	return NewUserUseCase(userRepo, logger.NewLogger("test", "debug")), userRepo
}

func TestGetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, userRepo := newTestUserUseCase(ctrl)

	hostID := int64(10)
	expected := &domain.User{ID: 34633089486, TotalGames: 12, Wins: 5, XP: 340, RoomHost: &hostID}
	userRepo.EXPECT().GetByID(int64(34633089486)).Return(expected, nil)

	user, err := uc.GetProfile(34633089486)
	require.NoError(t, err)
	assert.Equal(t, expected, user)
	assert.True(t, user.InRoom())
}

func TestGetProfileUnknownUserReadsAsZeroed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, userRepo := newTestUserUseCase(ctrl)

	userRepo.EXPECT().GetByID(int64(555)).Return(nil, nil)

	user, err := uc.GetProfile(555)
	require.NoError(t, err)
	assert.Equal(t, int64(555), user.ID)
	assert.Zero(t, user.TotalGames)
	assert.Zero(t, user.Wins)
	assert.Zero(t, user.XP)
	assert.False(t, user.InRoom())
}

func TestGetProfileInvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _ := newTestUserUseCase(ctrl)

	for _, id := range []int64{0, -1} {
		_, err := uc.GetProfile(id)
		require.Error(t, err)
		assert.True(t, domain.IsCode(err, domain.ErrCodeInvalidFormat))
	}
}

func TestGetProfileDatabaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, userRepo := newTestUserUseCase(ctrl)

	userRepo.EXPECT().GetByID(int64(9)).Return(nil, errors.New("connection refused"))

	_, err := uc.GetProfile(9)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.ErrCodeDatabaseQuery))
}
