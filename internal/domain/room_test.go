package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserHostingAndMembership(t *testing.T) {
	hostID := int64(10)
	otherID := int64(20)

	tests := []struct {
		name     string
		user     User
		hosting  bool
		inRoom   bool
	}{
		{
			name:   "FreeUser",
			user:   User{ID: hostID},
			inRoom: false,
		},
		{
			name:    "Host",
			user:    User{ID: hostID, RoomHost: &hostID},
			hosting: true,
			inRoom:  true,
		},
		{
			name:   "Member",
			user:   User{ID: hostID, RoomHost: &otherID},
			inRoom: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hosting, tt.user.IsHosting())
			assert.Equal(t, tt.inRoom, tt.user.InRoom())
		})
	}
}

func TestRoomGameState(t *testing.T) {
	room := &Room{HostID: 10}
	assert.False(t, room.GameStarted())
	assert.Nil(t, room.GameState())

	room.SetGameState(&GameState{Phase: 2, Round: 3, Turn: 1})
	assert.True(t, room.GameStarted())

	state := room.GameState()
	assert.Equal(t, 2, state.Phase)
	assert.Equal(t, 3, state.Round)
	assert.Equal(t, 1, state.Turn)

	room.SetGameState(nil)
	assert.False(t, room.GameStarted())
	assert.Nil(t, room.GamePhase)
	assert.Nil(t, room.GameRound)
	assert.Nil(t, room.GameTurn)
}

func TestUserHandleMention(t *testing.T) {
	h := &UserHandle{ID: 34633089486, Username: "near"}
	assert.Equal(t, "<@34633089486>", h.Mention())
}
