package game

import (
	"testing"

	"github.com/lsgame/roomsvc/internal/domain"
	"github.com/lsgame/roomsvc/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGameUseCase() *GameUseCase {
	return &GameUseCase{
		logger: logger.NewLogger("test", "debug"),
	}
}

func TestValidateAssignments(t *testing.T) {
	uc := newTestGameUseCase()

	freshGun, err := domain.NewItem(domain.ItemGun)
	require.NoError(t, err)
	bogusItem := domain.Item{Kind: domain.ItemKind(3)}

	tests := []struct {
		name        string
		assignments []domain.PlayerAssignment
		wantCode    string
	}{
		{
			name:        "EmptyCast",
			assignments: nil,
			wantCode:    domain.ErrCodeRequiredField,
		},
		{
			name: "MissingAlias",
			assignments: []domain.PlayerAssignment{
				{UserID: 1, Alias: "", Role: domain.RoleKira},
			},
			wantCode: domain.ErrCodeRequiredField,
		},
		{
			name: "UnknownRole",
			assignments: []domain.PlayerAssignment{
				{UserID: 1, Alias: "watari", Role: domain.Role(42)},
			},
			wantCode: domain.ErrCodeInvalidRole,
		},
		{
			name: "UnknownItemKind",
			assignments: []domain.PlayerAssignment{
				{UserID: 1, Alias: "watari", Role: domain.RoleNeutral, Item: &bogusItem},
			},
			wantCode: domain.ErrCodeInvalidItem,
		},
		{
			name: "DuplicateUser",
			assignments: []domain.PlayerAssignment{
				{UserID: 1, Alias: "watari", Role: domain.RoleNeutral},
				{UserID: 1, Alias: "rem", Role: domain.RoleL},
			},
			wantCode: domain.ErrCodeInvalidFormat,
		},
		{
			name: "ValidCast",
			assignments: []domain.PlayerAssignment{
				{UserID: 1, Alias: "watari", Role: domain.RoleKira, Item: &freshGun},
				{UserID: 2, Alias: "rem", Role: domain.RoleL},
				{UserID: 3, Alias: "misa", Role: domain.RoleNeutral},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.validateAssignments(tt.assignments)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, domain.IsCode(err, tt.wantCode), "expected code %s, got %v", tt.wantCode, err)
		})
	}
}

func TestValidateResults(t *testing.T) {
	uc := newTestGameUseCase()

	tests := []struct {
		name     string
		results  []domain.PlayerResult
		wantCode string
	}{
		{
			name:    "EmptyResults",
			results: nil,
		},
		{
			name: "DistinctUsers",
			results: []domain.PlayerResult{
				{UserID: 1, Won: true, XP: 120},
				{UserID: 2, Won: false, XP: 30},
			},
		},
		{
			name: "DuplicateUser",
			results: []domain.PlayerResult{
				{UserID: 1, Won: true, XP: 120},
				{UserID: 1, Won: true, XP: 120},
			},
			wantCode: domain.ErrCodeInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.validateResults(tt.results)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, domain.IsCode(err, tt.wantCode), "expected code %s, got %v", tt.wantCode, err)
		})
	}
}

func TestNewEventID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := newEventID()
		assert.Len(t, id, 32)
		_, dup := seen[id]
		assert.False(t, dup, "event id %s generated twice", id)
		seen[id] = struct{}{}
	}
}
