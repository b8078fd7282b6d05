package domain

import (
	"time"

	"gorm.io/gorm"
)

// GameState holds the slots for a room's in-progress game. The phase/turn
// state machine itself lives in the gateway collaborator; the room only
// records that a game is running and where it stands.
type GameState struct {
	Phase int `json:"phase"`
	Round int `json:"round"`
	Turn  int `json:"turn"`
}

// Room represents a room. A room is keyed by its host's user id: one room
// per host, at most one room per host at a time.
type Room struct {
	HostID    int64     `json:"host_id" gorm:"primaryKey;column:host_id;type:bigint"`
	GamePhase *int      `json:"game_phase,omitempty" gorm:"column:game_phase"`
	GameRound *int      `json:"game_round,omitempty" gorm:"column:game_round"`
	GameTurn  *int      `json:"game_turn,omitempty" gorm:"column:game_turn"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Room
func (r Room) TableName() string {
	return "rooms"
}

// GameStarted reports whether a game is running in this room. A started
// game restricts membership changes.
func (r *Room) GameStarted() bool {
	return r.GamePhase != nil
}

// GameState returns the game state slots, or nil when no game has started
func (r *Room) GameState() *GameState {
	if !r.GameStarted() {
		return nil
	}
	state := &GameState{Phase: *r.GamePhase}
	if r.GameRound != nil {
		state.Round = *r.GameRound
	}
	if r.GameTurn != nil {
		state.Turn = *r.GameTurn
	}
	return state
}

// SetGameState fills the game state slots. Passing nil clears them.
func (r *Room) SetGameState(state *GameState) {
	if state == nil {
		r.GamePhase, r.GameRound, r.GameTurn = nil, nil, nil
		return
	}
	phase, round, turn := state.Phase, state.Round, state.Turn
	r.GamePhase, r.GameRound, r.GameTurn = &phase, &round, &turn
}

// RoomRepository defines the interface for room data
type RoomRepository interface {
	GetByHostID(hostID int64) (*Room, error)
	GetByHostIDForUpdate(hostID int64) (*Room, error)
	Create(room *Room) error
	Update(room *Room) error
	Delete(hostID int64) error
	Count() (int64, error)
	WithTransaction(tx *gorm.DB) RoomRepository
}

// RoomInfo is the success payload of a room lookup
type RoomInfo struct {
	Host        *UserHandle `json:"host"`
	GameState   *GameState  `json:"game_state,omitempty"`
	MemberCount int         `json:"member_count"`
}

// PlayerAssignment carries one player's initial attributes for StartGame
type PlayerAssignment struct {
	UserID int64   `json:"user_id"`
	Alias  string  `json:"alias"`
	Role   Role    `json:"role"`
	Info   *string `json:"info,omitempty"`
	Item   *Item   `json:"item,omitempty"`
}

// PlayerResult carries one player's outcome for FinishGame
type PlayerResult struct {
	UserID int64 `json:"user_id"`
	Won    bool  `json:"won"`
	XP     int64 `json:"xp"`
}

// RoomUseCase defines the interface for the membership coordinator and the
// room lifecycle built on top of it
type RoomUseCase interface {
	CreateRoom(userID int64) (*RoomInfo, error)
	JoinRoom(userID, hostID int64) (*RoomInfo, error)
	LeaveRoom(userID int64) error
	GetRoomInfo(callerID int64, target *int64) (*RoomInfo, error)
	TransferHost(hostID, newHostID int64) (*RoomInfo, error)
	DeleteRoom(hostID int64) error
}

// GameUseCase defines the interface for the game lifecycle primitives. Only
// membership consistency is enforced here; phase and turn resolution are
// driven by the gateway collaborator.
type GameUseCase interface {
	StartGame(hostID int64, assignments []PlayerAssignment) error
	FinishGame(hostID int64, results []PlayerResult) error
}
