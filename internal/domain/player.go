package domain

import (
	"time"

	"gorm.io/gorm"
)

// Player represents a user's role and game-specific attributes once a game
// has started for their room. Player rows exist only for the duration of a
// game; the alias shields the user's platform identity from the other
// players.
type Player struct {
	UserID    int64     `json:"user_id" gorm:"primaryKey;column:id;type:bigint"`
	Alias     string    `json:"alias" gorm:"not null;type:varchar(64)"`
	Alive     bool      `json:"alive" gorm:"not null;default:true"`
	RoomHost  int64     `json:"room_host" gorm:"column:room_host;type:bigint;index;not null"`
	Info      *string   `json:"info,omitempty" gorm:"type:text"`
	Item      *Item     `json:"item,omitempty" gorm:"column:item;type:integer"`
	Role      Role      `json:"role" gorm:"not null;type:integer"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for Player
func (p Player) TableName() string {
	return "players"
}

// UseItem consumes the player's held item. A player must hold a fresh item
// to use it; both the no-item and already-used cases surface as invalid
// state, never as silent no-ops.
func (p *Player) UseItem() error {
	if p.Item == nil {
		return NewInvalidStateError(ErrCodeNoItemHeld, "This player holds no item")
	}
	used, err := p.Item.Use()
	if err != nil {
		return err
	}
	p.Item = &used
	return nil
}

// Eliminate marks the player as dead. There is no resurrection path.
func (p *Player) Eliminate() {
	p.Alive = false
}

// PlayerRepository defines the interface for player data
type PlayerRepository interface {
	GetByUserID(userID int64) (*Player, error)
	GetByRoomHost(hostID int64) ([]*Player, error)
	CountByRoomHost(hostID int64) (int64, error)
	Create(player *Player) error
	Update(player *Player) error
	DeleteByRoomHost(hostID int64) error
	MoveRoomPlayers(oldHostID, newHostID int64) error
	WithTransaction(tx *gorm.DB) PlayerRepository
}

// PlayerUseCase defines the interface for player logic during a game
type PlayerUseCase interface {
	GetPlayer(userID int64) (*Player, error)
	UseItem(userID int64) (*Player, error)
	EliminatePlayer(userID int64) (*Player, error)
}
