package domain

import (
	"time"

	"gorm.io/gorm"
)

// User represents a person who has ever interacted with the game. Rows are
// created lazily on first room interaction and never deleted, so the
// counters persist across games.
type User struct {
	ID         int64     `json:"user_id" gorm:"primaryKey;column:id;type:bigint"`
	TotalGames int64     `json:"total_games" gorm:"not null;default:0"`
	Wins       int64     `json:"wins" gorm:"not null;default:0"`
	XP         int64     `json:"xp" gorm:"column:xp;not null;default:0"`
	RoomHost   *int64    `json:"room_host,omitempty" gorm:"column:room_host;type:bigint;index"`
	CreatedAt  time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"not null"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// IsHosting reports whether the user is the host of their current room.
// Hosting and membership in another room are mutually exclusive.
func (u *User) IsHosting() bool {
	return u.RoomHost != nil && *u.RoomHost == u.ID
}

// InRoom reports whether the user currently occupies any room
func (u *User) InRoom() bool {
	return u.RoomHost != nil
}

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByID(id int64) (*User, error)
	GetByIDForUpdate(id int64) (*User, error)
	GetByRoomHost(hostID int64) ([]*User, error)
	Create(user *User) error
	Update(user *User) error
	SetRoomHost(userID int64, hostID *int64) error
	ClearRoomHostForRoom(hostID int64) error
	MoveRoomMembers(oldHostID, newHostID int64) error
	AwardGameResult(userID int64, won bool, xp int64) error
	WithTransaction(tx *gorm.DB) UserRepository
}

// UserUseCase defines the interface for user profile logic
type UserUseCase interface {
	GetProfile(userID int64) (*User, error)
}
