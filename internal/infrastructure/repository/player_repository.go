package repository

import (
	"errors"
	"time"

	"github.com/lsgame/roomsvc/internal/domain"

	"gorm.io/gorm"
)

// PlayerRepository implements domain.PlayerRepository
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetByUserID retrieves a player by the user's ID
func (r *PlayerRepository) GetByUserID(userID int64) (*domain.Player, error) {
	var player domain.Player
	result := r.db.Where("id = ?", userID).First(&player)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &player, nil
}

// GetByRoomHost retrieves every player of a room's running game
func (r *PlayerRepository) GetByRoomHost(hostID int64) ([]*domain.Player, error) {
	var players []*domain.Player
	result := r.db.Where("room_host = ?", hostID).
		Order("id ASC").
		Find(&players)
	if result.Error != nil {
		return nil, result.Error
	}
	return players, nil
}

// CountByRoomHost returns the number of players in a room's running game
func (r *PlayerRepository) CountByRoomHost(hostID int64) (int64, error) {
	var count int64
	result := r.db.Model(&domain.Player{}).
		Where("room_host = ?", hostID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Create creates a new player
func (r *PlayerRepository) Create(player *domain.Player) error {
	player.CreatedAt = time.Now()
	player.UpdatedAt = time.Now()
	return r.db.Create(player).Error
}

// Update updates an existing player
func (r *PlayerRepository) Update(player *domain.Player) error {
	player.UpdatedAt = time.Now()
	return r.db.Save(player).Error
}

// DeleteByRoomHost removes every player row of a room's game
func (r *PlayerRepository) DeleteByRoomHost(hostID int64) error {
	return r.db.Where("room_host = ?", hostID).Delete(&domain.Player{}).Error
}

// MoveRoomPlayers re-points every player of one room at another room
func (r *PlayerRepository) MoveRoomPlayers(oldHostID, newHostID int64) error {
	return r.db.Model(&domain.Player{}).
		Where("room_host = ?", oldHostID).
		Updates(map[string]interface{}{
			"room_host":  newHostID,
			"updated_at": time.Now(),
		}).Error
}

// WithTransaction returns a repository scoped to the given transaction
func (r *PlayerRepository) WithTransaction(tx *gorm.DB) domain.PlayerRepository {
	return &PlayerRepository{db: tx}
}
