package repository

import (
	"errors"
	"time"

	"github.com/lsgame/roomsvc/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomRepository implements domain.RoomRepository
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *gorm.DB) domain.RoomRepository {
	return &RoomRepository{db: db}
}

// GetByHostID retrieves a room by its host's user ID
func (r *RoomRepository) GetByHostID(hostID int64) (*domain.Room, error) {
	var room domain.Room
	result := r.db.Where("host_id = ?", hostID).First(&room)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &room, nil
}

// GetByHostIDForUpdate retrieves a room by its host's user ID with a row lock
func (r *RoomRepository) GetByHostIDForUpdate(hostID int64) (*domain.Room, error) {
	var room domain.Room
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("host_id = ?", hostID).
		First(&room)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &room, nil
}

// Create creates a new room
func (r *RoomRepository) Create(room *domain.Room) error {
	room.CreatedAt = time.Now()
	room.UpdatedAt = time.Now()
	return r.db.Create(room).Error
}

// Update updates an existing room
func (r *RoomRepository) Update(room *domain.Room) error {
	room.UpdatedAt = time.Now()
	return r.db.Save(room).Error
}

// Delete removes a room row
func (r *RoomRepository) Delete(hostID int64) error {
	return r.db.Where("host_id = ?", hostID).Delete(&domain.Room{}).Error
}

// Count returns the number of open rooms
func (r *RoomRepository) Count() (int64, error) {
	var count int64
	result := r.db.Model(&domain.Room{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// WithTransaction returns a repository scoped to the given transaction
func (r *RoomRepository) WithTransaction(tx *gorm.DB) domain.RoomRepository {
	return &RoomRepository{db: tx}
}
