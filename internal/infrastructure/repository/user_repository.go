package repository

import (
	"errors"
	"time"

	"github.com/lsgame/roomsvc/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements domain.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id int64) (*domain.User, error) {
	var user domain.User
	result := r.db.Where("id = ?", id).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// GetByIDForUpdate retrieves a user by ID with a row lock
func (r *UserRepository) GetByIDForUpdate(id int64) (*domain.User, error) {
	var user domain.User
	result := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// GetByRoomHost retrieves every user currently occupying the given room
func (r *UserRepository) GetByRoomHost(hostID int64) ([]*domain.User, error) {
	var users []*domain.User
	result := r.db.Where("room_host = ?", hostID).
		Order("id ASC").
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// Create creates a new user
func (r *UserRepository) Create(user *domain.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

// Update updates an existing user
func (r *UserRepository) Update(user *domain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

// SetRoomHost updates only the room pointer of a user. Passing nil clears it.
func (r *UserRepository) SetRoomHost(userID int64, hostID *int64) error {
	return r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"room_host":  hostID,
			"updated_at": time.Now(),
		}).Error
}

// ClearRoomHostForRoom clears the room pointer of every user in the given room
func (r *UserRepository) ClearRoomHostForRoom(hostID int64) error {
	return r.db.Model(&domain.User{}).
		Where("room_host = ?", hostID).
		Updates(map[string]interface{}{
			"room_host":  nil,
			"updated_at": time.Now(),
		}).Error
}

// MoveRoomMembers re-points every member of one room at another room
func (r *UserRepository) MoveRoomMembers(oldHostID, newHostID int64) error {
	return r.db.Model(&domain.User{}).
		Where("room_host = ?", oldHostID).
		Updates(map[string]interface{}{
			"room_host":  newHostID,
			"updated_at": time.Now(),
		}).Error
}

// AwardGameResult bumps a user's game counters. The counters only ever
// increase, so increments are expressed in SQL rather than read-modify-write.
func (r *UserRepository) AwardGameResult(userID int64, won bool, xp int64) error {
	updates := map[string]interface{}{
		"total_games": gorm.Expr("total_games + 1"),
		"xp":          gorm.Expr("xp + ?", xp),
		"updated_at":  time.Now(),
	}
	if won {
		updates["wins"] = gorm.Expr("wins + 1")
	}
	return r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(updates).Error
}

// WithTransaction returns a repository scoped to the given transaction
func (r *UserRepository) WithTransaction(tx *gorm.DB) domain.UserRepository {
	return &UserRepository{db: tx}
}
