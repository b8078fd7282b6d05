package seeder

import (
	"log"

	"github.com/lsgame/roomsvc/internal/domain"
)

// Seeder handles database seeding operations
type Seeder struct {
	userRepo domain.UserRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo domain.UserRepository) *Seeder {
	return &Seeder{
		userRepo: userRepo,
	}
}

// SeedUsers seeds the database with initial users
func (s *Seeder) SeedUsers() error {
	log.Printf("Seeding users...")

	users := []struct {
		id         int64
		totalGames int64
		wins       int64
		xp         int64
	}{
		{34633089486, 12, 5, 340},
		{34679664254, 8, 2, 190},
		{34616761765, 27, 14, 880},
		{34673635133, 0, 0, 0},
	}

	for _, u := range users {
		existingUser, err := s.userRepo.GetByID(u.id)
		if err != nil {
			log.Printf("Error checking existing user, skipping.")
			continue
		}

		if existingUser != nil {
			log.Printf("User already exists, skipping.")
			continue
		}

		user := &domain.User{
			ID:         u.id,
			TotalGames: u.totalGames,
			Wins:       u.wins,
			XP:         u.xp,
		}

		if err := s.userRepo.Create(user); err != nil {
			log.Printf("Error creating user.")
			return err
		}
		log.Printf("Successfully created user.")
	}

	log.Printf("User seeding completed successfully")
	return nil
}
