package repository

import (
	"github.com/sbariona/watchlist/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// First returns the first user row, the only account the app recognizes
	First() (*models.User, error)

	// FindByID finds a user by ID
	FindByID(id uint) (*models.User, error)

	// Save persists all fields of an existing user
	Save(user *models.User) error
}

// MovieRepository defines the interface for movie data access
type MovieRepository interface {
	// Create creates a new movie
	Create(movie *models.Movie) error

	// FindByID finds a movie by ID
	FindByID(id uint) (*models.Movie, error)

	// List returns all movies in natural storage order
	List() ([]models.Movie, error)

	// Save persists all fields of an existing movie
	Save(movie *models.Movie) error

	// Delete removes a movie
	Delete(id uint) error
}
