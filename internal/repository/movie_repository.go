package repository

import (
	"github.com/sbariona/watchlist/internal/models"
	"gorm.io/gorm"
)

// GormMovieRepository is a GORM implementation of MovieRepository
type GormMovieRepository struct {
	db *gorm.DB
}

// NewMovieRepository creates a new MovieRepository
func NewMovieRepository(db *gorm.DB) MovieRepository {
	return &GormMovieRepository{db: db}
}

// Create creates a new movie
func (r *GormMovieRepository) Create(movie *models.Movie) error {
	return r.db.Create(movie).Error
}

// FindByID finds a movie by ID
func (r *GormMovieRepository) FindByID(id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := r.db.First(&movie, id).Error; err != nil {
		return nil, err
	}
	return &movie, nil
}

// List returns all movies in natural storage order
func (r *GormMovieRepository) List() ([]models.Movie, error) {
	var movies []models.Movie
	if err := r.db.Find(&movies).Error; err != nil {
		return nil, err
	}
	return movies, nil
}

// Save persists all fields of an existing movie
func (r *GormMovieRepository) Save(movie *models.Movie) error {
	return r.db.Save(movie).Error
}

// Delete removes a movie
func (r *GormMovieRepository) Delete(id uint) error {
	return r.db.Delete(&models.Movie{}, id).Error
}
