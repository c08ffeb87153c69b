package services

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/sbariona/watchlist/internal/constants"
	"github.com/sbariona/watchlist/internal/models"
	"github.com/sbariona/watchlist/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrMovieNotFound = errors.New("movie not found")
)

// MovieService handles watchlist business logic.
type MovieService struct {
	movieRepo repository.MovieRepository
}

// NewMovieService creates a new MovieService.
func NewMovieService(movieRepo repository.MovieRepository) *MovieService {
	return &MovieService{
		movieRepo: movieRepo,
	}
}

// List returns all movies.
func (s *MovieService) List() ([]models.Movie, error) {
	movies, err := s.movieRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

// Get retrieves a movie by ID.
func (s *MovieService) Get(id uint) (*models.Movie, error) {
	movie, err := s.movieRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}
	return movie, nil
}

// Create validates and inserts a new movie. The year only has to fit the
// column here; the exact-length rule applies on edit. Historical quirk,
// covered by tests.
func (s *MovieService) Create(title, year string) (*models.Movie, error) {
	if title == "" || year == "" ||
		utf8.RuneCountInString(year) > constants.YearLength ||
		utf8.RuneCountInString(title) > constants.MaxTitleLength {
		return nil, ErrInvalidInput
	}

	movie := &models.Movie{
		Title: title,
		Year:  year,
	}
	if err := s.movieRepo.Create(movie); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}
	return movie, nil
}

// Update rewrites both fields of an existing movie. An unknown ID wins over
// bad input, and unlike Create the year must be exactly four characters.
func (s *MovieService) Update(id uint, title, year string) (*models.Movie, error) {
	movie, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if title == "" || year == "" ||
		utf8.RuneCountInString(year) != constants.YearLength ||
		utf8.RuneCountInString(title) > constants.MaxTitleLength {
		return nil, ErrInvalidInput
	}

	movie.Title = title
	movie.Year = year
	if err := s.movieRepo.Save(movie); err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}
	return movie, nil
}

// Delete removes a movie, reporting ErrMovieNotFound for unknown IDs.
func (s *MovieService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.movieRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	return nil
}
