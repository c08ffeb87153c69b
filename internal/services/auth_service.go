package services

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/sbariona/watchlist/internal/constants"
	"github.com/sbariona/watchlist/internal/models"
	"github.com/sbariona/watchlist/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrInvalidName          = errors.New("invalid display name")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles authentication and account maintenance for the single
// admin user.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials against the first (and only meaningful) user.
// The submitted name is compared to the user's display name, and failures are
// never distinguished from one another.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.Username != user.Name {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// FirstUser returns the account every page displays in its header, or nil
// when the database has not been seeded yet.
func (s *AuthService) FirstUser() (*models.User, error) {
	user, err := s.userRepo.First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UpdateName changes the display name of an existing user.
func (s *AuthService) UpdateName(id uint, name string) error {
	if name == "" || utf8.RuneCountInString(name) > constants.MaxNameLength {
		return ErrInvalidName
	}

	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	user.Name = name
	if err := s.userRepo.Save(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpsertAdmin creates the admin account if none exists, or resets the
// existing account's name and password. It reports whether a new account was
// created. The plaintext password is hashed immediately and never retained.
func (s *AuthService) UpsertAdmin(name, password string) (created bool, err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, ErrFailedToHashPassword
	}

	user, err := s.userRepo.First()
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("failed to find user: %w", err)
		}
		user = &models.User{
			Username: "Admin",
			Name:     name,
		}
		user.PasswordHash = string(hash)
		if err := s.userRepo.Create(user); err != nil {
			return false, fmt.Errorf("failed to create user: %w", err)
		}
		return true, nil
	}

	user.Name = name
	user.PasswordHash = string(hash)
	if err := s.userRepo.Save(user); err != nil {
		return false, fmt.Errorf("failed to update user: %w", err)
	}
	return false, nil
}
