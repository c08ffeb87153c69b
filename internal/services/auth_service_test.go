package services

import (
	"testing"

	"github.com/sbariona/watchlist/internal/models"
	"github.com/sbariona/watchlist/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewAuthService(repository.NewUserRepository(db)), db
}

func TestAuthService_UpsertAdmin_CreatesThenUpdates(t *testing.T) {
	svc, db := setupAuthService(t)

	created, err := svc.UpsertAdmin("Simon", "supersecret")
	require.NoError(t, err)
	require.True(t, created)

	var user models.User
	require.NoError(t, db.First(&user).Error)
	require.Equal(t, "Admin", user.Username)
	require.Equal(t, "Simon", user.Name)
	require.NotEmpty(t, user.PasswordHash)
	require.NotContains(t, user.PasswordHash, "supersecret")

	created, err = svc.UpsertAdmin("Simone", "newsecret")
	require.NoError(t, err)
	require.False(t, created)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	require.NoError(t, db.First(&user).Error)
	require.Equal(t, "Simone", user.Name)
	require.Equal(t, "Admin", user.Username)
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.UpsertAdmin("Simon", "supersecret")
	require.NoError(t, err)

	user, err := svc.Login(LoginInput{Username: "Simon", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, "Simon", user.Name)

	// The login form's "username" is matched against the display name, not
	// the username column.
	_, err = svc.Login(LoginInput{Username: "Admin", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginInput{Username: "Simon", Password: "wrong"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(LoginInput{Username: "", Password: ""})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_NoUser(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.Login(LoginInput{Username: "Simon", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UpdateName(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.UpsertAdmin("Simon", "supersecret")
	require.NoError(t, err)

	user, err := svc.FirstUser()
	require.NoError(t, err)
	require.NotNil(t, user)

	require.NoError(t, svc.UpdateName(user.ID, "New Name"))

	updated, err := svc.GetUser(user.ID)
	require.NoError(t, err)
	require.Equal(t, "New Name", updated.Name)

	require.ErrorIs(t, svc.UpdateName(user.ID, ""), ErrInvalidName)
	require.ErrorIs(t, svc.UpdateName(user.ID, "this name is far too long for it"), ErrInvalidName)
}

func TestAuthService_FirstUser_Empty(t *testing.T) {
	svc, _ := setupAuthService(t)

	user, err := svc.FirstUser()
	require.NoError(t, err)
	require.Nil(t, user)
}
