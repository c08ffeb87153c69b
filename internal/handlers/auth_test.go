package handlers

import (
	"net/url"
	"testing"

	"github.com/sbariona/watchlist/internal/models"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_LoginLogout(t *testing.T) {
	env := setupTestEnv(t)
	env.login(t)

	// Nav reflects the session.
	body := env.get(t, "/")
	require.Contains(t, body, "Settings")
	require.Contains(t, body, "Logout")

	body = env.get(t, "/logout")
	require.Contains(t, body, "Successfully Logout.")

	body = env.get(t, "/")
	require.NotContains(t, body, "/logout")
	require.Contains(t, body, "Login")
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.authService.UpsertAdmin("Simon", "supersecret")
	require.NoError(t, err)

	body := env.postForm(t, "/login", url.Values{
		"username": {"Simon"},
		"password": {"wrong"},
	})
	require.Contains(t, body, "Invalid username or password.")
	require.Contains(t, body, "<h3>Login</h3>")
}

// The failure notice never says whether the name or the password was wrong.
func TestAuthHandler_Login_WrongName(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.authService.UpsertAdmin("Simon", "supersecret")
	require.NoError(t, err)

	body := env.postForm(t, "/login", url.Values{
		"username": {"Someone Else"},
		"password": {"supersecret"},
	})
	require.Contains(t, body, "Invalid username or password.")
}

func TestAuthHandler_Login_EmptyFields(t *testing.T) {
	env := setupTestEnv(t)

	body := env.postForm(t, "/login", url.Values{
		"username": {""},
		"password": {""},
	})
	require.Contains(t, body, "Invalid input.")
}

func TestAuthHandler_UpdateSettings(t *testing.T) {
	env := setupTestEnv(t)
	env.login(t)

	body := env.postForm(t, "/settings", url.Values{"name": {"New Name"}})
	require.Contains(t, body, "Settings updated.")

	var user models.User
	require.NoError(t, env.db.First(&user).Error)
	require.Equal(t, "New Name", user.Name)
}

func TestAuthHandler_UpdateSettings_Invalid(t *testing.T) {
	env := setupTestEnv(t)
	env.login(t)

	for _, name := range []string{"", "a name much too long to be allowed"} {
		body := env.postForm(t, "/settings", url.Values{"name": {name}})
		require.Contains(t, body, "Invalid input.")
	}

	var user models.User
	require.NoError(t, env.db.First(&user).Error)
	require.Equal(t, "Simon", user.Name)
}
