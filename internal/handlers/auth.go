package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sbariona/watchlist/internal/constants"
	"github.com/sbariona/watchlist/internal/middleware"
	"github.com/sbariona/watchlist/internal/services"
)

// AuthHandler coordinates login, logout, and the settings page.
type AuthHandler struct {
	authService *services.AuthService
	errors      *ErrorHandler
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, errorHandler *ErrorHandler) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		errors:      errorHandler,
	}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	renderPage(c, h.authService, http.StatusOK, "login.html", nil)
}

// Login authenticates the single user and initializes the session.
// Failures never reveal which part of the credentials was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		flash(c, "Invalid input.")
		redirect(c, "/login")
		return
	}

	user, err := h.authService.Login(services.LoginInput{
		Username: username,
		Password: password,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			flash(c, "Invalid username or password.")
			redirect(c, "/login")
			return
		}
		h.errors.InternalError(c)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.ContextKeyUserID, user.ID)
	session.AddFlash("Login successfully.")
	if err := session.Save(); err != nil {
		h.errors.InternalError(c)
		return
	}
	redirect(c, "/")
}

// Logout removes the authentication session.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.AddFlash("Successfully Logout.")
	if err := session.Save(); err != nil {
		h.errors.InternalError(c)
		return
	}
	redirect(c, "/")
}

// SettingsPage renders the display name form.
func (h *AuthHandler) SettingsPage(c *gin.Context) {
	renderPage(c, h.authService, http.StatusOK, "settings.html", nil)
}

// UpdateSettings changes the current user's display name.
func (h *AuthHandler) UpdateSettings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		redirect(c, "/login")
		return
	}

	name := c.PostForm("name")
	if err := h.authService.UpdateName(userID, name); err != nil {
		if errors.Is(err, services.ErrInvalidName) {
			flash(c, "Invalid input.")
			redirect(c, "/settings")
			return
		}
		h.errors.InternalError(c)
		return
	}

	flash(c, "Settings updated.")
	redirect(c, "/")
}
