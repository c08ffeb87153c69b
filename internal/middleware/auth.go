package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sbariona/watchlist/internal/constants"
)

// RequireLogin checks if the user is authenticated via session.
// Unauthenticated requests are redirected to the login page with a notice
// instead of performing the guarded action.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get(constants.ContextKeyUserID)

		if userID == nil {
			session.AddFlash("login required")
			_ = session.Save()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		// Store user ID in context for easy access in handlers
		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	return asUserID(userID)
}

// SessionUserID reads the user ID straight from the session, for routes that
// are not behind RequireLogin.
func SessionUserID(c *gin.Context) (uint, bool) {
	userID := sessions.Default(c).Get(constants.ContextKeyUserID)
	if userID == nil {
		return 0, false
	}
	return asUserID(userID)
}

func asUserID(v any) (uint, bool) {
	switch id := v.(type) {
	case uint:
		return id, true
	case uint64:
		return uint(id), true
	case int:
		if id < 0 {
			return 0, false
		}
		return uint(id), true
	default:
		return 0, false
	}
}
