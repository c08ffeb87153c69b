package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sbariona/watchlist/internal/middleware"
	"github.com/sbariona/watchlist/internal/services"
)

// renderPage renders an HTML template with the first user and any pending
// flash notices injected, so every page can show the owner's name and
// one-time messages without each handler wiring them up.
func renderPage(c *gin.Context, auth *services.AuthService, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if user, err := auth.FirstUser(); err == nil && user != nil {
		data["User"] = user
	}

	if _, ok := middleware.SessionUserID(c); ok {
		data["Authenticated"] = true
	}

	session := sessions.Default(c)
	if flashes := session.Flashes(); len(flashes) > 0 {
		// Flashes are consumed on read; persist the cleared session.
		_ = session.Save()
		data["Flashes"] = flashes
	}

	c.HTML(status, name, data)
}

// flash queues a one-time notice for the next rendered page.
func flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

// redirect issues the standard post-action redirect.
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}
