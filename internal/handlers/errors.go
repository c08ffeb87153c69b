package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sbariona/watchlist/internal/services"
)

// ErrorHandler renders the static error pages.
type ErrorHandler struct {
	authService *services.AuthService
}

// NewErrorHandler creates a new ErrorHandler.
func NewErrorHandler(authService *services.AuthService) *ErrorHandler {
	return &ErrorHandler{
		authService: authService,
	}
}

// NotFound renders the 404 page.
func (h *ErrorHandler) NotFound(c *gin.Context) {
	renderPage(c, h.authService, http.StatusNotFound, "404.html", nil)
}

// BadRequest renders the 400 page.
func (h *ErrorHandler) BadRequest(c *gin.Context) {
	renderPage(c, h.authService, http.StatusBadRequest, "400.html", nil)
}

// InternalError renders the 500 page.
func (h *ErrorHandler) InternalError(c *gin.Context) {
	renderPage(c, h.authService, http.StatusInternalServerError, "500.html", nil)
}
