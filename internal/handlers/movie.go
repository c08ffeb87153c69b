package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sbariona/watchlist/internal/middleware"
	"github.com/sbariona/watchlist/internal/services"
)

// MovieHandler implements the watchlist pages: the index with its inline
// creation form, editing, and deletion.
type MovieHandler struct {
	movieService *services.MovieService
	authService  *services.AuthService
	errors       *ErrorHandler
}

// NewMovieHandler creates a new MovieHandler.
func NewMovieHandler(movieService *services.MovieService, authService *services.AuthService, errorHandler *ErrorHandler) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
		authService:  authService,
		errors:       errorHandler,
	}
}

// Index lists all movies.
func (h *MovieHandler) Index(c *gin.Context) {
	movies, err := h.movieService.List()
	if err != nil {
		h.errors.InternalError(c)
		return
	}

	renderPage(c, h.authService, http.StatusOK, "index.html", gin.H{
		"Movies": movies,
	})
}

// Create adds a movie from the index form. Anonymous submissions are bounced
// back to the index with no notice and no write.
func (h *MovieHandler) Create(c *gin.Context) {
	if _, ok := middleware.SessionUserID(c); !ok {
		redirect(c, "/")
		return
	}

	title := c.PostForm("title")
	year := c.PostForm("year")

	if _, err := h.movieService.Create(title, year); err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			flash(c, "Invalid Input.")
			redirect(c, "/")
			return
		}
		h.errors.InternalError(c)
		return
	}

	flash(c, "Item created.")
	redirect(c, "/")
}

// EditPage renders the edit form for one movie.
func (h *MovieHandler) EditPage(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	movie, err := h.movieService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			h.errors.NotFound(c)
			return
		}
		h.errors.InternalError(c)
		return
	}

	renderPage(c, h.authService, http.StatusOK, "edit.html", gin.H{
		"Movie": movie,
	})
}

// Update rewrites a movie's title and year. Invalid input returns to the
// same edit page so the form can be corrected.
func (h *MovieHandler) Update(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	title := c.PostForm("title")
	year := c.PostForm("year")

	if _, err := h.movieService.Update(id, title, year); err != nil {
		switch {
		case errors.Is(err, services.ErrMovieNotFound):
			h.errors.NotFound(c)
		case errors.Is(err, services.ErrInvalidInput):
			flash(c, "Invalid input.")
			redirect(c, "/movie/edit/"+strconv.FormatUint(uint64(id), 10))
		default:
			h.errors.InternalError(c)
		}
		return
	}

	flash(c, "Item updated.")
	redirect(c, "/")
}

// Delete removes a movie.
func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := h.movieID(c)
	if !ok {
		return
	}

	if err := h.movieService.Delete(id); err != nil {
		if errors.Is(err, services.ErrMovieNotFound) {
			h.errors.NotFound(c)
			return
		}
		h.errors.InternalError(c)
		return
	}

	flash(c, "Item Deleted.")
	redirect(c, "/")
}

// movieID parses the :id route parameter, rendering the 404 page for
// anything that is not a number.
func (h *MovieHandler) movieID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.errors.NotFound(c)
		return 0, false
	}
	return uint(id), true
}
