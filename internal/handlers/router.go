package handlers

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sbariona/watchlist/internal/constants"
	"github.com/sbariona/watchlist/internal/middleware"
	"github.com/sbariona/watchlist/internal/services"
)

//go:embed templates
var templatesFS embed.FS

// RouterConfig holds the settings the router needs from the environment.
type RouterConfig struct {
	SessionSecret string
	SecureCookies bool
}

// NewRouter assembles the gin engine: templates, session store, recovery to
// the 500 page, and all application routes.
func NewRouter(cfg RouterConfig, authService *services.AuthService, movieService *services.MovieService) *gin.Engine {
	errorHandler := NewErrorHandler(authService)
	authHandler := NewAuthHandler(authService, errorHandler)
	movieHandler := NewMovieHandler(movieService, authService, errorHandler)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		errorHandler.InternalError(c)
	}))

	r.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	r.Use(rejectMalformedForms(errorHandler))

	r.GET("/", movieHandler.Index)
	r.POST("/", movieHandler.Create)

	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", middleware.RequireLogin(), authHandler.Logout)

	movie := r.Group("/movie")
	movie.Use(middleware.RequireLogin())
	{
		movie.GET("/edit/:id", movieHandler.EditPage)
		movie.POST("/edit/:id", movieHandler.Update)
		movie.POST("/delete/:id", movieHandler.Delete)
	}

	r.GET("/settings", middleware.RequireLogin(), authHandler.SettingsPage)
	r.POST("/settings", middleware.RequireLogin(), authHandler.UpdateSettings)

	r.NoRoute(errorHandler.NotFound)

	return r
}

// rejectMalformedForms renders the 400 page for submissions whose body
// cannot be parsed as a form, before any handler sees them.
func rejectMalformedForms(errorHandler *ErrorHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodPost {
			if err := c.Request.ParseForm(); err != nil {
				errorHandler.BadRequest(c)
				c.Abort()
				return
			}
		}
		c.Next()
	}
}
