package server

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/sbariona/watchlist/internal/config"
	"github.com/sbariona/watchlist/internal/database"
	"github.com/sbariona/watchlist/internal/handlers"
	"github.com/sbariona/watchlist/internal/repository"
	"github.com/sbariona/watchlist/internal/services"
)

// Run starts the web server.
func Run(args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	addr := fs.String("addr", "", "listen address (overrides WATCHLIST_LISTEN_ADDR)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Load()
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg.DatabasePath); err != nil {
		return err
	}
	if err := database.Migrate(); err != nil {
		return err
	}

	db := database.GetDB()
	authService := services.NewAuthService(repository.NewUserRepository(db))
	movieService := services.NewMovieService(repository.NewMovieRepository(db))

	r := handlers.NewRouter(handlers.RouterConfig{
		SessionSecret: cfg.SessionSecret,
		SecureCookies: cfg.GinMode == "release",
	}, authService, movieService)

	log.Printf("Server starting on %s", cfg.ListenAddr)
	return r.Run(cfg.ListenAddr)
}
