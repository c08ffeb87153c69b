package forge

import (
	"flag"
	"fmt"

	"github.com/sbariona/watchlist/internal/config"
	"github.com/sbariona/watchlist/internal/database"
	"github.com/sbariona/watchlist/internal/models"
	"github.com/sbariona/watchlist/internal/repository"
	"gorm.io/gorm"
)

// SeedMovies is the fixed demo fixture inserted by `forge`.
var SeedMovies = []models.Movie{
	{Title: "My Neighbor Totoro", Year: "1988"},
	{Title: "Dead Poets Society", Year: "1989"},
	{Title: "A Perfect World", Year: "1993"},
	{Title: "Leon", Year: "1994"},
	{Title: "Mahjong", Year: "1996"},
	{Title: "Swallowtail Butterfly", Year: "1996"},
	{Title: "King of Comedy", Year: "1999"},
	{Title: "Devils on the Doorstep", Year: "1999"},
	{Title: "WALL-E", Year: "2008"},
	{Title: "The Pork of Music", Year: "2012"},
}

// SeedUserName is the display name of the demo user. The demo user carries
// no credentials; `admin` must still be run before anyone can log in.
const SeedUserName = "Simon Bariona"

// Run seeds the demo user and movie rows.
func Run(args []string) error {
	fs := flag.NewFlagSet("forge", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Load()
	if err := database.Connect(cfg.DatabasePath); err != nil {
		return err
	}
	if err := database.Migrate(); err != nil {
		return err
	}

	if err := Seed(database.GetDB()); err != nil {
		return err
	}

	fmt.Println("Done.")
	return nil
}

// Seed inserts the fixture rows through the repositories.
func Seed(db *gorm.DB) error {
	userRepo := repository.NewUserRepository(db)
	movieRepo := repository.NewMovieRepository(db)

	if err := userRepo.Create(&models.User{Name: SeedUserName}); err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}
	for _, movie := range SeedMovies {
		m := movie
		if err := movieRepo.Create(&m); err != nil {
			return fmt.Errorf("failed to seed movie %q: %w", m.Title, err)
		}
	}
	return nil
}
