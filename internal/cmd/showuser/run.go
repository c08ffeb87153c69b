package showuser

import (
	"errors"
	"flag"
	"fmt"

	"github.com/sbariona/watchlist/internal/config"
	"github.com/sbariona/watchlist/internal/database"
	"github.com/sbariona/watchlist/internal/repository"
	"gorm.io/gorm"
)

// Run prints the first user's name and username, or a notice when the
// database holds no users.
func Run(args []string) error {
	fs := flag.NewFlagSet("show-first-user", flag.ContinueOnError)
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

	user, err := repository.NewUserRepository(database.GetDB()).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Println("Empty DataBase.")
			return nil
		}
		return err
	}

	fmt.Printf("Name = %s  Username = %s\n", user.Name, user.Username)
	return nil
}
