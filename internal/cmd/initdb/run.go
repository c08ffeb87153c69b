package initdb

import (
	"flag"
	"fmt"

	"github.com/sbariona/watchlist/internal/config"
	"github.com/sbariona/watchlist/internal/database"
)

// Run initializes the database schema. With --drop all existing tables and
// their data are removed first.
func Run(args []string) error {
	fs := flag.NewFlagSet("initdb", flag.ContinueOnError)
	drop := fs.Bool("drop", false, "create after drop")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Load()
	if err := database.Connect(cfg.DatabasePath); err != nil {
		return err
	}

	if *drop {
		if err := database.Drop(); err != nil {
			return err
		}
	}
	if err := database.Migrate(); err != nil {
		return err
	}

	fmt.Println("Initialized database.")
	return nil
}
