package admin

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/sbariona/watchlist/internal/config"
	"github.com/sbariona/watchlist/internal/database"
	"github.com/sbariona/watchlist/internal/repository"
	"github.com/sbariona/watchlist/internal/services"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// Run creates the admin account or resets its name and password. The
// password is read interactively without echo when --password is absent and
// is never printed or logged.
func Run(args []string) error {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	name := fs.String("name", "", "display name of the admin account")
	password := fs.String("password", "", "password (prompted interactively when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *name == "" {
		return errors.New("--name is required")
	}

	pw := *password
	if pw == "" {
		var err error
		pw, err = promptPassword()
		if err != nil {
			return err
		}
	}
	if pw == "" {
		return errors.New("password must not be empty")
	}

	cfg := config.Load()
	if err := database.Connect(cfg.DatabasePath); err != nil {
		return err
	}
	if err := database.Migrate(); err != nil {
		return err
	}

	authService := services.NewAuthService(repository.NewUserRepository(database.GetDB()))
	created, err := authService.UpsertAdmin(*name, pw)
	if err != nil {
		return err
	}

	if created {
		fmt.Println("Creating user...")
	} else {
		fmt.Println("Updating user...")
	}
	fmt.Println("Done")
	return nil
}

// promptPassword reads the password twice from the terminal and requires
// both entries to match.
func promptPassword() (string, error) {
	fmt.Print("Password: ")
	first, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Repeat for confirmation: ")
	second, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
