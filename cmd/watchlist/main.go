// Command watchlist is the entry point for both the web server and the
// out-of-band admin commands that manage the store directly.
package main

import (
	"fmt"
	"os"

	"github.com/sbariona/watchlist/internal/cmd/admin"
	"github.com/sbariona/watchlist/internal/cmd/forge"
	"github.com/sbariona/watchlist/internal/cmd/initdb"
	"github.com/sbariona/watchlist/internal/cmd/server"
	"github.com/sbariona/watchlist/internal/cmd/showuser"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// run parses argv and invokes the matching subcommand handler.
func run(argv []string) error {
	if len(argv) < 2 {
		usage()
		return fmt.Errorf("missing subcommand")
	}

	switch argv[1] {
	case "server":
		return server.Run(argv[2:])
	case "initdb":
		return initdb.Run(argv[2:])
	case "show-first-user":
		return showuser.Run(argv[2:])
	case "admin":
		return admin.Run(argv[2:])
	case "forge":
		return forge.Run(argv[2:])
	case "-h", "--help", "help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown subcommand %q", argv[1])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: watchlist <subcommand> [flags]

Subcommands:
  server           run the web server
  initdb           initialize the database schema (--drop to recreate)
  show-first-user  print the first user's name and username
  admin            create or update the admin account
  forge            seed demo data`)
}
