package database

import (
	"fmt"
	"log"

	"github.com/sbariona/watchlist/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens (creating if necessary) the SQLite database file at path.
func Connect(path string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to open database %s: %w", path, err)
	}

	log.Printf("Database opened at %s", path)
	return nil
}

// Migrate creates or updates the schema for all models.
func Migrate() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Movie{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Drop removes all application tables. Used by `initdb --drop`.
func Drop() error {
	err := DB.Migrator().DropTable(
		&models.User{},
		&models.Movie{},
	)
	if err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
