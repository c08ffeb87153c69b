package database

import (
	"path/filepath"
	"testing"

	"github.com/sbariona/watchlist/internal/models"
	"github.com/stretchr/testify/require"
)

func TestConnectMigrateDrop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	require.NoError(t, Connect(path))
	db := GetDB()
	require.NotNil(t, db)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		SetDB(nil)
	})

	require.NoError(t, Migrate())
	require.True(t, db.Migrator().HasTable(&models.User{}))
	require.True(t, db.Migrator().HasTable(&models.Movie{}))

	// Data survives a second migration.
	require.NoError(t, db.Create(&models.Movie{Title: "Leon", Year: "1994"}).Error)
	require.NoError(t, Migrate())
	var count int64
	require.NoError(t, db.Model(&models.Movie{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	// Drop removes tables and their data.
	require.NoError(t, Drop())
	require.False(t, db.Migrator().HasTable(&models.Movie{}))
}
