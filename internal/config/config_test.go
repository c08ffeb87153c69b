package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "data.db", cfg.DatabasePath)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Equal(t, "dev", cfg.SessionSecret)
	require.Equal(t, "debug", cfg.GinMode)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WATCHLIST_DATABASE_PATH", "/var/lib/watchlist/data.db")
	t.Setenv("WATCHLIST_LISTEN_ADDR", ":9000")
	t.Setenv("WATCHLIST_SESSION_SECRET", "prod-secret")
	t.Setenv("WATCHLIST_GIN_MODE", "release")

	cfg := Load()

	require.Equal(t, "/var/lib/watchlist/data.db", cfg.DatabasePath)
	require.Equal(t, ":9000", cfg.ListenAddr)
	require.Equal(t, "prod-secret", cfg.SessionSecret)
	require.Equal(t, "release", cfg.GinMode)
}
