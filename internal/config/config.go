package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	DatabasePath  string `mapstructure:"database_path"`
	ListenAddr    string `mapstructure:"listen_addr"`
	SessionSecret string `mapstructure:"session_secret"`
	GinMode       string `mapstructure:"gin_mode"`
}

// Load reads configuration from WATCHLIST_-prefixed environment variables,
// falling back to development defaults.
func Load() *Config {
	v := viper.New()
	v.SetEnvPrefix("WATCHLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("database_path")
	v.BindEnv("listen_addr")
	v.BindEnv("session_secret")
	v.BindEnv("gin_mode")

	v.SetDefault("database_path", "data.db")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("session_secret", "dev")
	v.SetDefault("gin_mode", "debug")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Unmarshal over scalar defaults cannot fail; keep defaults if it does.
		return &Config{
			DatabasePath:  "data.db",
			ListenAddr:    ":8080",
			SessionSecret: "dev",
			GinMode:       "debug",
		}
	}
	return &cfg
}
