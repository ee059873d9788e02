// Package config loads application configuration from the environment.
// A .env file in the working directory is honored when present.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting of the application.
type Config struct {
	// DBPath is the SQLite database file. Parent directories are created on open.
	DBPath string `env:"DB_PATH" envDefault:"./data/zakupnik.db"`

	// SessionPath is the file holding the session token between runs.
	SessionPath string `env:"SESSION_PATH" envDefault:"./data/session"`

	// SessionSecret signs session tokens. The token only proves a login
	// happened, so the default is acceptable for local use.
	SessionSecret string `env:"SESSION_SECRET" envDefault:"zakupnik-local-secret"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`   // debug, info, warn, error
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`  // text or json
}

// Load reads .env (if any) and parses the environment into a Config.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
