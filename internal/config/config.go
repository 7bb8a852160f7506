// Package config loads client configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/MoroniPereira/TIME-SHEET/internal/api"
	"github.com/MoroniPereira/TIME-SHEET/internal/storage"
)

// Environment variables.
const (
	EnvBaseURL = "TIMESHEET_API_BASE_URL"
	EnvTimeout = "TIMESHEET_HTTP_TIMEOUT"
	EnvDataDir = "TIMESHEET_DATA_DIR"
)

// DefaultBaseURL matches the backend's development address.
const DefaultBaseURL = "http://localhost:3000/api"

// Config is the resolved client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	DataDir string
}

// Load resolves the configuration. A .env file in the working directory is
// applied first when present; real environment variables win over it.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		BaseURL: getString(EnvBaseURL, DefaultBaseURL),
		Timeout: getDuration(EnvTimeout, api.DefaultTimeout),
		DataDir: getString(EnvDataDir, storage.DefaultDir()),
	}
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
