package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"tradejournal/internal/adapters/logger"
)

// Config holds the settings an embedding host wires the journal with.
type Config struct {
	// Database
	DBPath string

	// Logging
	LogLevel  logger.LogLevel
	LogFormat string // "std" or "json" (zap)
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var errs []string

	cfg.DBPath = getEnv("JOURNAL_DB_PATH", "./data/journal.db")
	if cfg.DBPath == "" {
		errs = append(errs, "JOURNAL_DB_PATH must be set")
	}

	cfg.LogLevel = logger.ParseLevel(getEnv("LOG_LEVEL", "INFO"))

	cfg.LogFormat = strings.ToLower(getEnv("LOG_FORMAT", "std"))
	if cfg.LogFormat != "std" && cfg.LogFormat != "json" {
		errs = append(errs, fmt.Sprintf("invalid LOG_FORMAT %q: must be 'std' or 'json'", cfg.LogFormat))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
