// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel      string `validate:"oneof=debug info warn warning error"`
	LogFormat     string `validate:"oneof=json text"`
	Environment   string `validate:"oneof=dev test prod"`
	InventoryFile string `validate:"required"`
	Seed          int64
	Rolls         int `validate:"min=0,max=10000"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		Environment:   getEnv("ENVIRONMENT", "dev"),
		InventoryFile: getEnv("INVENTORY_FILE", "inventory.csv"),
	}

	seedStr := getEnv("SEED", "0")
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SEED value: %w", err)
	}
	cfg.Seed = seed

	rollsStr := getEnv("ROLLS", "5")
	rolls, err := strconv.Atoi(rollsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid ROLLS value: %w", err)
	}
	cfg.Rolls = rolls

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
