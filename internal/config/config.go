package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"kexpay/internal/logger"
)

// Config holds application configuration
type Config struct {
	// Server
	Port            string
	Env             string
	ShutdownTimeout time.Duration
	CORSOrigin      string

	// Data
	SeedFile    string
	RecentLimit int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		logger.Get().Debugw(".env file not found, using process environment")
	}

	config := &Config{
		// Server
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORSOrigin:      getEnv("CORS_ORIGIN", "*"),

		// Data
		SeedFile:    getEnv("SEED_FILE", ""),
		RecentLimit: getEnvInt("RECENT_LIMIT", 5),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.Env {
	case "development", "production", "test":
	default:
		errs = append(errs, fmt.Sprintf("invalid env '%s': must be one of development, production, test", c.Env))
	}

	if c.SeedFile != "" {
		if _, err := os.Stat(c.SeedFile); err != nil {
			errs = append(errs, fmt.Sprintf("seed file '%s' is not readable: %v", c.SeedFile, err))
		}
	}

	if c.RecentLimit < 1 || c.RecentLimit > 100 {
		errs = append(errs, fmt.Sprintf("invalid recent limit %d: must be between 1 and 100", c.RecentLimit))
	}

	if c.ShutdownTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid shutdown timeout %v: must be at least 1 second", c.ShutdownTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		logger.Get().Warnw("invalid integer in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		logger.Get().Warnw("invalid duration in environment, using default", "key", key, "value", value)
	}
	return defaultValue
}
