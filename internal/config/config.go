// Package config manages application configuration
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	Port        string
	Environment string // "development" or "production"

	// Database
	DatabaseURL string

	// Security
	SecretKey string // For session token signing

	// Session settings
	SessionDuration time.Duration

	// Logging
	LogLevel  string
	LogPretty bool

	// Simulation bounds offered to investors
	DefaultHorizonYears int
	MaxHorizonYears     int
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is honoured when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:                getEnv("ADVISOR_PORT", "8080"),
		Environment:         getEnv("ADVISOR_ENV", "development"),
		DatabaseURL:         getEnv("ADVISOR_DATABASE_URL", "investment_advisor.db"),
		SecretKey:           getEnv("ADVISOR_SECRET_KEY", "dev-secret-key-change-in-production"),
		SessionDuration:     getDurationEnv("ADVISOR_SESSION_DURATION", 2*time.Hour),
		LogLevel:            getEnv("ADVISOR_LOG_LEVEL", "info"),
		LogPretty:           getBoolEnv("ADVISOR_LOG_PRETTY", false),
		DefaultHorizonYears: getIntEnv("ADVISOR_DEFAULT_HORIZON_YEARS", 5),
		MaxHorizonYears:     getIntEnv("ADVISOR_MAX_HORIZON_YEARS", 15),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
