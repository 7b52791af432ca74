package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Database configuration
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int

	// Auth configuration
	JWTSecret string
	JWTExpire time.Duration

	// Bootstrap admin credentials, seeded at startup when the protected
	// account does not exist yet.
	AdminPassword string

	// PDF rendering configuration
	RenderURL         string // headless-chrome render service endpoint
	RenderTimeout     time.Duration
	RenderConcurrency int
	SpoolDir          string
	SpoolMaxAge       time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "3000"),
		DBType:            getEnv("DB_TYPE", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTExpire:         getEnvAsDuration("JWT_EXPIRE", 24*time.Hour),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		RenderURL:         getEnv("RENDER_URL", "http://localhost:3001/api/generate-pdf"),
		RenderTimeout:     getEnvAsDuration("RENDER_TIMEOUT", 30*time.Second),
		RenderConcurrency: getEnvAsInt("RENDER_CONCURRENCY", 2),
		SpoolDir:          getEnv("PDF_SPOOL_DIR", os.TempDir()),
		SpoolMaxAge:       getEnvAsDuration("PDF_SPOOL_MAX_AGE", time.Hour),
	}

	// Validate required fields
	if cfg.DBDatabase == "" {
		return nil, fmt.Errorf("DB_DATABASE is required")
	}
	if cfg.DBUser == "" && cfg.DBType != "sqlite" {
		return nil, fmt.Errorf("DB_USER is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.RenderConcurrency < 1 {
		cfg.RenderConcurrency = 1
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
