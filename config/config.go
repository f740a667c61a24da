package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	APIBaseURL  string
	Port        string
	GoEnv       string
	LocalDBPath string
	UIOrigin    string
	ProfTurno   int
	LogLevel    string
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	// Determine which environment file to load
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			// On the kiosk image, environment variables are set directly
			// so it's okay if .env files don't exist
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	profTurno, err := strconv.Atoi(getEnv("PROF_TURNO", "2"))
	if err != nil {
		return nil, fmt.Errorf("PROF_TURNO must be an integer: %w", err)
	}

	config := &Config{
		APIBaseURL:  getEnv("API_BASE_URL", "http://figliolo.it:5006/v1"),
		Port:        getEnv("PORT", "8090"),
		GoEnv:       getEnv("GO_ENV", "development"),
		LocalDBPath: getEnv("LOCAL_DB_PATH", "bar-client.db"),
		UIOrigin:    getEnv("UI_ORIGIN", "http://localhost:5173"),
		ProfTurno:   profTurno,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.LocalDBPath == "" {
		return fmt.Errorf("LOCAL_DB_PATH is required")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
