package config

import (
	"os"
	"strconv"

	"rocketeda/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Paths  PathConfig
	Render RenderConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port          string
	SessionCookie string
}

// PathConfig holds file system paths
type PathConfig struct {
	// ResultsDir is the artifact root written by the offline analysis
	// pipeline. Resolved once at startup; read-only from then on.
	ResultsDir string
}

// RenderConfig holds page rendering settings
type RenderConfig struct {
	// EmbedHeight is the pixel height of embedded HTML frames.
	EmbedHeight int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:          getEnvOrDefault("PORT", "8080"),
			SessionCookie: getEnvOrDefault("SESSION_COOKIE", "eda_session"),
		},
		Paths: PathConfig{
			ResultsDir: getEnvOrDefault("RESULTS_DIR", "results"),
		},
		Render: RenderConfig{
			EmbedHeight: getEnvIntOrDefault("EMBED_HEIGHT", 600),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Server.SessionCookie == "" {
		return errors.ConfigInvalid("session cookie name is required")
	}
	if config.Paths.ResultsDir == "" {
		return errors.ConfigInvalid("results directory is required")
	}
	if config.Render.EmbedHeight <= 0 {
		return errors.ConfigInvalid("embed height must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
