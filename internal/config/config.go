package config

import (
	"os"
	"strconv"
	"time"

	"messtrack/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Auth     AuthConfig
	Upload   UploadConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	OpsPort string
	GinMode string
}

// AuthConfig holds the operator login settings. The credential pair is a
// single hardcoded operator account; hardening it is out of scope.
type AuthConfig struct {
	AdminUser string
	AdminPass string
	JWTSecret string
	TokenTTL  time.Duration
}

// UploadConfig holds spreadsheet upload settings
type UploadConfig struct {
	MaxFileBytes int64
	TempDir      string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			OpsPort: getEnvOrDefault("OPS_PORT", "9090"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Auth: AuthConfig{
			AdminUser: getEnvOrDefault("ADMIN_USER", "admin"),
			AdminPass: getEnvOrDefault("ADMIN_PASS", "admin"),
			JWTSecret: os.Getenv("JWT_SECRET"),
			TokenTTL:  time.Duration(getEnvIntOrDefault("TOKEN_TTL_HOURS", 24)) * time.Hour,
		},
		Upload: UploadConfig{
			MaxFileBytes: int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 20)) * 1024 * 1024,
			TempDir:      getEnvOrDefault("UPLOAD_TEMP_DIR", os.TempDir()),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required")
	}
	if config.Auth.JWTSecret == "" {
		return errors.ConfigInvalid("JWT_SECRET is required")
	}
	if config.Server.Port == config.Server.OpsPort {
		return errors.ConfigInvalid("PORT and OPS_PORT must differ")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
