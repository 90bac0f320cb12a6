package config

import (
	"os"
	"strconv"

	"skillstage/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Bullhorn BullhornConfig
	Data     DataConfig
	Database DatabaseConfig
	Server   ServerConfig
	Upload   UploadConfig
}

// BullhornConfig holds the destination API credentials
type BullhornConfig struct {
	AuthURL      string
	RestURL      string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
}

// DataConfig holds the survey spreadsheet settings
type DataConfig struct {
	ExcelFile string
	SheetName string // empty means first sheet
}

// DatabaseConfig holds the optional run-audit database settings
type DatabaseConfig struct {
	URL string // empty disables run persistence
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// UploadConfig holds upload behavior settings
type UploadConfig struct {
	Concurrency int
	DryRun      bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Bullhorn: BullhornConfig{
			AuthURL:      getEnvOrDefault("AUTH_URL", "https://auth.bullhornstaffing.com/oauth"),
			RestURL:      os.Getenv("REST_URL"),
			ClientID:     os.Getenv("CLIENT_ID"),
			ClientSecret: os.Getenv("CLIENT_SECRET"),
			Username:     os.Getenv("BH_USERNAME"),
			Password:     os.Getenv("BH_PASSWORD"),
		},
		Data: DataConfig{
			ExcelFile: os.Getenv("EXCEL_FILE"),
			SheetName: os.Getenv("SHEET_NAME"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Upload: UploadConfig{
			Concurrency: getEnvIntOrDefault("UPLOAD_CONCURRENCY", 4),
			DryRun:      getEnvBoolOrDefault("DRY_RUN", false),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.ExcelFile == "" {
		return errors.ConfigInvalid("EXCEL_FILE is required")
	}
	if config.Upload.Concurrency < 1 {
		return errors.ConfigInvalid("UPLOAD_CONCURRENCY must be at least 1")
	}
	if config.Upload.DryRun {
		return nil
	}
	// Credentials are only needed when uploads actually happen.
	required := map[string]string{
		"REST_URL":      config.Bullhorn.RestURL,
		"CLIENT_ID":     config.Bullhorn.ClientID,
		"CLIENT_SECRET": config.Bullhorn.ClientSecret,
		"BH_USERNAME":   config.Bullhorn.Username,
		"BH_PASSWORD":   config.Bullhorn.Password,
	}
	for name, value := range required {
		if value == "" {
			return errors.ConfigInvalid(name + " is required unless DRY_RUN=true")
		}
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

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
