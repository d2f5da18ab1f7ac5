package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"tripgen/internal"
	"tripgen/internal/errors"
)

// Defaults
const (
	DefaultInput    = "file.csv"
	DefaultSheet    = "Sheet1"
	DefaultLogLevel = "WARN"
)

// Config represents the complete application configuration
type Config struct {
	Input  InputConfig
	Output OutputConfig
	Log    LogConfig
}

// InputConfig selects the table source
type InputConfig struct {
	Path  string // "-" reads CSV from stdin
	Sheet string // worksheet name for spreadsheet input
}

// OutputConfig shapes the emitted literal
type OutputConfig struct {
	Declaration string // optional C declarator the literal initializes
}

// LogConfig holds logger settings
type LogConfig struct {
	Level internal.LogLevel
}

// Load reads an optional .env file and then the environment, and validates the result
func Load() (*Config, error) {
	// A missing .env is normal; values already in the environment win.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables only
func FromEnv() (*Config, error) {
	level, err := internal.ParseLogLevel(getEnvOrDefault("LOG_LEVEL", DefaultLogLevel))
	if err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid(err.Error()), "failed to load log configuration")
	}

	config := &Config{
		Input: InputConfig{
			Path:  getEnvOrDefault("TRIPGEN_INPUT", DefaultInput),
			Sheet: getEnvOrDefault("TRIPGEN_SHEET", DefaultSheet),
		},
		Output: OutputConfig{
			Declaration: os.Getenv("TRIPGEN_DECLARATION"),
		},
		Log: LogConfig{Level: level},
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// Validate checks required fields
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Path) == "" {
		return errors.ConfigInvalid("input path is required")
	}
	if strings.TrimSpace(c.Input.Sheet) == "" {
		return errors.ConfigInvalid("sheet name is required")
	}
	if strings.ContainsAny(c.Output.Declaration, ";{}") {
		return errors.ConfigInvalid("declaration must not contain ';', '{' or '}'")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
