package config

import (
	"os"
	"strings"

	"prnbook/domain/measurement"
	"prnbook/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Source  SourceConfig
	Output  OutputConfig
	UI      UIConfig
	Logging LoggingConfig
}

// SourceConfig describes where measurement files come from
type SourceConfig struct {
	Dir      string // Default folder when none is given
	Encoding string // Text encoding of the input files
}

// OutputConfig controls the generated workbooks
type OutputConfig struct {
	SheetName    string
	NumberFormat string
	PhaseHeader  string
}

// UIConfig holds the local web front end settings
type UIConfig struct {
	Addr string
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level string
}

// Default values
const (
	DefaultEncoding     = "utf-8"
	DefaultSheetName    = "Data"
	DefaultNumberFormat = "0.000"
	DefaultUIAddr       = "127.0.0.1:8090"
	DefaultLogLevel     = "INFO"
)

// LoadDotEnv loads a .env file when one is present; a missing file is not an error
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	var present []string
	for _, name := range filenames {
		if _, err := os.Stat(name); err == nil {
			present = append(present, name)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return errors.Wrap(err, "failed to load .env")
	}
	return nil
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Source: SourceConfig{
			Dir:      strings.TrimSpace(getEnvOrDefault("SOURCE_DIR", "")),
			Encoding: getEnvOrDefault("INPUT_ENCODING", DefaultEncoding),
		},
		Output: OutputConfig{
			SheetName:    getEnvOrDefault("SHEET_NAME", DefaultSheetName),
			NumberFormat: getEnvOrDefault("NUMBER_FORMAT", DefaultNumberFormat),
			PhaseHeader:  getEnvOrDefault("PHASE_HEADER", measurement.DefaultPhaseLabel),
		},
		UI: UIConfig{
			Addr: getEnvOrDefault("UI_ADDR", DefaultUIAddr),
		},
		Logging: LoggingConfig{
			Level: getEnvOrDefault("LOG_LEVEL", DefaultLogLevel),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	return &Config{
		Source:  SourceConfig{Encoding: DefaultEncoding},
		Output:  OutputConfig{SheetName: DefaultSheetName, NumberFormat: DefaultNumberFormat, PhaseHeader: measurement.DefaultPhaseLabel},
		UI:      UIConfig{Addr: DefaultUIAddr},
		Logging: LoggingConfig{Level: DefaultLogLevel},
	}
}

func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Output.SheetName) == "" {
		return errors.ConfigInvalid("sheet name is required")
	}
	if len(config.Output.SheetName) > 31 || strings.ContainsAny(config.Output.SheetName, `:\/?*[]`) {
		return errors.ConfigInvalid("sheet name must be at most 31 characters without : \\ / ? * [ ]")
	}
	if strings.TrimSpace(config.Output.NumberFormat) == "" {
		return errors.ConfigInvalid("number format is required")
	}
	if strings.TrimSpace(config.Output.PhaseHeader) == "" {
		return errors.ConfigInvalid("phase header is required")
	}
	if strings.TrimSpace(config.Source.Encoding) == "" {
		return errors.ConfigInvalid("input encoding is required")
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
