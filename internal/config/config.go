package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/configloader/pkg/configloader"
)

const (
	defaultFilePath = ".env"
	defaultOutput   = "yaml"
	defaultLogLevel = "warn"
)

// Config holds the settings of the configloader command.
// Precedence: CLI flags > YAML settings file > Defaults
type Config struct {
	FilePath  string                 `validate:"required"`
	Delimiter configloader.Delimiter `validate:"required"`
	Output    string                 `validate:"oneof=yaml json toml"`
	LogLevel  string                 `validate:"oneof=debug info warn error"`
}

// yamlConfig represents the YAML settings file structure.
type yamlConfig struct {
	File      string `yaml:"file"`
	Delimiter string `yaml:"delimiter"`
	Output    string `yaml:"output"`
	LogLevel  string `yaml:"log_level"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	FilePath   *string
	Delimiter  *string
	Output     *string
	LogLevel   *string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load resolves settings with precedence:
// CLI flags > YAML settings file > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML settings: %w", err)
		}
		if err := applyYAMLConfig(&cfg, yamlCfg); err != nil {
			return Config{}, err
		}
	}

	if overrides != nil {
		if err := applyCLIOverrides(&cfg, overrides); err != nil {
			return Config{}, err
		}
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	return Config{
		FilePath:  defaultFilePath,
		Delimiter: configloader.Equals,
		Output:    defaultOutput,
		LogLevel:  defaultLogLevel,
	}
}

// loadFromFile loads settings from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) error {
	if yamlCfg.File != "" {
		cfg.FilePath = yamlCfg.File
	}

	if yamlCfg.Delimiter != "" {
		d, err := configloader.ParseDelimiter(yamlCfg.Delimiter)
		if err != nil {
			return fmt.Errorf("parse delimiter: %w", err)
		}
		cfg.Delimiter = d
	}

	if yamlCfg.Output != "" {
		cfg.Output = strings.ToLower(yamlCfg.Output)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(yamlCfg.LogLevel)
	}

	return nil
}

func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) error {
	if overrides.FilePath != nil && *overrides.FilePath != "" {
		cfg.FilePath = *overrides.FilePath
	}

	if overrides.Delimiter != nil && *overrides.Delimiter != "" {
		d, err := configloader.ParseDelimiter(*overrides.Delimiter)
		if err != nil {
			return fmt.Errorf("parse delimiter: %w", err)
		}
		cfg.Delimiter = d
	}

	if overrides.Output != nil && *overrides.Output != "" {
		cfg.Output = strings.ToLower(*overrides.Output)
	}

	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(*overrides.LogLevel)
	}

	return nil
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
