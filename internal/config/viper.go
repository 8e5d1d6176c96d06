// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Files struct {
		Patterns string `mapstructure:"patterns" yaml:"patterns"`
		Rules    string `mapstructure:"rules" yaml:"rules"`
	} `mapstructure:"files" yaml:"files"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then CCS_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/ccs-extract")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("CCS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// CSV defaults
	v.SetDefault("csv.delimiter", ",")

	// Config file defaults: empty means search the standard locations
	v.SetDefault("files.patterns", "")
	v.SetDefault("files.rules", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	// Validate log level
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	// Validate log format
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	// Validate CSV delimiter
	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	return nil
}
