// Package config provides configuration management for the delegates tools.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// Configuration validation errors.
var (
	ErrMissingDatasetPath = errors.New("dataset.path is required")
	ErrInvalidFormat      = errors.New("output.format must be 'markdown' or 'json'")
	ErrInvalidLogLevel    = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete configuration.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Catalog CatalogConfig `yaml:"catalog"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// DatasetConfig locates the delegate records.
type DatasetConfig struct {
	Path string `yaml:"path"`
}

// CatalogConfig optionally replaces the built-in province and domain catalog.
type CatalogConfig struct {
	File string `yaml:"file"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	Format      string `yaml:"format"`
	Path        string `yaml:"path"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{Path: "data/people_data.json"},
		Output:  OutputConfig{Format: FormatMarkdown, PrettyPrint: true},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadConfig loads configuration from YAML file. Fields left out of the
// file keep their DefaultConfig values.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Dataset.Path == "" {
		return ErrMissingDatasetPath
	}

	if c.Output.Format != FormatMarkdown && c.Output.Format != FormatJSON {
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Output.Format)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// UsesDefaultCatalog reports whether the built-in catalog applies.
func (c *Config) UsesDefaultCatalog() bool {
	return c.Catalog.File == ""
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Dataset: %s, Catalog: %s, Format: %s}",
		c.Dataset.Path,
		c.Catalog.File,
		c.Output.Format,
	)
}
