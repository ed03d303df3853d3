// Package config loads the optional azcensus config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration
type Config struct {
	Version  string `yaml:"version"`
	Provider string `yaml:"provider"`

	// Profile names an Azure CLI config profile; empty uses the default
	// credential chain.
	Profile string `yaml:"profile,omitempty"`

	// Ignore lists subscription IDs or display names to skip.
	Ignore []string `yaml:"ignore_subscriptions,omitempty"`

	// CallTimeout bounds each inventory API call.
	CallTimeout time.Duration `yaml:"call_timeout,omitempty"`

	Store Store `yaml:"store,omitempty"`
}

// Store configures the local run history.
type Store struct {
	Disabled bool   `yaml:"disabled,omitempty"`
	Path     string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:  "v1",
		Provider: "azure",
	}
}

// LoadConfig loads configuration from file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate ensures config has required fields
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version is required")
	}
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if c.CallTimeout < 0 {
		return fmt.Errorf("call_timeout must not be negative")
	}
	return nil
}

// StorePath resolves the run store location, defaulting to
// ~/.azcensus/census.db.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return c.Store.Path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("unable to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".azcensus", "census.db"), nil
}
