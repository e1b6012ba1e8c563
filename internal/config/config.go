// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input       string `json:"input,omitempty"`        // Path to raw JSONL extraction dump
	Output      string `json:"output,omitempty"`       // Path for the rendered corpus JSONL
	TemplateDir string `json:"template_dir,omitempty"` // Directory of render templates

	// Behavior
	MinLength   int    `json:"min_length,omitempty"`   // Minimum rendered text length to keep a sample
	Workers     int    `json:"workers,omitempty"`      // Parallel render workers
	Seed        int64  `json:"seed,omitempty"`         // RNG seed for reproducible sampling
	EnglishOnly bool   `json:"english_only,omitempty"` // Drop records whose language metadata is not "en"
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed progress information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for corpus persistence
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for the extraction helper
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.MinLength < 0 {
		return fmt.Errorf("config error: 'min_length' must be non-negative")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}
	if c.TemplateDir != "" {
		if _, err := os.Stat(c.TemplateDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: template directory not found: %s", c.TemplateDir)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.TemplateDir == "" {
		result.TemplateDir = defaults.TemplateDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.MinLength == 0 {
		result.MinLength = defaults.MinLength
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}
	if !result.EnglishOnly {
		result.EnglishOnly = defaults.EnglishOnly
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
