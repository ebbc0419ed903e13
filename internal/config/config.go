// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the run configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Model      string `json:"model,omitempty"`      // Path to trained ranking model JSON
	Applicant  string `json:"applicant,omitempty"`  // Path to a single applicant record JSON
	Applicants string `json:"applicants,omitempty"` // Path to a JSONL batch of applicant records
	Pool       string `json:"pool,omitempty"`       // Path to a ranked JSONL used as the percentile pool
	Output     string `json:"output,omitempty"`     // Output file path

	// Behavior
	Concurrency int  `json:"concurrency,omitempty"` // Worker bound for batch feature extraction
	Verbose     bool `json:"verbose,omitempty"`     // Print detailed scoring breakdowns

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port for serve
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Applicant != "" && c.Applicants != "" {
		return fmt.Errorf("config error: 'applicant' and 'applicants' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid TCP port, got: %d", c.Port)
	}

	// Validate file paths exist (if specified)
	if c.Model != "" {
		if _, err := os.Stat(c.Model); os.IsNotExist(err) {
			return fmt.Errorf("config error: model file not found: %s", c.Model)
		}
	}

	if c.Applicants != "" {
		if _, err := os.Stat(c.Applicants); os.IsNotExist(err) {
			return fmt.Errorf("config error: applicants file not found: %s", c.Applicants)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.Applicant == "" {
		result.Applicant = defaults.Applicant
	}
	if result.Applicants == "" {
		result.Applicants = defaults.Applicants
	}
	if result.Pool == "" {
		result.Pool = defaults.Pool
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Concurrency == 0 {
		if defaults.Concurrency > 0 {
			result.Concurrency = defaults.Concurrency
		} else {
			result.Concurrency = 4 // default worker bound
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
