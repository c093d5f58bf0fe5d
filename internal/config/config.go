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
	// Search
	Role             string   `json:"role,omitempty"`               // Target role to search for
	PostedWithinDays int      `json:"posted_within_days,omitempty"` // Recency window in days
	Sources          []string `json:"sources,omitempty"`            // Job sites to search, in order

	// Limits
	MaxFinal int `json:"max_final,omitempty"` // Maximum rows in the final report
	RawCap   int `json:"raw_cap,omitempty"`   // Stop collecting once this many raw postings exist

	// Output
	Output  string `json:"output,omitempty"`   // Path of the Excel report to write
	EmailTo string `json:"email_to,omitempty"` // Optional recipient for the finished report

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for JS-rendered sites
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed run information
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
	if c.PostedWithinDays < 0 {
		return fmt.Errorf("config error: 'posted_within_days' must be non-negative")
	}
	if c.MaxFinal < 0 {
		return fmt.Errorf("config error: 'max_final' must be non-negative")
	}
	if c.RawCap < 0 {
		return fmt.Errorf("config error: 'raw_cap' must be non-negative")
	}

	if c.Output != "" {
		dir := filepath.Dir(c.Output)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return fmt.Errorf("config error: output directory not found: %s", dir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.EmailTo == "" {
		result.EmailTo = defaults.EmailTo
	}

	// Slice fields: use default if empty
	if len(result.Sources) == 0 {
		result.Sources = defaults.Sources
	}

	// Int fields: use default if zero
	if result.PostedWithinDays == 0 {
		result.PostedWithinDays = defaults.PostedWithinDays
	}
	if result.MaxFinal == 0 {
		result.MaxFinal = defaults.MaxFinal
	}
	if result.RawCap == 0 {
		result.RawCap = defaults.RawCap
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
