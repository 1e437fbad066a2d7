// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/conference-scheduler/internal/constraints"
	"github.com/jonathan/conference-scheduler/internal/validation"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Problem    string `json:"problem,omitempty"`    // Path to problem definition JSON
	Solution   string `json:"solution,omitempty"`   // Path to candidate solution JSON
	Candidates string `json:"candidates,omitempty"` // Path to candidate batch JSON

	// Rules
	Constraints []string `json:"constraints,omitempty" validate:"dive,required"`                // Rule names in evaluation order; empty means all defaults
	TagPolicy   string   `json:"tag_policy,omitempty" validate:"omitempty,oneof=pairwise any"` // Session tag matching policy

	// Behavior
	Workers     int    `json:"workers,omitempty" validate:"min=0"` // Parallel workers for batch validation (0 = NumCPU)
	Verbose     bool   `json:"verbose,omitempty"`                  // Print detailed violation reports
	DatabaseURL string `json:"database_url,omitempty"`             // PostgreSQL connection URL for the report store
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
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate rule names against the default registry
	if len(c.Constraints) > 0 {
		if _, err := c.Registry(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}

	// Validate file paths exist (if specified)
	if c.Problem != "" {
		if _, err := os.Stat(c.Problem); os.IsNotExist(err) {
			return fmt.Errorf("config error: problem file not found: %s", c.Problem)
		}
	}

	if c.Solution != "" {
		if _, err := os.Stat(c.Solution); os.IsNotExist(err) {
			return fmt.Errorf("config error: solution file not found: %s", c.Solution)
		}
	}

	if c.Candidates != "" {
		if _, err := os.Stat(c.Candidates); os.IsNotExist(err) {
			return fmt.Errorf("config error: candidates file not found: %s", c.Candidates)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Problem == "" {
		result.Problem = defaults.Problem
	}
	if result.Solution == "" {
		result.Solution = defaults.Solution
	}
	if result.Candidates == "" {
		result.Candidates = defaults.Candidates
	}
	if result.TagPolicy == "" {
		if defaults.TagPolicy != "" {
			result.TagPolicy = defaults.TagPolicy
		} else {
			result.TagPolicy = string(constraints.TagPolicyPairwise)
		}
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Slice fields
	if len(result.Constraints) == 0 {
		result.Constraints = defaults.Constraints
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Registry builds the constraint registry the configuration selects.
func (c *Config) Registry() (*constraints.Registry, error) {
	policy, err := constraints.ParseTagPolicy(c.TagPolicy)
	if err != nil {
		return nil, err
	}
	registry := constraints.Default(policy)
	if len(c.Constraints) == 0 {
		return registry, nil
	}
	return registry.Select(c.Constraints...)
}

// EngineConfig builds the validation engine configuration.
func (c *Config) EngineConfig() (validation.Config, error) {
	registry, err := c.Registry()
	if err != nil {
		return validation.Config{}, err
	}
	return validation.Config{Registry: registry}, nil
}
