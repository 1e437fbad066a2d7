// Package config provides environment-based configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvDatabaseURL = "DATABASE_URL"
	EnvWorkers     = "SCHEDULER_WORKERS"
	EnvTagPolicy   = "SCHEDULER_TAG_POLICY"
)

// FromEnv returns a Config populated from environment variables.
// Unset variables leave the corresponding field empty.
func FromEnv() (*Config, error) {
	cfg := &Config{
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		TagPolicy:   os.Getenv(EnvTagPolicy),
	}

	if workers := os.Getenv(EnvWorkers); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", EnvWorkers, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("%s must be non-negative, got: %d", EnvWorkers, n)
		}
		cfg.Workers = n
	}

	return cfg, nil
}
