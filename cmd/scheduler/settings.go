package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/conference-scheduler/internal/config"
	"github.com/jonathan/conference-scheduler/internal/validation"
)

// sharedFlags are the flags every validating command accepts.
type sharedFlags struct {
	problem     string
	solution    string
	candidates  string
	configPath  string
	rules       []string
	tagPolicy   string
	workers     int
	databaseURL string
	verbose     bool
}

func (f *sharedFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to JSON config file (optional)")
	cmd.Flags().StringSliceVar(&f.rules, "rules", nil, "Constraint names to evaluate, in order (default: all)")
	cmd.Flags().StringVar(&f.tagPolicy, "tag-policy", "", "Session tag matching policy: pairwise or any")
	cmd.Flags().StringVar(&f.databaseURL, "database-url", "", "PostgreSQL URL for storing validation runs (optional)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed reports")
}

// resolve merges flags over the config file over the environment and validates the result.
func (f *sharedFlags) resolve() (*config.Config, error) {
	fromFlags := config.Config{
		Problem:     f.problem,
		Solution:    f.solution,
		Candidates:  f.candidates,
		Constraints: f.rules,
		TagPolicy:   f.tagPolicy,
		Workers:     f.workers,
		DatabaseURL: f.databaseURL,
		Verbose:     f.verbose,
	}

	defaults, err := config.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if f.configPath != "" {
		fileCfg, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, err
		}
		merged := fileCfg.MergeWithDefaults(*defaults)
		defaults = &merged
		fromFlags.Verbose = fromFlags.Verbose || fileCfg.Verbose
	}

	cfg := fromFlags.MergeWithDefaults(*defaults)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newEngine(cfg *config.Config) (*validation.Engine, error) {
	engineCfg, err := cfg.EngineConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to build constraint set: %w", err)
	}
	return validation.New(engineCfg)
}

// requireInput fails when neither a flag nor the config file named an input file.
func requireInput(path, flag string) error {
	if path == "" {
		return fmt.Errorf("--%s is required (or set %q in the config file)", flag, flag)
	}
	return nil
}
