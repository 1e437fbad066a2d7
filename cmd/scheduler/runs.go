package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/conference-scheduler/internal/config"
	"github.com/jonathan/conference-scheduler/internal/db"
	"github.com/jonathan/conference-scheduler/internal/observability"
)

var runsCmd = &cobra.Command{
	Use:   "runs [run-id]",
	Short: "Show stored validation runs",
	Long:  "Lists the most recent validation runs recorded by validate, or shows one run and its violations when a run ID is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRuns,
}

var (
	runsLimit       int
	runsDatabaseURL string
)

func init() {
	runsCmd.Flags().IntVarP(&runsLimit, "limit", "n", 20, "Maximum number of runs to list")
	runsCmd.Flags().StringVar(&runsDatabaseURL, "database-url", "", "PostgreSQL URL (defaults to DATABASE_URL env var)")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	runID, err := parseRunID(args)
	if err != nil {
		return err
	}
	if runsLimit <= 0 {
		return fmt.Errorf("--limit must be positive, got: %d", runsLimit)
	}

	databaseURL := runsDatabaseURL
	if databaseURL == "" {
		env, err := config.FromEnv()
		if err != nil {
			return fmt.Errorf("failed to read environment: %w", err)
		}
		databaseURL = env.DatabaseURL
	}
	if databaseURL == "" {
		return fmt.Errorf("--database-url is required (or set %s)", config.EnvDatabaseURL)
	}

	ctx := cmd.Context()
	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	printer := observability.NewPrinter(os.Stdout)
	if runID == uuid.Nil {
		runs, err := store.ListRuns(ctx, runsLimit)
		if err != nil {
			return err
		}
		printer.PrintRuns(runs)
		return nil
	}

	run, err := store.GetRun(ctx, runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run %s not found", runID)
	}
	violations, err := store.ListViolations(ctx, runID)
	if err != nil {
		return err
	}
	printer.PrintRun(run, violations)
	return nil
}

// parseRunID returns uuid.Nil when no run ID was given.
func parseRunID(args []string) (uuid.UUID, error) {
	if len(args) == 0 {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid run id %q: %w", args[0], err)
	}
	return id, nil
}
