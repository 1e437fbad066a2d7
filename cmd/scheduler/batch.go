package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/conference-scheduler/internal/loader"
	"github.com/jonathan/conference-scheduler/internal/observability"
	"github.com/jonathan/conference-scheduler/internal/validation"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Validate many candidate schedules in parallel",
	Long:  "Validates every candidate in a batch file against one problem and reports the violation count of each, as a search procedure would use it for scoring.",
	RunE:  runBatch,
}

var (
	batchOutput string
	batchFlags  sharedFlags
)

func init() {
	batchCmd.Flags().StringVarP(&batchFlags.problem, "problem", "p", "", "Path to problem JSON file (required unless set in --config)")
	batchCmd.Flags().StringVar(&batchFlags.candidates, "candidates", "", "Path to candidates JSON file (required unless set in --config)")
	batchCmd.Flags().StringVarP(&batchOutput, "out", "o", "", "Path to output results JSON file (optional)")
	batchCmd.Flags().IntVarP(&batchFlags.workers, "workers", "w", 0, "Parallel workers (0 = number of CPUs)")
	batchFlags.register(batchCmd)

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	cfg, err := batchFlags.resolve()
	if err != nil {
		return err
	}

	if err := requireInput(cfg.Problem, "problem"); err != nil {
		return err
	}
	if err := requireInput(cfg.Candidates, "candidates"); err != nil {
		return err
	}

	problem, err := loader.LoadProblem(cfg.Problem)
	if err != nil {
		return err
	}
	candidates, err := loader.LoadCandidates(cfg.Candidates)
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	results, err := validation.EvaluateBatch(cmd.Context(), engine, problem, candidates, cfg.Workers)
	if err != nil {
		return err
	}

	if batchOutput != "" {
		jsonBytes, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal batch results to JSON: %w", err)
		}
		if err := os.WriteFile(batchOutput, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write batch results: %w", err)
		}
	}

	observability.NewPrinter(os.Stdout).PrintBatch(results)
	return nil
}
