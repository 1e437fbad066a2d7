package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/conference-scheduler/internal/assignment"
	"github.com/jonathan/conference-scheduler/internal/config"
	"github.com/jonathan/conference-scheduler/internal/db"
	"github.com/jonathan/conference-scheduler/internal/loader"
	"github.com/jonathan/conference-scheduler/internal/observability"
	"github.com/jonathan/conference-scheduler/internal/schemas"
	"github.com/jonathan/conference-scheduler/internal/types"
	"github.com/jonathan/conference-scheduler/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a candidate schedule against the constraints",
	Long:  "Validates a candidate event-to-slot assignment and reports every unscheduled event, double-booked slot and session whose events share no tag.",
	RunE:  runValidate,
}

var (
	validateOutput string
	validateFlags  sharedFlags
)

func init() {
	validateCmd.Flags().StringVarP(&validateFlags.problem, "problem", "p", "", "Path to problem JSON file (required unless set in --config)")
	validateCmd.Flags().StringVarP(&validateFlags.solution, "solution", "s", "", "Path to solution JSON file (required unless set in --config)")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to output Violations JSON file (optional)")
	validateFlags.register(validateCmd)

	rootCmd.AddCommand(validateCmd)
}

// reportDocument is the JSON written by the validate command.
type reportDocument struct {
	RunID      string            `json:"run_id,omitempty"`
	Problem    string            `json:"problem,omitempty"`
	Rules      []string          `json:"rules"`
	Valid      bool              `json:"valid"`
	Violations []types.Violation `json:"violations"`
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := validateFlags.resolve()
	if err != nil {
		return err
	}

	if err := requireInput(cfg.Problem, "problem"); err != nil {
		return err
	}
	if err := requireInput(cfg.Solution, "solution"); err != nil {
		return err
	}

	problem, err := loader.LoadProblem(cfg.Problem)
	if err != nil {
		return err
	}
	solution, err := loader.LoadSolution(cfg.Solution)
	if err != nil {
		return err
	}

	engine, err := newEngine(cfg)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintProblem(problem)
		printer.PrintRules(engine.Rules())
	}

	doc, err := evaluate(cmd.Context(), cfg, engine, problem, solution)
	if err != nil {
		var shapeErr *assignment.ShapeError
		var malformedErr *assignment.MalformedAssignmentError
		var validationErr *validation.Error
		if errors.As(err, &shapeErr) || errors.As(err, &malformedErr) || errors.As(err, &validationErr) {
			return fmt.Errorf("solution cannot be validated: %w", err)
		}
		return fmt.Errorf("failed to validate solution: %w", err)
	}

	if validateOutput != "" {
		if err := writeReport(validateOutput, doc); err != nil {
			return err
		}
	}

	if cfg.Verbose {
		printer.PrintViolations(&types.Violations{Violations: doc.Violations})
	}

	// Output results
	if doc.Valid {
		_, _ = fmt.Fprintf(os.Stdout, "Validation passed: No violations found\n")
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Validation found %d violation(s)\n", len(doc.Violations))
	for _, v := range doc.Violations {
		_, _ = fmt.Fprintf(os.Stdout, "  %s\n", v.String())
	}
	if validateOutput != "" {
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", validateOutput)
	}

	// Return error to indicate violations were found (exit code 1)
	return fmt.Errorf("validation found %d violation(s)", len(doc.Violations))
}

// evaluate runs the engine and, when a database is configured, records the run.
// A store failure is logged and does not change the outcome.
func evaluate(ctx context.Context, cfg *config.Config, engine *validation.Engine, problem *types.Problem, solution assignment.Assignment) (*reportDocument, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var store *db.DB
	runID := uuid.Nil
	if cfg.DatabaseURL != "" {
		var err error
		store, runID, err = startRun(ctx, cfg.DatabaseURL, problem, engine.Rules())
		if err != nil {
			log.Printf("Warning: validation run will not be stored: %v", err)
		} else {
			defer store.Close()
		}
	}

	report, err := engine.Evaluate(solution, problem)
	if err != nil {
		if store != nil {
			if ferr := store.FailRun(ctx, runID); ferr != nil {
				log.Printf("Warning: failed to record failed run %s: %v", runID, ferr)
			}
		}
		return nil, err
	}

	doc := &reportDocument{
		Problem:    problem.Name,
		Rules:      engine.Rules(),
		Valid:      report.Valid,
		Violations: report.Violations,
	}

	if store != nil {
		doc.RunID = runID.String()
		if err := store.SaveViolations(ctx, runID, report.Violations); err != nil {
			log.Printf("Warning: failed to store violations for run %s: %v", runID, err)
		}
		if err := store.CompleteRun(ctx, runID, report.Valid, len(report.Violations)); err != nil {
			log.Printf("Warning: failed to complete run %s: %v", runID, err)
		}
	}

	return doc, nil
}

func startRun(ctx context.Context, databaseURL string, problem *types.Problem, rules []string) (*db.DB, uuid.UUID, error) {
	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, uuid.Nil, err
	}
	runID, err := store.CreateRun(ctx, problem.Name, problem.Shape, rules)
	if err != nil {
		store.Close()
		return nil, uuid.Nil, err
	}
	return store, runID, nil
}

// writeReport writes doc as indented JSON and checks it against the violations schema.
func writeReport(path string, doc *reportDocument) error {
	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal violations to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write violations to output file: %w", err)
	}

	// Validate output against schema (non-fatal)
	if err := schemas.ValidateFile(schemas.ViolationsSchema, path); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Generated violations do not validate against schema: %v\n", err)
	}
	return nil
}
