package validation

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/conference-scheduler/internal/assignment"
	"github.com/jonathan/conference-scheduler/internal/types"
)

// BatchResult is the outcome for one candidate of a batch.
// Error is set instead of Report when the candidate could not be interpreted.
type BatchResult struct {
	Index  int     `json:"index"`
	Report *Report `json:"report,omitempty"`
	Error  string  `json:"error,omitempty"`
}

// Penalty is the number of violations, or -1 for an uninterpretable candidate.
func (r BatchResult) Penalty() int {
	if r.Report == nil {
		return -1
	}
	return len(r.Report.Violations)
}

// EvaluateBatch validates candidates in parallel using at most workers goroutines
// (runtime.NumCPU() when workers <= 0). Results are returned in input order.
// A candidate that cannot be interpreted is recorded in its result rather than
// failing the batch; only context cancellation aborts it.
func EvaluateBatch(ctx context.Context, engine *Engine, problem *types.Problem, candidates []assignment.Assignment, workers int) ([]BatchResult, error) {
	if engine == nil {
		return nil, &Error{Message: "no engine given"}
	}
	if problem == nil {
		return nil, &Error{Message: "no problem given"}
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]BatchResult, len(candidates))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			// Each goroutine writes only its own index.
			results[i].Index = i
			report, err := engine.Evaluate(candidate, problem)
			if err != nil {
				results[i].Error = err.Error()
				return nil
			}
			results[i].Report = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch evaluation cancelled: %w", err)
	}
	return results, nil
}
