// Package validation judges candidate schedules against a constraint registry.
package validation

import (
	"fmt"

	"github.com/jonathan/conference-scheduler/internal/assignment"
	"github.com/jonathan/conference-scheduler/internal/constraints"
	"github.com/jonathan/conference-scheduler/internal/types"
)

// Config selects the constraints an Engine evaluates.
type Config struct {
	Registry *constraints.Registry
}

// DefaultConfig returns the standard rule set with pairwise tag matching.
func DefaultConfig() Config {
	return Config{Registry: constraints.Default(constraints.TagPolicyPairwise)}
}

// Engine runs every registered constraint against candidate assignments.
// An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	rules []constraints.Constraint
}

// New creates an Engine from cfg. The registry is snapshotted; constraints
// registered afterwards are not evaluated.
func New(cfg Config) (*Engine, error) {
	if cfg.Registry == nil {
		return nil, &Error{Message: "config has no constraint registry"}
	}
	return &Engine{rules: cfg.Registry.All()}, nil
}

// Rules returns the names of the evaluated constraints in order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, c := range e.rules {
		names[i] = c.Name()
	}
	return names
}

// ConstraintViolations runs every constraint in registration order and concatenates
// their violations. Broken rules are never errors; an error is returned only when
// the assignment or domain model cannot be interpreted against shape.
func (e *Engine) ConstraintViolations(a assignment.Assignment, shape types.Shape, sessions []types.Session, events []types.Event) ([]types.Violation, error) {
	if err := checkDomain(shape, sessions, events); err != nil {
		return nil, err
	}
	if a == nil {
		return nil, &assignment.MalformedAssignmentError{Message: "no assignment"}
	}
	pairs, err := a.Pairs(shape)
	if err != nil {
		return nil, err
	}

	violations := make([]types.Violation, 0)
	for _, c := range e.rules {
		violations = append(violations, c.Check(pairs, shape, sessions, events)...)
	}
	return violations, nil
}

// IsValidSolution reports whether a is interpretable against shape and breaks no constraint.
func (e *Engine) IsValidSolution(a assignment.Assignment, shape types.Shape, sessions []types.Session, events []types.Event) bool {
	violations, err := e.ConstraintViolations(a, shape, sessions, events)
	if err != nil {
		return false
	}
	return len(violations) == 0
}

// Report is the outcome of validating one candidate.
type Report struct {
	Valid      bool              `json:"valid"`
	Violations []types.Violation `json:"violations"`
}

// Evaluate validates a against problem and returns a Report.
func (e *Engine) Evaluate(a assignment.Assignment, problem *types.Problem) (*Report, error) {
	if problem == nil {
		return nil, &Error{Message: "no problem given"}
	}
	violations, err := e.ConstraintViolations(a, problem.Shape, problem.Sessions, problem.Events)
	if err != nil {
		return nil, err
	}
	return &Report{Valid: len(violations) == 0, Violations: violations}, nil
}

// ConstraintViolations validates with the default configuration.
func ConstraintViolations(a assignment.Assignment, shape types.Shape, sessions []types.Session, events []types.Event) ([]types.Violation, error) {
	engine, err := New(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return engine.ConstraintViolations(a, shape, sessions, events)
}

// IsValidSolution validates with the default configuration.
func IsValidSolution(a assignment.Assignment, shape types.Shape, sessions []types.Session, events []types.Event) bool {
	engine, err := New(DefaultConfig())
	if err != nil {
		return false
	}
	return engine.IsValidSolution(a, shape, sessions, events)
}

// checkDomain rejects events and sessions that do not fit shape.
func checkDomain(shape types.Shape, sessions []types.Session, events []types.Event) error {
	if shape.Events < 0 || shape.Slots < 0 {
		return &Error{Message: fmt.Sprintf("negative shape %d x %d", shape.Events, shape.Slots)}
	}
	if len(events) != shape.Events {
		return &Error{Message: fmt.Sprintf("shape declares %d events but %d were given", shape.Events, len(events))}
	}
	seen := make(map[int]bool, len(events))
	for _, event := range events {
		if event.ID < 0 || event.ID >= shape.Events {
			return &Error{Message: fmt.Sprintf("event id %d out of range", event.ID)}
		}
		if seen[event.ID] {
			return &Error{Message: fmt.Sprintf("duplicate event id %d", event.ID)}
		}
		seen[event.ID] = true
	}
	for _, session := range sessions {
		for _, slot := range session.Slots {
			if slot < 0 || slot >= shape.Slots {
				return &Error{Message: fmt.Sprintf("session %d names slot %d out of range", session.ID, slot)}
			}
		}
	}
	return nil
}
