// Package db provides PostgreSQL storage for validation runs and their violations.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/conference-scheduler/internal/types"
)

// schema creates the tables used by the report store.
const schema = `
CREATE TABLE IF NOT EXISTS validation_runs (
	id              UUID PRIMARY KEY,
	problem         TEXT NOT NULL DEFAULT '',
	events          INTEGER NOT NULL,
	slots           INTEGER NOT NULL,
	rules           TEXT[] NOT NULL DEFAULT '{}',
	status          TEXT NOT NULL,
	valid           BOOLEAN,
	violation_count INTEGER NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	completed_at    TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS run_violations (
	run_id   UUID NOT NULL REFERENCES validation_runs(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	rule     TEXT NOT NULL,
	event_id INTEGER,
	slot_id  INTEGER,
	PRIMARY KEY (run_id, position)
);`

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// EnsureSchema creates the report tables if they do not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// CreateRun records the start of a validation run and returns its ID
func (db *DB) CreateRun(ctx context.Context, problem string, shape types.Shape, rules []string) (uuid.UUID, error) {
	id := uuid.New()
	if rules == nil {
		rules = []string{}
	}
	_, err := db.pool.Exec(ctx,
		`INSERT INTO validation_runs (id, problem, events, slots, rules, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, problem, shape.Events, shape.Slots, rules, RunStatusRunning,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// SaveViolations stores the violations of a run in report order, replacing any stored before
func (db *DB) SaveViolations(ctx context.Context, runID uuid.UUID, violations []types.Violation) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM run_violations WHERE run_id = $1`, runID); err != nil {
		return fmt.Errorf("failed to clear violations: %w", err)
	}

	records := ToRecords(runID, violations)
	rows := make([][]any, len(records))
	for i, r := range records {
		rows[i] = []any{r.RunID, r.Position, r.Rule, r.EventID, r.SlotID}
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"run_violations"},
		[]string{"run_id", "position", "rule", "event_id", "slot_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to save violations: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit violations: %w", err)
	}
	return nil
}

// CompleteRun marks a run finished with its outcome
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, valid bool, violationCount int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE validation_runs
		 SET status = $1, valid = $2, violation_count = $3, completed_at = NOW()
		 WHERE id = $4`,
		RunStatusCompleted, valid, violationCount, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// FailRun marks a run that could not be evaluated
func (db *DB) FailRun(ctx context.Context, runID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE validation_runs SET status = $1, completed_at = NOW() WHERE id = $2`,
		RunStatusFailed, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark run failed: %w", err)
	}
	return nil
}

// GetRun retrieves a validation run by ID; it returns nil when none exists
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, problem, events, slots, rules, status, valid, violation_count, created_at, completed_at
		 FROM validation_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.Problem, &run.Events, &run.Slots, &run.Rules, &run.Status, &run.Valid, &run.ViolationCount, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent validation runs
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, problem, events, slots, rules, status, valid, violation_count, created_at, completed_at
		 FROM validation_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Problem, &run.Events, &run.Slots, &run.Rules, &run.Status, &run.Valid, &run.ViolationCount, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ListViolations retrieves the stored violations of a run in report order
func (db *DB) ListViolations(ctx context.Context, runID uuid.UUID) ([]types.Violation, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT rule, event_id, slot_id FROM run_violations WHERE run_id = $1 ORDER BY position`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list violations: %w", err)
	}
	defer rows.Close()

	violations := make([]types.Violation, 0)
	for rows.Next() {
		var v types.Violation
		if err := rows.Scan(&v.Rule, &v.EventID, &v.SlotID); err != nil {
			return nil, fmt.Errorf("failed to scan violation: %w", err)
		}
		violations = append(violations, v)
	}
	return violations, rows.Err()
}

// ToRecords converts violations to stored records in report order.
func ToRecords(runID uuid.UUID, violations []types.Violation) []ViolationRecord {
	records := make([]ViolationRecord, len(violations))
	for i, v := range violations {
		records[i] = ViolationRecord{RunID: runID, Position: i, Rule: v.Rule, EventID: v.EventID, SlotID: v.SlotID}
	}
	return records
}
