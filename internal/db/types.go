package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a validation run record
type Run struct {
	ID             uuid.UUID  `json:"id"`
	Problem        string     `json:"problem"`
	Events         int        `json:"events"`
	Slots          int        `json:"slots"`
	Rules          []string   `json:"rules"`
	Status         string     `json:"status"`
	Valid          *bool      `json:"valid,omitempty"`
	ViolationCount int        `json:"violation_count"`
	CreatedAt      time.Time  `json:"created_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// ViolationRecord is one stored violation of a run, in report order.
type ViolationRecord struct {
	RunID    uuid.UUID `json:"run_id"`
	Position int       `json:"position"`
	Rule     string    `json:"rule"`
	EventID  *int      `json:"event_id,omitempty"`
	SlotID   *int      `json:"slot_id,omitempty"`
}
