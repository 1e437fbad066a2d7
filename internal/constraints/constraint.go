// Package constraints provides the named feasibility rules a candidate schedule is judged against.
package constraints

import (
	"github.com/jonathan/conference-scheduler/internal/assignment"
	"github.com/jonathan/conference-scheduler/internal/types"
)

// Rule names reported on violations.
const (
	RuleScheduleAllEvents        = "schedule_all_events"
	RuleMaxOneEventPerSlot       = "max_one_event_per_slot"
	RuleEventsInSessionShareATag = "events_in_session_share_a_tag"
	RuleMaxOneSlotPerEvent       = "max_one_slot_per_event"
)

// Constraint is a single feasibility rule. Check must be a pure function of its
// arguments and must not modify them.
type Constraint interface {
	Name() string
	Check(a assignment.Sparse, shape types.Shape, sessions []types.Session, events []types.Event) []types.Violation
}

// CheckFunc is the signature of a rule body.
type CheckFunc func(a assignment.Sparse, shape types.Shape, sessions []types.Session, events []types.Event) []types.Violation

type funcConstraint struct {
	name  string
	check CheckFunc
}

// New wraps a function as a named Constraint.
func New(name string, check CheckFunc) Constraint {
	return &funcConstraint{name: name, check: check}
}

func (c *funcConstraint) Name() string { return c.name }

func (c *funcConstraint) Check(a assignment.Sparse, shape types.Shape, sessions []types.Session, events []types.Event) []types.Violation {
	return c.check(a, shape, sessions, events)
}
