// Package types provides type definitions for structured data used throughout the conference-scheduler system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// Violation represents a single broken constraint for one candidate assignment.
type Violation struct {
	Rule    string `json:"rule"`
	EventID *int   `json:"event_id,omitempty"` // Event the rule was broken for
	SlotID  *int   `json:"slot_id,omitempty"`  // Slot the rule was broken at
}

// EventViolation builds a violation that identifies an event only.
func EventViolation(rule string, event int) Violation {
	return Violation{Rule: rule, EventID: &event}
}

// SlotViolation builds a violation that identifies a slot only.
func SlotViolation(rule string, slot int) Violation {
	return Violation{Rule: rule, SlotID: &slot}
}

// EventSlotViolation builds a violation that identifies an event at a slot.
func EventSlotViolation(rule string, event, slot int) Violation {
	return Violation{Rule: rule, EventID: &event, SlotID: &slot}
}

// String renders the rule name followed by any present identifiers,
// e.g. "schedule_all_events event: 1".
func (v Violation) String() string {
	var sb strings.Builder
	sb.WriteString(v.Rule)
	if v.EventID != nil {
		sb.WriteString(fmt.Sprintf(" event: %d", *v.EventID))
	}
	if v.SlotID != nil {
		sb.WriteString(fmt.Sprintf(" slot: %d", *v.SlotID))
	}
	return sb.String()
}

// Violations represents a collection of constraint violations
type Violations struct {
	Violations []Violation `json:"violations"`
}

// Strings renders every violation in order.
func (v Violations) Strings() []string {
	out := make([]string, 0, len(v.Violations))
	for _, violation := range v.Violations {
		out = append(out, violation.String())
	}
	return out
}

// CountByRule returns the number of violations reported per rule name.
func (v Violations) CountByRule() map[string]int {
	counts := make(map[string]int)
	for _, violation := range v.Violations {
		counts[violation.Rule]++
	}
	return counts
}
