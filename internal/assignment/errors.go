// Package assignment provides the dense and sparse representations of a candidate schedule.
package assignment

import "fmt"

// ShapeError reports an event or slot id that falls outside the problem shape.
type ShapeError struct {
	Message string
	Event   int
	Slot    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("shape error: %s (event %d, slot %d)", e.Message, e.Event, e.Slot)
}

// MalformedAssignmentError reports an assignment that cannot be interpreted at all,
// such as a missing grid or one whose dimensions disagree with the shape.
type MalformedAssignmentError struct {
	Message string
	Cause   error
}

func (e *MalformedAssignmentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed assignment: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed assignment: %s", e.Message)
}

func (e *MalformedAssignmentError) Unwrap() error {
	return e.Cause
}
