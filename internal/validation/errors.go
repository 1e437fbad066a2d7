// Package validation judges candidate schedules against a constraint registry.
package validation

import "fmt"

// Error represents a domain model that cannot be validated against, such as
// events or sessions that disagree with the declared shape.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
