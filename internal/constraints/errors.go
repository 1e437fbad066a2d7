package constraints

import "fmt"

// Error represents a misconfigured constraint set
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("constraint error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("constraint error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
