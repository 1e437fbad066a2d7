// Package loader reads problem definitions and candidate solutions from JSON files.
package loader

import "fmt"

// FileReadError represents an error reading an input file
type FileReadError struct {
	Path  string
	Cause error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("file read error: %s: %v", e.Path, e.Cause)
}

func (e *FileReadError) Unwrap() error {
	return e.Cause
}

// ProblemError represents a problem definition that is well-formed JSON but
// not a usable scheduling instance
type ProblemError struct {
	Message string
	Cause   error
}

func (e *ProblemError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid problem: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid problem: %s", e.Message)
}

func (e *ProblemError) Unwrap() error {
	return e.Cause
}
