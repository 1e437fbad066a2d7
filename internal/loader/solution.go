package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/conference-scheduler/internal/assignment"
	"github.com/jonathan/conference-scheduler/internal/schemas"
)

// solutionDoc is the on-disk form of a candidate: exactly one of Pairs or Dense.
type solutionDoc struct {
	Pairs *[][2]int `json:"pairs,omitempty"`
	Dense *[][]int  `json:"dense,omitempty"`
}

func (d solutionDoc) assignment() assignment.Assignment {
	if d.Pairs != nil {
		pairs := make(assignment.Sparse, 0, len(*d.Pairs))
		for _, p := range *d.Pairs {
			pairs = append(pairs, assignment.Pair{Event: p[0], Slot: p[1]})
		}
		return pairs
	}
	return assignment.DenseFromInts(*d.Dense)
}

type candidatesDoc struct {
	Candidates []solutionDoc `json:"candidates"`
}

// LoadSolution reads a candidate assignment file.
func LoadSolution(path string) (assignment.Assignment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Cause: err}
	}
	a, err := ParseSolution(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load solution %s: %w", path, err)
	}
	return a, nil
}

// ParseSolution decodes {"pairs": [[event, slot], ...]} or {"dense": [[0, 1, ...], ...]}.
// Ids are not checked against a shape here; the validation engine does that.
func ParseSolution(data []byte) (assignment.Assignment, error) {
	if err := schemas.ValidateDocument(schemas.SolutionSchema, data); err != nil {
		return nil, err
	}
	var doc solutionDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solution JSON: %w", err)
	}
	return doc.assignment(), nil
}

// LoadCandidates reads a batch file of candidate assignments.
func LoadCandidates(path string) ([]assignment.Assignment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Cause: err}
	}
	candidates, err := ParseCandidates(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates %s: %w", path, err)
	}
	return candidates, nil
}

// ParseCandidates decodes {"candidates": [solution, ...]}.
func ParseCandidates(data []byte) ([]assignment.Assignment, error) {
	if err := schemas.ValidateDocument(schemas.CandidatesSchema, data); err != nil {
		return nil, err
	}
	var doc candidatesDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidates JSON: %w", err)
	}
	out := make([]assignment.Assignment, len(doc.Candidates))
	for i, c := range doc.Candidates {
		out[i] = c.assignment()
	}
	return out, nil
}
