package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/conference-scheduler/internal/schemas"
	"github.com/jonathan/conference-scheduler/internal/types"
)

// LoadProblem reads and checks a problem definition file.
func LoadProblem(path string) (*types.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Cause: err}
	}
	problem, err := ParseProblem(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load problem %s: %w", path, err)
	}
	return problem, nil
}

// ParseProblem decodes a problem definition and checks that it describes a
// usable instance: one event per id in [0, events), slot ids in range, and
// sessions that do not overlap. Slots no session names are placed in
// singleton sessions numbered after the highest given session id.
// Events and sessions are returned sorted by id.
func ParseProblem(data []byte) (*types.Problem, error) {
	if err := schemas.ValidateDocument(schemas.ProblemSchema, data); err != nil {
		return nil, err
	}

	var problem types.Problem
	if err := json.Unmarshal(data, &problem); err != nil {
		return nil, &ProblemError{Message: "failed to unmarshal problem JSON", Cause: err}
	}
	if err := validator.New().Struct(&problem); err != nil {
		return nil, &ProblemError{Message: "field validation failed", Cause: err}
	}

	if err := checkEvents(&problem); err != nil {
		return nil, err
	}
	if err := checkSlots(&problem); err != nil {
		return nil, err
	}
	if err := partitionSessions(&problem); err != nil {
		return nil, err
	}
	return &problem, nil
}

func checkEvents(p *types.Problem) error {
	if len(p.Events) != p.Shape.Events {
		return &ProblemError{Message: fmt.Sprintf("shape declares %d events but %d are defined", p.Shape.Events, len(p.Events))}
	}
	seen := make(map[int]bool, len(p.Events))
	for _, event := range p.Events {
		if event.ID >= p.Shape.Events {
			return &ProblemError{Message: fmt.Sprintf("event id %d out of range", event.ID)}
		}
		if seen[event.ID] {
			return &ProblemError{Message: fmt.Sprintf("duplicate event id %d", event.ID)}
		}
		seen[event.ID] = true
	}
	sort.Slice(p.Events, func(i, j int) bool { return p.Events[i].ID < p.Events[j].ID })
	return nil
}

// checkSlots validates optional slot metadata; slots may be omitted entirely.
func checkSlots(p *types.Problem) error {
	seen := make(map[int]bool, len(p.Slots))
	for _, slot := range p.Slots {
		if slot.ID >= p.Shape.Slots {
			return &ProblemError{Message: fmt.Sprintf("slot id %d out of range", slot.ID)}
		}
		if seen[slot.ID] {
			return &ProblemError{Message: fmt.Sprintf("duplicate slot id %d", slot.ID)}
		}
		seen[slot.ID] = true
	}
	sort.Slice(p.Slots, func(i, j int) bool { return p.Slots[i].ID < p.Slots[j].ID })
	return nil
}

func partitionSessions(p *types.Problem) error {
	owner := make(map[int]int)
	ids := make(map[int]bool, len(p.Sessions))
	nextID := 0
	for _, session := range p.Sessions {
		if ids[session.ID] {
			return &ProblemError{Message: fmt.Sprintf("duplicate session id %d", session.ID)}
		}
		ids[session.ID] = true
		if session.ID >= nextID {
			nextID = session.ID + 1
		}
		for _, slot := range session.Slots {
			if slot >= p.Shape.Slots {
				return &ProblemError{Message: fmt.Sprintf("session %d names slot %d out of range", session.ID, slot)}
			}
			if other, taken := owner[slot]; taken {
				return &ProblemError{Message: fmt.Sprintf("slot %d belongs to sessions %d and %d", slot, other, session.ID)}
			}
			owner[slot] = session.ID
		}
	}

	for slot := 0; slot < p.Shape.Slots; slot++ {
		if _, grouped := owner[slot]; !grouped {
			p.Sessions = append(p.Sessions, types.Session{ID: nextID, Slots: []int{slot}})
			nextID++
		}
	}
	sort.Slice(p.Sessions, func(i, j int) bool { return p.Sessions[i].ID < p.Sessions[j].ID })
	return nil
}
