package assignment

import (
	"github.com/jonathan/conference-scheduler/internal/types"
)

// Assignment is a candidate schedule in any representation.
// Pairs returns the sparse form checked against shape.
type Assignment interface {
	Pairs(shape types.Shape) (Sparse, error)
}

// Pair places one event in one slot.
type Pair struct {
	Event int `json:"event"`
	Slot  int `json:"slot"`
}

// Sparse is an ordered list of (event, slot) pairs.
type Sparse []Pair

// Dense is an events x slots grid; a true cell places the row's event in the column's slot.
type Dense [][]bool

// NewDense returns an empty grid sized to shape.
func NewDense(shape types.Shape) Dense {
	d := make(Dense, shape.Events)
	for i := range d {
		d[i] = make([]bool, shape.Slots)
	}
	return d
}

// DenseFromInts builds a grid from a 0/1 matrix; any non-zero cell is true.
func DenseFromInts(rows [][]int) Dense {
	d := make(Dense, len(rows))
	for i, row := range rows {
		d[i] = make([]bool, len(row))
		for j, v := range row {
			d[i][j] = v != 0
		}
	}
	return d
}

// ToSparse lists every true cell in row-major order: ascending event, then ascending slot.
func ToSparse(d Dense) Sparse {
	pairs := make(Sparse, 0, len(d))
	for event, row := range d {
		for slot, set := range row {
			if set {
				pairs = append(pairs, Pair{Event: event, Slot: slot})
			}
		}
	}
	return pairs
}

// ToDense places every pair on a grid sized to shape.
// It fails with a *ShapeError when a pair lies outside the shape.
func ToDense(p Sparse, shape types.Shape) (Dense, error) {
	if shape.Events < 0 || shape.Slots < 0 {
		return nil, &ShapeError{Message: "negative shape", Event: shape.Events, Slot: shape.Slots}
	}
	if err := p.checkBounds(shape); err != nil {
		return nil, err
	}
	d := NewDense(shape)
	for _, pair := range p {
		d[pair.Event][pair.Slot] = true
	}
	return d, nil
}

// Pairs implements Assignment.
func (p Sparse) Pairs(shape types.Shape) (Sparse, error) {
	if p == nil {
		return nil, &MalformedAssignmentError{Message: "nil pair list"}
	}
	if err := p.checkBounds(shape); err != nil {
		return nil, err
	}
	return p, nil
}

func (p Sparse) checkBounds(shape types.Shape) error {
	for _, pair := range p {
		if pair.Event < 0 || pair.Event >= shape.Events {
			return &ShapeError{Message: "event id out of range", Event: pair.Event, Slot: pair.Slot}
		}
		if pair.Slot < 0 || pair.Slot >= shape.Slots {
			return &ShapeError{Message: "slot id out of range", Event: pair.Event, Slot: pair.Slot}
		}
	}
	return nil
}

// Pairs implements Assignment. The grid must have exactly shape.Events rows
// of shape.Slots columns.
func (d Dense) Pairs(shape types.Shape) (Sparse, error) {
	if len(d) == 0 && shape.Events > 0 {
		return nil, &MalformedAssignmentError{Message: "empty grid"}
	}
	if len(d) != shape.Events {
		return nil, &MalformedAssignmentError{
			Message: "grid row count does not match shape",
			Cause:   &ShapeError{Message: "expected one row per event", Event: len(d), Slot: -1},
		}
	}
	for event, row := range d {
		if len(row) != shape.Slots {
			return nil, &MalformedAssignmentError{
				Message: "grid column count does not match shape",
				Cause:   &ShapeError{Message: "expected one column per slot", Event: event, Slot: len(row)},
			}
		}
	}
	return ToSparse(d), nil
}

// Events returns the set of event ids placed by the pairs.
func (p Sparse) Events() map[int]bool {
	seen := make(map[int]bool, len(p))
	for _, pair := range p {
		seen[pair.Event] = true
	}
	return seen
}

// SlotsOf returns the slots each event occupies, in pair order.
func (p Sparse) SlotsOf() map[int][]int {
	slots := make(map[int][]int)
	for _, pair := range p {
		slots[pair.Event] = append(slots[pair.Event], pair.Slot)
	}
	return slots
}
