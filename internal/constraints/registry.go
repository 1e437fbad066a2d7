package constraints

import (
	"fmt"
)

// Registry is an ordered collection of uniquely named constraints.
// Registration order is evaluation order.
type Registry struct {
	order  []Constraint
	byName map[string]Constraint
}

// NewRegistry returns a registry holding the given constraints in order.
func NewRegistry(cs ...Constraint) (*Registry, error) {
	r := &Registry{byName: make(map[string]Constraint)}
	for _, c := range cs {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends a constraint. Names must be non-empty and unique.
func (r *Registry) Register(c Constraint) error {
	if c == nil {
		return &Error{Message: "cannot register nil constraint"}
	}
	name := c.Name()
	if name == "" {
		return &Error{Message: "constraint name is empty"}
	}
	if _, exists := r.byName[name]; exists {
		return &Error{Message: fmt.Sprintf("constraint %q already registered", name)}
	}
	r.byName[name] = c
	r.order = append(r.order, c)
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(c Constraint) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Lookup returns the constraint registered under name.
func (r *Registry) Lookup(name string) (Constraint, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Names returns the registered names in evaluation order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, c := range r.order {
		names[i] = c.Name()
	}
	return names
}

// All returns the constraints in evaluation order.
func (r *Registry) All() []Constraint {
	out := make([]Constraint, len(r.order))
	copy(out, r.order)
	return out
}

// Select returns a new registry with only the named constraints, in the
// order the names are given.
func (r *Registry) Select(names ...string) (*Registry, error) {
	selected := make([]Constraint, 0, len(names))
	for _, name := range names {
		c, ok := r.Lookup(name)
		if !ok {
			return nil, &Error{Message: fmt.Sprintf("unknown constraint %q", name)}
		}
		selected = append(selected, c)
	}
	return NewRegistry(selected...)
}

// Default returns the standard rule set. The three core rules come first, in
// the order their violations are reported.
func Default(policy TagPolicy) *Registry {
	r, err := NewRegistry(
		ScheduleAllEvents(),
		MaxOneEventPerSlot(),
		EventsInSessionShareATag(policy),
		MaxOneSlotPerEvent(),
	)
	if err != nil {
		panic(fmt.Sprintf("default constraints: %v", err))
	}
	return r
}
