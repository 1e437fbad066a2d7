package types

// Shape describes the size of a scheduling problem.
type Shape struct {
	Events int `json:"events" validate:"min=0"`
	Slots  int `json:"slots" validate:"min=0"`
}

// Event is a schedulable unit (e.g. a talk) carrying topical tags.
type Event struct {
	ID   int      `json:"id" validate:"min=0"`
	Name string   `json:"name,omitempty"`
	Tags []string `json:"tags,omitempty" validate:"dive,required"`
}

// HasTag reports whether the event carries tag.
func (e Event) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SharesTag reports whether the two events carry at least one common tag.
func (e Event) SharesTag(other Event) bool {
	for _, t := range e.Tags {
		if other.HasTag(t) {
			return true
		}
	}
	return false
}

// Slot is an atomic time/place unit an event can occupy.
// Day, Time and Venue are descriptive only.
type Slot struct {
	ID    int    `json:"id" validate:"min=0"`
	Day   string `json:"day,omitempty"`
	Time  string `json:"time,omitempty"`
	Venue string `json:"venue,omitempty"`
}

// Session groups slots; sessions partition the slot space.
type Session struct {
	ID    int    `json:"id" validate:"min=0"`
	Name  string `json:"name,omitempty"`
	Slots []int  `json:"slots" validate:"dive,min=0"`
}

// Contains reports whether slot belongs to the session.
func (s Session) Contains(slot int) bool {
	for _, id := range s.Slots {
		if id == slot {
			return true
		}
	}
	return false
}

// Problem bundles the read-only description of one scheduling instance.
type Problem struct {
	Name     string    `json:"name,omitempty"`
	Shape    Shape     `json:"shape"`
	Events   []Event   `json:"events" validate:"dive"`
	Slots    []Slot    `json:"slots,omitempty" validate:"dive"`
	Sessions []Session `json:"sessions" validate:"dive"`
}
