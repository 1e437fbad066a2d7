package constraints

import (
	"github.com/jonathan/conference-scheduler/internal/types"
)

// conferenceFixture is a 3 event, 7 slot problem whose first session groups slots 0 and 1.
func conferenceFixture() (types.Shape, []types.Session, []types.Event) {
	shape := types.Shape{Events: 3, Slots: 7}
	sessions := []types.Session{
		{ID: 0, Slots: []int{0, 1}},
		{ID: 1, Slots: []int{2}},
		{ID: 2, Slots: []int{3}},
		{ID: 3, Slots: []int{4}},
		{ID: 4, Slots: []int{5}},
		{ID: 5, Slots: []int{6}},
	}
	events := []types.Event{
		{ID: 0, Tags: []string{"community", "web"}},
		{ID: 1, Tags: []string{"web"}},
		{ID: 2, Tags: []string{"pydata"}},
	}
	return shape, sessions, events
}
