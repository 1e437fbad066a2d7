package constraints

import (
	"fmt"
	"sort"

	"github.com/jonathan/conference-scheduler/internal/assignment"
	"github.com/jonathan/conference-scheduler/internal/types"
)

// TagPolicy decides when events placed in the same session are topically compatible.
type TagPolicy string

const (
	// TagPolicyPairwise requires every pair of events in a session to share a tag.
	// An event is reported when at least one other event in its session shares no tag with it.
	TagPolicyPairwise TagPolicy = "pairwise"
	// TagPolicyAny requires each event to share a tag with at least one other event in its session.
	TagPolicyAny TagPolicy = "any"
)

// ParseTagPolicy converts a configuration string to a TagPolicy.
// An empty string selects TagPolicyPairwise.
func ParseTagPolicy(s string) (TagPolicy, error) {
	switch TagPolicy(s) {
	case "", TagPolicyPairwise:
		return TagPolicyPairwise, nil
	case TagPolicyAny:
		return TagPolicyAny, nil
	default:
		return "", &Error{Message: fmt.Sprintf("unknown tag policy %q", s)}
	}
}

// compatible reports whether event satisfies policy against the other events of its session.
func (p TagPolicy) compatible(event types.Event, others []types.Event) bool {
	switch p {
	case TagPolicyAny:
		for _, other := range others {
			if event.SharesTag(other) {
				return true
			}
		}
		return false
	default:
		for _, other := range others {
			if !event.SharesTag(other) {
				return false
			}
		}
		return true
	}
}

// EventsInSessionShareATag reports, for every session holding two or more events,
// each placed event that fails policy against the others. Violations are ordered
// by session id, then event id, then slot id.
func EventsInSessionShareATag(policy TagPolicy) Constraint {
	return New(RuleEventsInSessionShareATag, func(a assignment.Sparse, _ types.Shape, sessions []types.Session, events []types.Event) []types.Violation {
		byID := make(map[int]types.Event, len(events))
		for _, e := range events {
			byID[e.ID] = e
		}
		eventOf := func(id int) types.Event {
			if e, ok := byID[id]; ok {
				return e
			}
			return types.Event{ID: id}
		}

		ordered := make([]types.Session, len(sessions))
		copy(ordered, sessions)
		sort.SliceStable(ordered, func(i, j int) bool {
			return ordered[i].ID < ordered[j].ID
		})

		var violations []types.Violation
		for _, session := range ordered {
			placed := pairsInSession(a, session)
			distinct := distinctEvents(placed)
			if len(distinct) < 2 {
				continue
			}

			for _, pair := range placed {
				others := make([]types.Event, 0, len(distinct)-1)
				for _, id := range distinct {
					if id != pair.Event {
						others = append(others, eventOf(id))
					}
				}
				if !policy.compatible(eventOf(pair.Event), others) {
					violations = append(violations, types.EventSlotViolation(RuleEventsInSessionShareATag, pair.Event, pair.Slot))
				}
			}
		}
		return violations
	})
}

// pairsInSession returns the distinct pairs placed in session, sorted by event then slot.
func pairsInSession(a assignment.Sparse, session types.Session) []assignment.Pair {
	seen := make(map[assignment.Pair]bool)
	placed := make([]assignment.Pair, 0)
	for _, pair := range a {
		if !seen[pair] && session.Contains(pair.Slot) {
			seen[pair] = true
			placed = append(placed, pair)
		}
	}
	sort.Slice(placed, func(i, j int) bool {
		if placed[i].Event != placed[j].Event {
			return placed[i].Event < placed[j].Event
		}
		return placed[i].Slot < placed[j].Slot
	})
	return placed
}

// distinctEvents returns the ascending event ids of sorted pairs.
func distinctEvents(placed []assignment.Pair) []int {
	ids := make([]int, 0, len(placed))
	for i, pair := range placed {
		if i == 0 || placed[i-1].Event != pair.Event {
			ids = append(ids, pair.Event)
		}
	}
	return ids
}
