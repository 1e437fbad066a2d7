package constraints

import (
	"sort"

	"github.com/jonathan/conference-scheduler/internal/assignment"
	"github.com/jonathan/conference-scheduler/internal/types"
)

// ScheduleAllEvents reports every event in [0, shape.Events) that no pair places.
func ScheduleAllEvents() Constraint {
	return New(RuleScheduleAllEvents, func(a assignment.Sparse, shape types.Shape, _ []types.Session, _ []types.Event) []types.Violation {
		scheduled := a.Events()
		var violations []types.Violation
		for event := 0; event < shape.Events; event++ {
			if !scheduled[event] {
				violations = append(violations, types.EventViolation(RuleScheduleAllEvents, event))
			}
		}
		return violations
	})
}

// MaxOneEventPerSlot reports each slot that two or more pairs occupy, once per slot.
func MaxOneEventPerSlot() Constraint {
	return New(RuleMaxOneEventPerSlot, func(a assignment.Sparse, _ types.Shape, _ []types.Session, _ []types.Event) []types.Violation {
		occupancy := make(map[int]int)
		for _, pair := range a {
			occupancy[pair.Slot]++
		}
		crowded := make([]int, 0)
		for slot, count := range occupancy {
			if count > 1 {
				crowded = append(crowded, slot)
			}
		}
		sort.Ints(crowded)

		var violations []types.Violation
		for _, slot := range crowded {
			violations = append(violations, types.SlotViolation(RuleMaxOneEventPerSlot, slot))
		}
		return violations
	})
}

// MaxOneSlotPerEvent reports each event placed in two or more distinct slots.
// Repeating the same pair does not count as a second slot.
func MaxOneSlotPerEvent() Constraint {
	return New(RuleMaxOneSlotPerEvent, func(a assignment.Sparse, _ types.Shape, _ []types.Session, _ []types.Event) []types.Violation {
		overbooked := make([]int, 0)
		for event, slots := range a.SlotsOf() {
			if countDistinct(slots) > 1 {
				overbooked = append(overbooked, event)
			}
		}
		sort.Ints(overbooked)

		var violations []types.Violation
		for _, event := range overbooked {
			violations = append(violations, types.EventViolation(RuleMaxOneSlotPerEvent, event))
		}
		return violations
	})
}

func countDistinct(ids []int) int {
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	return len(seen)
}
