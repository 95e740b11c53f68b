package schedule

import (
	"sort"
	"time"
)

// FilterValid drops events scheduled before base.
func FilterValid(events []Event, base time.Time) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if !e.StartTime.Before(base) {
			out = append(out, e)
		}
	}
	return out
}

// FilterMonth keeps events whose year and month, in their own location, match cursor.
func FilterMonth(events []Event, cursor Cursor) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if CursorFor(e.StartTime) == cursor {
			out = append(out, e)
		}
	}
	return out
}

// FilterUpcoming keeps events starting at or after now.
func FilterUpcoming(events []Event, now time.Time) []Event {
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if !e.StartTime.Before(now) {
			out = append(out, e)
		}
	}
	return out
}

// SortEvents orders events by start time in place; events starting together keep their order.
func SortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
}

// insertSorted returns a new slice with e placed after every event starting at or before it.
func insertSorted(events []Event, e Event) []Event {
	idx := sort.Search(len(events), func(i int) bool {
		return events[i].StartTime.After(e.StartTime)
	})
	out := make([]Event, 0, len(events)+1)
	out = append(out, events[:idx]...)
	out = append(out, e)
	return append(out, events[idx:]...)
}

// removeEvent returns events without id. The bool reports whether it was present.
func removeEvent(events []Event, id string) ([]Event, Event, bool) {
	for i, e := range events {
		if e.ID == id {
			out := make([]Event, 0, len(events)-1)
			out = append(out, events[:i]...)
			return append(out, events[i+1:]...), e, true
		}
	}
	return events, Event{}, false
}
