package bcd

// Slice groups every event sharing the same x-coordinate into a single
// sweep-line column (spec.md §4.2).
type Slice struct {
	X      int
	Events []Event
}

// BuildSlices groups consecutive events sharing the same x into slices,
// delivered in increasing-x order. events must already be sorted by
// (x, y), as GenerateEvents returns them.
func BuildSlices(events []Event) []Slice {
	if len(events) == 0 {
		return nil
	}

	slices := make([]Slice, 0, len(events))
	cur := Slice{X: events[0].Point.X}

	for _, e := range events {
		if e.Point.X != cur.X {
			slices = append(slices, cur)
			cur = Slice{X: e.Point.X}
		}
		cur.Events = append(cur.Events, e)
	}
	slices = append(slices, cur)

	return slices
}
