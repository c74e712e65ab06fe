package bcd

import "slices"

// EventKind classifies a sweep-line event. IN marks the leftmost vertex of
// an obstacle, OUT the rightmost. Between them, CEILING marks a vertex on
// the obstacle's lower chain (larger y in image coordinates), which extends
// the ceiling of the cell below the obstacle; FLOOR marks a vertex on the
// upper chain, which extends the floor of the cell above it.
type EventKind int

const (
	EventIn EventKind = iota
	EventOut
	EventCeiling
	EventFloor
)

func (k EventKind) String() string {
	switch k {
	case EventIn:
		return "IN"
	case EventOut:
		return "OUT"
	case EventCeiling:
		return "CEILING"
	case EventFloor:
		return "FLOOR"
	default:
		return "UNKNOWN"
	}
}

// SyntheticObstacle marks an Event synthesized by the decomposition engine
// (the workspace top/bottom boundary events prepended/appended to every
// slice) rather than derived from an input obstacle.
const SyntheticObstacle = -1

// Event is a sweep-line transition at a polygon vertex (or, for
// SyntheticObstacle events, a workspace boundary).
type Event struct {
	ObstacleID int
	Point      Point
	Kind       EventKind

	// SliceIndex is the event's position within its slice, assigned once
	// slices are built (C3) and consumed by the CEILING/FLOOR owner-lookup
	// rule (§4.3's counting rule).
	SliceIndex int

	// Used marks an event as consumed by an OPEN or CLOSE operation; a
	// CEILING/FLOOR event checks this before appending to its owning
	// cell's edge.
	Used bool
}

// GenerateEvents classifies every vertex of every polygon into an
// IN/OUT/CEILING/FLOOR event (spec.md §4.1) and returns them sorted
// lexicographically by (x, y).
func GenerateEvents(polygons []Polygon) ([]Event, error) {
	var events []Event

	for obstacleID, poly := range polygons {
		if err := poly.Validate(); err != nil {
			return nil, err
		}

		left, right, err := poly.Extrema()
		if err != nil {
			return nil, err
		}

		events = append(events,
			Event{ObstacleID: obstacleID, Point: poly[left], Kind: EventIn},
			Event{ObstacleID: obstacleID, Point: poly[right], Kind: EventOut},
		)

		n := len(poly)
		for i := 0; i < n; i++ {
			if i == left || i == right {
				continue
			}
			var kind EventKind
			if left < right {
				// the strictly-between run left..right is the lower chain
				if left < i && i < right {
					kind = EventCeiling
				} else {
					kind = EventFloor
				}
			} else {
				// roles swap: right..left is the floor chain
				if right < i && i < left {
					kind = EventFloor
				} else {
					kind = EventCeiling
				}
			}
			events = append(events, Event{ObstacleID: obstacleID, Point: poly[i], Kind: kind})
		}
	}

	slices.SortStableFunc(events, func(a, b Event) int {
		return Compare(a.Point, b.Point)
	})

	return events, nil
}
