package bcd

import "errors"

// Sentinel error kinds for the planner's error surface. All are fatal to
// the in-flight call; none are retried.
var (
	// ErrInvalidPolygon is returned when a polygon fails a precondition:
	// fewer than three vertices, a non-unique leftmost/rightmost vertex,
	// or a clockwise (non-CCW) contour.
	ErrInvalidPolygon = errors.New("invalid polygon")

	// ErrDecomposition is returned when an IN/OUT event has no owning
	// active cell (or adjacent pair), indicating overlapping obstacles,
	// obstacles touching the workspace boundary, or a bug.
	ErrDecomposition = errors.New("decomposition error")
)
