// Package bcd implements boustrophedon cellular decomposition: sweeping a
// rectangular workspace populated with convex polygonal obstacles into
// vertically-convex cells, and walking the resulting cell graph.
package bcd

import "cmp"

// Point is an integer coordinate in image space (y grows downward).
type Point struct {
	X, Y int
}

// Less implements the total order used throughout the sweep: x first,
// then y.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// Compare is the cmp.Compare-shaped counterpart of Less, for use with
// slices.SortFunc/slices.MinFunc.
func Compare(p, q Point) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}
