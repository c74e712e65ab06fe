package bcd

import "fmt"

// Polygon is a convex obstacle contour, traversed counter-clockwise in
// image coordinates (y grows downward). It must have at least three
// vertices, and no other vertex may share the x-coordinate of its leftmost
// or of its rightmost vertex.
type Polygon []Point

// Edge is a piecewise path: the ceiling or floor boundary of a Cell.
type Edge []Point

// Extrema returns the index of the leftmost and rightmost vertex under the
// total order, or ErrInvalidPolygon if another vertex shares either one's
// x-coordinate (or the polygon has fewer than three vertices).
func (p Polygon) Extrema() (leftIdx, rightIdx int, err error) {
	if len(p) < 3 {
		return 0, 0, fmt.Errorf("%w: polygon has %d vertices, need at least 3", ErrInvalidPolygon, len(p))
	}

	leftIdx, rightIdx = 0, 0
	for i := 1; i < len(p); i++ {
		if p[i].Less(p[leftIdx]) {
			leftIdx = i
		}
		if p[rightIdx].Less(p[i]) {
			rightIdx = i
		}
	}

	for i, v := range p {
		if i != leftIdx && v.X == p[leftIdx].X {
			return 0, 0, fmt.Errorf("%w: leftmost vertex is not unique", ErrInvalidPolygon)
		}
		if i != rightIdx && v.X == p[rightIdx].X {
			return 0, 0, fmt.Errorf("%w: rightmost vertex is not unique", ErrInvalidPolygon)
		}
	}

	return leftIdx, rightIdx, nil
}

// doubleSignedArea returns twice the signed area of the polygon under the
// standard (y-up) shoelace formula. Because image coordinates grow
// downward, a polygon that is counter-clockwise on screen yields a
// *negative* value here — the y-axis flip inverts the usual sign
// convention.
func (p Polygon) doubleSignedArea() int {
	sum := 0
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return sum
}

// IsCCW reports whether the polygon is wound counter-clockwise in image
// coordinates, detectable via its signed area (spec.md §7).
func (p Polygon) IsCCW() bool {
	return p.doubleSignedArea() < 0
}

// Validate checks the preconditions GenerateEvents relies on: at least
// three vertices, a unique leftmost/rightmost vertex, and CCW winding.
func (p Polygon) Validate() error {
	_, _, err := p.Extrema()
	if err != nil {
		return err
	}
	if !p.IsCCW() {
		return fmt.Errorf("%w: polygon is not wound counter-clockwise", ErrInvalidPolygon)
	}
	return nil
}
