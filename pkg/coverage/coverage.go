// Package coverage turns a cell's ceiling/floor edges into a serpentine
// (boustrophedon) scan path a robot of a given radius can drive.
package coverage

import (
	"github.com/fliesfaries/bcdsweep/pkg/bcd"
)

// Plan walks order — a cell visitation order produced by bcd.Walk — and
// returns a serpentine coverage path per cell, keyed by cell index. A
// cell already marked Cleaned (because an earlier, possibly later-undone,
// visit already planned it) is skipped rather than re-planned, matching
// the original walker's revisit behavior under backtracking.
func Plan(g *bcd.Graph, order []int, radius int) map[int][]bcd.Point {
	paths := make(map[int][]bcd.Point)
	for _, idx := range order {
		cell := g.Cell(idx)
		if cell.Cleaned {
			continue
		}
		paths[idx] = Serpentine(cell.Ceiling, cell.Floor, radius)
		cell.Cleaned = true
	}
	return paths
}

// Serpentine returns a boustrophedon scan path between parallel ceiling
// and floor edges, offset inward by radius+1 so the robot's footprint
// never crosses either boundary. It alternates top-to-bottom and
// bottom-to-top columns, stepping radius columns at a time and — for
// radius > 0 — filling the skipped columns with a single diagonal hop per
// column so the whole strip stays swept (spec.md §4.5,
// original_source/main.cpp::GetBoustrophedonPath).
//
// ceiling and floor must be the same length and share x-coordinates
// column for column, as bcd.Cell guarantees.
func Serpentine(ceiling, floor bcd.Edge, radius int) []bcd.Point {
	n := len(ceiling)
	margin := radius + 1
	if n <= 2*margin {
		return nil
	}

	step := radius
	if step < 1 {
		step = 1
	}

	var path []bcd.Point
	reverse := false

	for i := margin; i < n-margin; i += step {
		x := ceiling[i].X

		if !reverse {
			yStart, yEnd := ceiling[i].Y+margin, floor[i].Y-margin
			for y := yStart; y <= yEnd; y++ {
				path = append(path, bcd.Point{X: x, Y: y})
			}
			for j := 1; j <= radius && i+j < n; j++ {
				path = append(path, bcd.Point{X: x + j, Y: floor[i+j].Y - margin})
			}
		} else {
			yStart, yEnd := floor[i].Y-margin, ceiling[i].Y+margin
			for y := yStart; y >= yEnd; y-- {
				path = append(path, bcd.Point{X: x, Y: y})
			}
			for j := 1; j <= radius && i+j < n; j++ {
				path = append(path, bcd.Point{X: x + j, Y: ceiling[i+j].Y + margin})
			}
		}
		reverse = !reverse
	}

	return path
}
