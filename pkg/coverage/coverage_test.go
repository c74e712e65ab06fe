package coverage

import (
	"testing"

	"github.com/fliesfaries/bcdsweep/pkg/bcd"
)

func flatEdges(n, ceilY, floorY int) (bcd.Edge, bcd.Edge) {
	ceiling := make(bcd.Edge, n)
	floor := make(bcd.Edge, n)
	for x := 0; x < n; x++ {
		ceiling[x] = bcd.Point{X: x, Y: ceilY}
		floor[x] = bcd.Point{X: x, Y: floorY}
	}
	return ceiling, floor
}

func TestSerpentineZeroRadiusCoversEveryColumn(t *testing.T) {
	ceiling, floor := flatEdges(10, 0, 9)
	path := Serpentine(ceiling, floor, 0)

	cols := make(map[int]int)
	for _, p := range path {
		cols[p.X]++
	}
	for x := 1; x < 9; x++ {
		if cols[x] != 8 {
			t.Errorf("column %d covered %d times, want 8 (one full top-to-bottom sweep)", x, cols[x])
		}
	}
	if cols[0] != 0 || cols[9] != 0 {
		t.Errorf("margin columns should be untouched, got cols[0]=%d cols[9]=%d", cols[0], cols[9])
	}
}

func TestSerpentineAlternatesDirection(t *testing.T) {
	ceiling, floor := flatEdges(10, 0, 9)
	path := Serpentine(ceiling, floor, 0)
	if len(path) == 0 {
		t.Fatal("expected a non-empty path")
	}
	if path[0].Y != 1 {
		t.Errorf("first sweep should start just inside the ceiling, got y=%d", path[0].Y)
	}
}

func TestSerpentineTooNarrowForRadius(t *testing.T) {
	ceiling, floor := flatEdges(4, 0, 9)
	if got := Serpentine(ceiling, floor, 5); got != nil {
		t.Errorf("Serpentine on a too-narrow cell = %v, want nil", got)
	}
}

func TestPlanSkipsAlreadyCleanedCells(t *testing.T) {
	g := &bcd.Graph{}
	ceiling, floor := flatEdges(10, 0, 9)
	g.Cells = []*bcd.Cell{
		{Index: 0, Ceiling: ceiling, Floor: floor},
	}
	g.Cells[0].Cleaned = true

	paths := Plan(g, []int{0}, 0)
	if len(paths) != 0 {
		t.Errorf("Plan should skip an already-cleaned cell, got %v", paths)
	}
}

func TestPlanCoversEachCellOnce(t *testing.T) {
	g := &bcd.Graph{}
	ceiling, floor := flatEdges(10, 0, 9)
	g.Cells = []*bcd.Cell{
		{Index: 0, Ceiling: ceiling, Floor: floor},
	}

	order := []int{0, 0} // a backtracking walk may revisit a cell
	paths := Plan(g, order, 0)
	if len(paths) != 1 {
		t.Fatalf("got %d planned cells, want 1", len(paths))
	}
	if !g.Cell(0).Cleaned {
		t.Errorf("Plan should mark the cell Cleaned")
	}
}
