package linker

import (
	"errors"
	"testing"

	"github.com/fliesfaries/bcdsweep/pkg/bcd"
)

func TestFindLinkingPathStraightLine(t *testing.T) {
	grid := NewOccupancyGrid(10, 10)
	cm := NewCostMap(grid)

	start := bcd.Point{X: 0, Y: 0}
	end := bcd.Point{X: 3, Y: 0}
	cm.Build(start)

	path, err := cm.FindLinkingPath(end)
	if err != nil {
		t.Fatalf("FindLinkingPath: %v", err)
	}
	if path[0] != start || path[len(path)-1] != end {
		t.Fatalf("path = %v, want to start at %v and end at %v", path, start, end)
	}
	// A straight run of 3 steps gives 4 points, start and end included.
	if len(path) != 4 {
		t.Errorf("got %d points, want 4 (3 BFS steps)", len(path))
	}
}

func TestFindLinkingPathUnreachableBehindWall(t *testing.T) {
	grid := NewOccupancyGrid(5, 5)
	for y := 0; y < 5; y++ {
		grid.Block(bcd.Point{X: 2, Y: y})
	}
	cm := NewCostMap(grid)
	cm.Build(bcd.Point{X: 0, Y: 0})

	if _, err := cm.FindLinkingPath(bcd.Point{X: 4, Y: 4}); !errors.Is(err, ErrUnreachable) {
		t.Errorf("expected ErrUnreachable, got %v", err)
	}
}

func TestFindLinkingPathSameStartEnd(t *testing.T) {
	grid := NewOccupancyGrid(5, 5)
	cm := NewCostMap(grid)
	start := bcd.Point{X: 2, Y: 2}
	cm.Build(start)

	path, err := cm.FindLinkingPath(start)
	if err != nil {
		t.Fatalf("FindLinkingPath: %v", err)
	}
	if len(path) != 1 || path[0] != start {
		t.Errorf("path for start==end = %v, want [%v]", path, start)
	}
}

func TestCostMapResetBetweenBuilds(t *testing.T) {
	grid := NewOccupancyGrid(5, 5)
	cm := NewCostMap(grid)

	cm.Build(bcd.Point{X: 0, Y: 0})
	if _, err := cm.FindLinkingPath(bcd.Point{X: 4, Y: 4}); err != nil {
		t.Fatalf("first build should reach the far corner: %v", err)
	}

	cm.Build(bcd.Point{X: 4, Y: 4})
	if _, err := cm.FindLinkingPath(bcd.Point{X: 0, Y: 0}); err != nil {
		t.Fatalf("second build should reach the opposite corner: %v", err)
	}
}

func TestOccupancyGridOutOfBoundsIsNotOpen(t *testing.T) {
	grid := NewOccupancyGrid(5, 5)
	if grid.Open(bcd.Point{X: -1, Y: 0}) {
		t.Errorf("negative coordinate should not be open")
	}
	if grid.Open(bcd.Point{X: 5, Y: 0}) {
		t.Errorf("out-of-bounds coordinate should not be open")
	}
}
