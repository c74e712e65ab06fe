// Package linker finds short paths between two points of a coverage plan
// across otherwise-unreachable terrain (e.g. linking one cell's
// serpentine exit to the next cell's entry) using 8-connected breadth-
// first search over an occupancy grid.
package linker

import (
	"errors"
	"fmt"

	"github.com/fliesfaries/bcdsweep/pkg/bcd"
)

// ErrUnreachable is returned by FindLinkingPath when end was never
// reached by the last Build call.
var ErrUnreachable = errors.New("linker: end point unreachable from cost map start")

// Grid is the occupancy map BFS expands over. Open(p) reports whether p
// is free space the planner may route through; it is queried, never
// mutated, by this package.
type Grid interface {
	Open(p bcd.Point) bool
}

// node tracks one grid cell's BFS state: how it was reached and whether
// it has been queued already.
type node struct {
	cost     int
	prev     bcd.Point
	hasPrev  bool
	computed bool
}

// CostMap is a reusable BFS frontier scratchpad over a Grid, grounded on
// the original sweep's single global cost map reset between queries
// (original_source/main.cpp::BuildCostMap/ResetCostMap), rewritten here
// as an owned value instead of global state.
type CostMap struct {
	grid  Grid
	nodes map[bcd.Point]*node
	start bcd.Point
}

// NewCostMap creates an empty cost map over grid.
func NewCostMap(grid Grid) *CostMap {
	return &CostMap{grid: grid, nodes: make(map[bcd.Point]*node)}
}

// Build runs a BFS flood fill from start, recording for every reachable
// open cell its distance (in grid steps) and predecessor.
func (cm *CostMap) Build(start bcd.Point) {
	cm.Reset()
	cm.start = start

	queue := []bcd.Point{start}
	cm.nodes[start] = &node{computed: true}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, nb := range neighbors(curr) {
			if !cm.grid.Open(nb) {
				continue
			}
			if n, ok := cm.nodes[nb]; ok && n.computed {
				continue
			}
			cm.nodes[nb] = &node{
				cost:     cm.nodes[curr].cost + 1,
				prev:     curr,
				hasPrev:  true,
				computed: true,
			}
			queue = append(queue, nb)
		}
	}
}

// Reset discards all computed state so the map can be rebuilt from a
// new start.
func (cm *CostMap) Reset() {
	cm.nodes = make(map[bcd.Point]*node)
}

// FindLinkingPath walks the predecessor chain from end back to the most
// recent Build's start, returning the path start→end inclusive.
//
// The original's traceback loop compared coordinates with `&&` instead of
// comparing the whole point, so it could stop one step early whenever
// only one axis happened to match the start's — this version compares
// points directly (spec.md §9).
func (cm *CostMap) FindLinkingPath(end bcd.Point) ([]bcd.Point, error) {
	n, ok := cm.nodes[end]
	if !ok || !n.computed {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, end)
	}

	path := []bcd.Point{end}
	curr := end
	for curr != cm.start {
		n := cm.nodes[curr]
		if !n.hasPrev {
			return nil, fmt.Errorf("%w: %v", ErrUnreachable, end)
		}
		curr = n.prev
		path = append(path, curr)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// neighbors returns the 8-connected neighborhood of p
// (original_source/main.cpp::GetNeighbors).
func neighbors(p bcd.Point) []bcd.Point {
	return []bcd.Point{
		{X: p.X - 1, Y: p.Y - 1}, {X: p.X, Y: p.Y - 1}, {X: p.X + 1, Y: p.Y - 1},
		{X: p.X - 1, Y: p.Y}, {X: p.X + 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y + 1}, {X: p.X, Y: p.Y + 1}, {X: p.X + 1, Y: p.Y + 1},
	}
}

// OccupancyGrid is a dense Grid backed by a bool matrix: it starts all
// open and is filled point by point through Block (spec.md §4.6: the
// linker consumes a pre-built occupancy grid, not raw polygons).
type OccupancyGrid struct {
	Width, Height int
	blocked       [][]bool
}

// NewOccupancyGrid returns an all-open grid of the given size.
func NewOccupancyGrid(width, height int) *OccupancyGrid {
	blocked := make([][]bool, height)
	for y := range blocked {
		blocked[y] = make([]bool, width)
	}
	return &OccupancyGrid{Width: width, Height: height, blocked: blocked}
}

// Block marks p as occupied.
func (g *OccupancyGrid) Block(p bcd.Point) {
	if g.inBounds(p) {
		g.blocked[p.Y][p.X] = true
	}
}

// Open reports whether p is in bounds and not blocked.
func (g *OccupancyGrid) Open(p bcd.Point) bool {
	return g.inBounds(p) && !g.blocked[p.Y][p.X]
}

func (g *OccupancyGrid) inBounds(p bcd.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}
