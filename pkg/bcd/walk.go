package bcd

// Walk produces a depth-first visitation order over g starting at start
// (spec.md §4.4), iteratively rather than recursively (spec.md §5/§9):
// each cell's Parent field stands in for the call stack frame the
// original recursive walker used.
//
// The original's neighbor scan left a `break`-then-reread-loop-variable
// bug: on an all-visited neighbor list it tested the last neighbor rather
// than "no neighbor found". This implementation tracks an explicit found
// flag instead (spec.md §9).
//
// The returned order may repeat a cell during backtracking; its first
// occurrence for every cell is what constitutes full coverage (spec.md
// §8, invariant 5).
func Walk(g *Graph, start int) []int {
	n := g.Len()
	if n == 0 {
		return nil
	}

	unvisited := n
	var path []int
	current := start

	for {
		cell := g.Cell(current)
		if !cell.Visited {
			cell.Visited = true
			unvisited--
		}
		path = append(path, current)

		next, found := firstUnvisitedNeighbor(g, cell)
		if found {
			parent := current
			g.Cell(next).Parent = &parent
			current = next
			continue
		}

		if cell.Parent == nil {
			return path
		}
		if unvisited == 0 {
			return path
		}
		current = *cell.Parent
	}
}

func firstUnvisitedNeighbor(g *Graph, cell *Cell) (idx int, found bool) {
	for _, nb := range cell.Neighbors {
		if !g.Cell(nb).Visited {
			return nb, true
		}
	}
	return 0, false
}
