package bcd

import (
	"cmp"
	"fmt"
	"slices"
)

// Logger is the logging hook Decompose reports sweep progress through.
// The core never reaches for a global logger (spec.md §9's "global
// mutable state → owned planner struct"); callers that want
// charmbracelet/log output wire it in via WithLogger.
type Logger func(msg string, args ...any)

// Option configures a decomposition run.
type Option func(*decomposer)

// WithLogger installs a progress logger, called once per slice processed.
func WithLogger(log Logger) Option {
	return func(d *decomposer) { d.log = log }
}

// Decompose sweeps ws left-to-right past obstacles, producing the cell
// graph (spec.md §4.3). obstacles must be convex, CCW, pairwise
// non-overlapping, and lie strictly inside ws.
func Decompose(ws Workspace, obstacles []Polygon, opts ...Option) (*Graph, error) {
	d := &decomposer{ws: ws, graph: &Graph{}}
	for _, opt := range opts {
		opt(d)
	}
	return d.run(obstacles)
}

type decomposer struct {
	ws     Workspace
	graph  *Graph
	active []int // indices into graph.Cells, top-to-bottom
	log    Logger
}

func (d *decomposer) logf(msg string, args ...any) {
	if d.log != nil {
		d.log(msg, args...)
	}
}

func (d *decomposer) run(obstacles []Polygon) (*Graph, error) {
	events, err := GenerateEvents(obstacles)
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		// Boundary behavior: zero obstacles, one cell spans the workspace.
		d.graph.addCell(fullSpanEdge(d.ws, d.ws.Width), fullSpanEdgeFloor(d.ws, d.ws.Width))
		return d.graph, nil
	}

	cols := BuildSlices(events)
	firstX := cols[0].X

	cell0 := d.graph.addCell(fullSpanEdge(d.ws, firstX), fullSpanEdgeFloor(d.ws, firstX))
	d.active = []int{cell0}

	for i, slice := range cols {
		if err := d.processSlice(slice); err != nil {
			return nil, err
		}
		d.logf("processed slice %d/%d at x=%d (%d active cells)", i+1, len(cols), slice.X, len(d.active))
	}

	if len(d.active) != 1 {
		return nil, fmt.Errorf("%w: sweep ended with %d active cells, expected 1", ErrDecomposition, len(d.active))
	}

	lastX := cols[len(cols)-1].X
	last := d.graph.Cell(d.active[0])
	for x := lastX + 1; x < d.ws.Width; x++ {
		last.Ceiling = append(last.Ceiling, Point{X: x, Y: 0})
		last.Floor = append(last.Floor, Point{X: x, Y: d.ws.Height - 1})
	}

	return d.graph, nil
}

// fullSpanEdge/fullSpanEdgeFloor build the initial/trailing boundary edges
// spanning [0, upto) along the workspace top/bottom.
func fullSpanEdge(ws Workspace, upto int) Edge {
	e := make(Edge, 0, upto)
	for x := 0; x < upto; x++ {
		e = append(e, Point{X: x, Y: 0})
	}
	return e
}

func fullSpanEdgeFloor(ws Workspace, upto int) Edge {
	e := make(Edge, 0, upto)
	for x := 0; x < upto; x++ {
		e = append(e, Point{X: x, Y: ws.Height - 1})
	}
	return e
}

// processSlice runs one sweep-line column: synthesize boundary events,
// build the original-order and IN/OUT-first orders, and apply
// OPEN/CLOSE/CEIL/FLOOR.
func (d *decomposer) processSlice(slice Slice) error {
	orig := make([]Event, 0, len(slice.Events)+2)
	orig = append(orig, Event{ObstacleID: SyntheticObstacle, Point: Point{X: slice.X, Y: 0}, Kind: EventCeiling})
	orig = append(orig, slice.Events...)
	orig = append(orig, Event{ObstacleID: SyntheticObstacle, Point: Point{X: slice.X, Y: d.ws.Height - 1}, Kind: EventFloor})
	for i := range orig {
		orig[i].SliceIndex = i
	}

	sorted := sortedSliceOrder(orig)

	for _, e := range sorted {
		idx := e.SliceIndex
		switch orig[idx].Kind {
		case EventIn:
			if err := d.applyOpen(orig, idx); err != nil {
				return err
			}
		case EventOut:
			if err := d.applyClose(orig, idx); err != nil {
				return err
			}
		case EventCeiling:
			if orig[idx].Used {
				continue
			}
			owner := d.owner(orig, idx)
			cell := d.graph.Cell(owner)
			cell.Ceiling = append(cell.Ceiling, orig[idx].Point)
		case EventFloor:
			if orig[idx].Used {
				continue
			}
			owner := d.owner(orig, idx)
			cell := d.graph.Cell(owner)
			cell.Floor = append(cell.Floor, orig[idx].Point)
		}
	}

	return nil
}

// sortedSliceOrder moves IN/OUT events to the front (sorted among
// themselves by y), keeping the remainder in original order (spec.md
// §4.3 step 2). IN/OUT are processed first because they structurally
// modify the active list that CEIL/FLOOR index into.
func sortedSliceOrder(orig []Event) []Event {
	var inOut, rest []Event
	for _, e := range orig {
		if e.Kind == EventIn || e.Kind == EventOut {
			inOut = append(inOut, e)
		} else {
			rest = append(rest, e)
		}
	}
	slices.SortFunc(inOut, func(a, b Event) int {
		return cmp.Compare(a.Point.Y, b.Point.Y)
	})
	return append(inOut, rest...)
}

// owner implements the CEILING/FLOOR counting rule (spec.md §4.3): the
// number of IN/FLOOR events seen so far in the original slice order
// equals the number of already-completed cell boundaries above the
// current event, so the owner is that index into the active list.
//
// This counts IN and FLOOR only, never OUT — correct only because every
// OUT event has already been consumed (and marked Used) by applyClose
// before CEILING/FLOOR processing reaches it, per sortedSliceOrder's
// IN/OUT-first ordering (spec.md §9).
func (d *decomposer) owner(orig []Event, curr int) int {
	k := 0
	for i := 0; i < curr; i++ {
		if orig[i].Kind == EventIn || orig[i].Kind == EventFloor {
			k++
		}
	}
	return d.active[k]
}

// applyOpen splits the active cell containing (x, y) into a top and
// bottom cell (spec.md §4.3's OPEN).
func (d *decomposer) applyOpen(orig []Event, idx int) error {
	in := orig[idx]
	c, f := orig[idx-1].Point, orig[idx+1].Point

	pos := -1
	for i, cellIdx := range d.active {
		cell := d.graph.Cell(cellIdx)
		if cell.Ceiling[len(cell.Ceiling)-1].Y < in.Point.Y && in.Point.Y < cell.Floor[len(cell.Floor)-1].Y {
			pos = i
			break
		}
	}
	if pos < 0 {
		return fmt.Errorf("%w: no active cell contains IN event at %v", ErrDecomposition, in.Point)
	}

	a := d.active[pos]
	top := d.graph.addCell(Edge{c}, Edge{in.Point})
	bottom := d.graph.addCell(Edge{in.Point}, Edge{f})
	d.graph.link(top, a)
	d.graph.link(bottom, a)

	d.active = slices.Replace(d.active, pos, pos+1, top, bottom)

	orig[idx].Used = true
	orig[idx-1].Used = true
	orig[idx+1].Used = true
	return nil
}

// applyClose merges the active pair straddling (x, y) into one cell
// (spec.md §4.3's CLOSE).
func (d *decomposer) applyClose(orig []Event, idx int) error {
	out := orig[idx]
	c, f := orig[idx-1].Point, orig[idx+1].Point

	pos := -1
	for k := 1; k < len(d.active); k++ {
		top := d.graph.Cell(d.active[k-1])
		bottom := d.graph.Cell(d.active[k])
		if top.Ceiling[len(top.Ceiling)-1].Y < out.Point.Y && out.Point.Y < bottom.Floor[len(bottom.Floor)-1].Y {
			pos = k - 1
			break
		}
	}
	if pos < 0 {
		return fmt.Errorf("%w: no adjacent active pair straddles OUT event at %v", ErrDecomposition, out.Point)
	}

	t, b := d.active[pos], d.active[pos+1]
	n := d.graph.addCell(Edge{c}, Edge{f})
	d.graph.link(n, t)
	d.graph.link(n, b)

	d.active = slices.Replace(d.active, pos, pos+2, n)

	orig[idx].Used = true
	orig[idx-1].Used = true
	orig[idx+1].Used = true
	return nil
}
