// Package bcdio serializes workspaces, obstacles, and plan results to and
// from JSON.
package bcdio

import (
	"encoding/json"
	"io"

	"github.com/fliesfaries/bcdsweep/pkg/bcd"
)

// Input is the on-disk description of a planning problem: the workspace
// bounds and the obstacles to decompose around.
type Input struct {
	Workspace bcd.Workspace `json:"workspace"`
	Obstacles []bcd.Polygon `json:"obstacles"`
}

// PlanResult is the output of the `plan` subcommand: the decomposed cell
// graph, its visitation order, and the per-cell coverage paths.
type PlanResult struct {
	Workspace     bcd.Workspace      `json:"workspace"`
	Cells         []CellResult       `json:"cells"`
	VisitOrder    []int              `json:"visit_order"`
	CoveragePaths map[int][]bcd.Point `json:"coverage_paths"`
}

// CellResult is the serializable projection of a bcd.Cell: its geometry
// and adjacency, without the internal Visited/Cleaned/Parent bookkeeping.
type CellResult struct {
	Index     int       `json:"index"`
	Ceiling   bcd.Edge  `json:"ceiling"`
	Floor     bcd.Edge  `json:"floor"`
	Neighbors []int     `json:"neighbors"`
}

// NewCellResults projects every cell in g into its serializable form.
func NewCellResults(g *bcd.Graph) []CellResult {
	cells := make([]CellResult, g.Len())
	for i := 0; i < g.Len(); i++ {
		c := g.Cell(i)
		cells[i] = CellResult{Index: c.Index, Ceiling: c.Ceiling, Floor: c.Floor, Neighbors: c.Neighbors}
	}
	return cells
}

// ReadInput decodes a planning problem from r.
func ReadInput(r io.Reader) (Input, error) {
	var in Input
	err := json.NewDecoder(r).Decode(&in)
	return in, err
}

// LinkInput is the on-disk description of a `link` request: grid bounds,
// the blocked cells, and the two points to bridge.
type LinkInput struct {
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	Blocked []bcd.Point `json:"blocked"`
	Start   bcd.Point   `json:"start"`
	End     bcd.Point   `json:"end"`
}

// ReadLinkInput decodes a link request from r.
func ReadLinkInput(r io.Reader) (LinkInput, error) {
	var in LinkInput
	err := json.NewDecoder(r).Decode(&in)
	return in, err
}

// WriteJSON encodes v to w as indented JSON.
func WriteJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
