package bcdio

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fliesfaries/bcdsweep/pkg/bcd"
)

func TestReadInputRoundTrip(t *testing.T) {
	raw := `{
		"workspace": {"Width": 10, "Height": 10},
		"obstacles": [[{"X":5,"Y":7},{"X":7,"Y":5},{"X":5,"Y":3},{"X":3,"Y":5}]]
	}`

	in, err := ReadInput(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ReadInput: %v", err)
	}
	if in.Workspace != (bcd.Workspace{Width: 10, Height: 10}) {
		t.Errorf("workspace = %+v, want {10 10}", in.Workspace)
	}
	if len(in.Obstacles) != 1 || len(in.Obstacles[0]) != 4 {
		t.Fatalf("got %d obstacles, want 1 with 4 vertices", len(in.Obstacles))
	}
}

func TestWriteJSONThenReadBack(t *testing.T) {
	result := PlanResult{
		Workspace:     bcd.Workspace{Width: 10, Height: 10},
		Cells:         []CellResult{{Index: 0, Ceiling: bcd.Edge{{0, 0}}, Floor: bcd.Edge{{0, 9}}}},
		VisitOrder:    []int{0},
		CoveragePaths: map[int][]bcd.Point{0: {{X: 1, Y: 1}}},
	}

	var buf bytes.Buffer
	if err := WriteJSON(result, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("WriteJSON produced no output")
	}

	var decoded PlanResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding written JSON: %v", err)
	}
	if decoded.Workspace != result.Workspace {
		t.Errorf("round-tripped workspace = %+v, want %+v", decoded.Workspace, result.Workspace)
	}
	if len(decoded.Cells) != 1 || decoded.Cells[0].Index != 0 {
		t.Errorf("round-tripped cells = %+v", decoded.Cells)
	}
}
