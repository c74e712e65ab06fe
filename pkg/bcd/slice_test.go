package bcd

import "testing"

func TestBuildSlices(t *testing.T) {
	events, err := GenerateEvents([]Polygon{diamond()})
	if err != nil {
		t.Fatalf("GenerateEvents: %v", err)
	}
	cols := BuildSlices(events)
	if len(cols) != 3 {
		t.Fatalf("got %d slices, want 3", len(cols))
	}
	wantX := []int{3, 5, 7}
	wantN := []int{1, 2, 1}
	for i, col := range cols {
		if col.X != wantX[i] {
			t.Errorf("slice %d X = %d, want %d", i, col.X, wantX[i])
		}
		if len(col.Events) != wantN[i] {
			t.Errorf("slice %d has %d events, want %d", i, len(col.Events), wantN[i])
		}
	}
}

func TestBuildSlicesEmpty(t *testing.T) {
	if got := BuildSlices(nil); got != nil {
		t.Errorf("BuildSlices(nil) = %v, want nil", got)
	}
}
