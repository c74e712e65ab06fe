package bcd

import "testing"

func TestPointLess(t *testing.T) {
	cases := []struct {
		a, b Point
		want bool
	}{
		{Point{0, 0}, Point{1, 0}, true},
		{Point{1, 0}, Point{0, 0}, false},
		{Point{2, 1}, Point{2, 5}, true},
		{Point{2, 5}, Point{2, 1}, false},
		{Point{3, 3}, Point{3, 3}, false},
	}
	for _, c := range cases {
		if got := c.a.Less(c.b); got != c.want {
			t.Errorf("%v.Less(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestCompare(t *testing.T) {
	if Compare(Point{1, 2}, Point{1, 2}) != 0 {
		t.Errorf("Compare of equal points should be 0")
	}
	if Compare(Point{1, 2}, Point{1, 3}) >= 0 {
		t.Errorf("Compare should order by y when x is equal")
	}
	if Compare(Point{2, 0}, Point{1, 9}) <= 0 {
		t.Errorf("Compare should order by x first")
	}
}
