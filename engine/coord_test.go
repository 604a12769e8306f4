package engine

import "testing"

func TestCoordNeighbors4Order(t *testing.T) {
	c := Coord{X: 2, Y: 2}
	want := [4]Coord{{2, 1}, {3, 2}, {2, 3}, {1, 2}}
	got := c.Neighbors4()
	if got != want {
		t.Fatalf("Neighbors4() = %v, want %v", got, want)
	}
}

func TestCoordLessAscendingYThenX(t *testing.T) {
	cases := []struct {
		a, b Coord
		want bool
	}{
		{Coord{0, 0}, Coord{1, 0}, true},
		{Coord{1, 0}, Coord{0, 0}, false},
		{Coord{5, 0}, Coord{0, 1}, true},
		{Coord{0, 1}, Coord{5, 0}, false},
		{Coord{1, 1}, Coord{1, 1}, false},
	}
	for _, c := range cases {
		if got := c.a.Less(c.b); got != c.want {
			t.Errorf("%v.Less(%v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestSortCoordsAscending(t *testing.T) {
	coords := []Coord{{3, 1}, {0, 0}, {1, 0}, {0, 1}}
	sortCoordsAscending(coords)
	want := []Coord{{0, 0}, {1, 0}, {0, 1}, {3, 1}}
	for i := range want {
		if coords[i] != want[i] {
			t.Fatalf("sortCoordsAscending() = %v, want %v", coords, want)
		}
	}
}
