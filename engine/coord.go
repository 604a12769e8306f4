package engine

import "fmt"

// Coord is a board coordinate. (0,0) is top-left; X increases east, Y
// increases south.
type Coord struct {
	X int
	Y int
}

// String renders the coordinate as "x,y", matching the wire formats in
// the move log and JSON views.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Neighbors4 returns the four orthogonally adjacent coordinates, in a
// fixed N, E, S, W order. Diagonals never interact in Truncate.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		{c.X, c.Y - 1}, // north
		{c.X + 1, c.Y}, // east
		{c.X, c.Y + 1}, // south
		{c.X - 1, c.Y}, // west
	}
}

// Less orders coordinates ascending by (y, x), the deterministic order
// the spec requires for reported truncation lists.
func (c Coord) Less(other Coord) bool {
	if c.Y != other.Y {
		return c.Y < other.Y
	}
	return c.X < other.X
}

// sortCoordsAscending sorts coordinates in place by ascending (y, x).
func sortCoordsAscending(coords []Coord) {
	// Insertion sort: truncation/doomed lists are small (board-sized at
	// most, typically a handful of tiles), so O(n^2) is not a concern
	// and keeps this dependency-free and deterministic.
	for i := 1; i < len(coords); i++ {
		j := i
		for j > 0 && coords[j].Less(coords[j-1]) {
			coords[j], coords[j-1] = coords[j-1], coords[j]
			j--
		}
	}
}
