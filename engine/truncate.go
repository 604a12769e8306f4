package engine

// Truncate runs flood-fill reachability from p's artifacts through
// 4-connected squares owned by p, and removes (reverts to Land) any
// Occupied{owner=p} square not reached. It returns the removed
// coordinates in ascending (y, x) order, matching spec §4.7.
//
// Truncate runs after every battle resolution and never as a result of
// a swap — swap pre-validation already guarantees the post-swap board
// stays connected (spec §4.5, §4.7).
func Truncate(b *Board, p PlayerID) []Coord {
	reachable := reachableOwned(b, p)

	var removed []Coord
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			c := Coord{X: x, Y: y}
			sq := b.At(c)
			if sq.Kind != Occupied || sq.Owner != p {
				continue
			}
			if !reachable[c] {
				removed = append(removed, c)
			}
		}
	}

	for _, c := range removed {
		b.Set(c, LandSquare())
	}

	sortCoordsAscending(removed)
	return removed
}

// TruncateBoth runs Truncate for both players and returns the combined,
// ascending-(y,x)-ordered list of removed coordinates.
func TruncateBoth(b *Board) []Coord {
	var all []Coord
	all = append(all, Truncate(b, PlayerID(0))...)
	all = append(all, Truncate(b, PlayerID(1))...)
	sortCoordsAscending(all)
	return all
}

// reachableOwned returns the set of coordinates owned by p that are
// 4-connected-reachable from one of p's artifacts, walking only through
// Occupied{owner=p} squares.
func reachableOwned(b *Board, p PlayerID) map[Coord]bool {
	visited := make(map[Coord]bool)
	queue := append([]Coord(nil), b.ArtifactsOf(p)...)

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if visited[c] {
			continue
		}
		visited[c] = true

		for _, n := range b.Neighbors4(c) {
			if visited[n] {
				continue
			}
			sq := b.At(n)
			if sq.Kind == Occupied && sq.Owner == p {
				queue = append(queue, n)
			}
		}
	}

	return visited
}
