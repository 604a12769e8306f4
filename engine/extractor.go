package engine

// Word is a maximal straight run of Occupied squares belonging to the
// same player, as produced by the word extractor (spec §4.4). Coords
// are always in reading order — ascending X for a horizontal word,
// ascending Y for a vertical one — regardless of which player owns the
// tiles or which direction they were placed in; orientation is a
// presentation concern, not a rules one.
type Word struct {
	Coords []Coord
	Text   string
	Owner  PlayerID
}

// Len is the number of letters in the word.
func (w Word) Len() int {
	return len(w.Coords)
}

// Contains reports whether c is one of the word's coordinates.
func (w Word) Contains(c Coord) bool {
	for _, wc := range w.Coords {
		if wc == c {
			return true
		}
	}
	return false
}

// WordsAt returns the maximal horizontal and vertical words passing
// through c. ok is false if c is not an Occupied square.
func WordsAt(b *Board, c Coord) (horizontal, vertical Word, ok bool) {
	sq := b.At(c)
	if sq.Kind != Occupied {
		return Word{}, Word{}, false
	}
	return horizontalWordAt(b, c), verticalWordAt(b, c), true
}

func horizontalWordAt(b *Board, c Coord) Word {
	owner := b.At(c).Owner

	minX := c.X
	for minX-1 >= 0 && isOwnedOccupied(b, Coord{X: minX - 1, Y: c.Y}, owner) {
		minX--
	}
	maxX := c.X
	for maxX+1 < b.Width() && isOwnedOccupied(b, Coord{X: maxX + 1, Y: c.Y}, owner) {
		maxX++
	}

	coords := make([]Coord, 0, maxX-minX+1)
	letters := make([]byte, 0, maxX-minX+1)
	for x := minX; x <= maxX; x++ {
		cc := Coord{X: x, Y: c.Y}
		coords = append(coords, cc)
		letters = append(letters, b.At(cc).Letter)
	}

	return Word{Coords: coords, Text: string(letters), Owner: owner}
}

func verticalWordAt(b *Board, c Coord) Word {
	owner := b.At(c).Owner

	minY := c.Y
	for minY-1 >= 0 && isOwnedOccupied(b, Coord{X: c.X, Y: minY - 1}, owner) {
		minY--
	}
	maxY := c.Y
	for maxY+1 < b.Height() && isOwnedOccupied(b, Coord{X: c.X, Y: maxY + 1}, owner) {
		maxY++
	}

	coords := make([]Coord, 0, maxY-minY+1)
	letters := make([]byte, 0, maxY-minY+1)
	for y := minY; y <= maxY; y++ {
		cc := Coord{X: c.X, Y: y}
		coords = append(coords, cc)
		letters = append(letters, b.At(cc).Letter)
	}

	return Word{Coords: coords, Text: string(letters), Owner: owner}
}

func isOwnedOccupied(b *Board, c Coord, owner PlayerID) bool {
	if !b.InBounds(c) {
		return false
	}
	sq := b.At(c)
	return sq.Kind == Occupied && sq.Owner == owner
}
