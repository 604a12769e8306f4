package engine

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"
)

// TestPropertyBagIsDeterministic is the cross-platform-reproducibility
// invariant from spec §8: for any seed and any number of draws, two bags
// built from that seed produce the identical letter sequence.
func TestPropertyBagIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		n := rapid.IntRange(0, 200).Draw(t, "draws")

		a := NewBag(seed)
		b := NewBag(seed)
		for i := 0; i < n; i++ {
			da, db := a.Draw(), b.Draw()
			if da != db {
				t.Fatalf("draw %d diverged: %q vs %q", i, da, db)
			}
		}
	})
}

// TestPropertyBagAlwaysInAlphabet checks every draw, for any seed, is an
// uppercase ASCII letter.
func TestPropertyBagAlwaysInAlphabet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		n := rapid.IntRange(1, 300).Draw(t, "draws")

		bag := NewBag(seed)
		for i := 0; i < n; i++ {
			l := bag.Draw()
			if l < 'A' || l > 'Z' {
				t.Fatalf("draw %d produced out-of-alphabet byte %q", i, l)
			}
		}
	})
}

// TestPropertyTruncateNeverRemovesReachableTiles is the truncation
// invariant from spec §8: any occupied square 4-connected-reachable from
// its owner's artifact survives a Truncate call, for arbitrary placement
// patterns on a small board.
func TestPropertyTruncateNeverRemovesReachableTiles(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		const w, h = 6, 6
		b := NewBoard(w, h)
		b.Set(Coord{0, 0}, ArtifactSquare(0))

		n := rapid.IntRange(0, 15).Draw(t, "tiles")
		placed := []Coord{{0, 0}}
		for i := 0; i < n; i++ {
			from := placed[rapid.IntRange(0, len(placed)-1).Draw(t, "from")]
			neighbors := b.Neighbors4(from)
			next := neighbors[rapid.IntRange(0, len(neighbors)-1).Draw(t, "dir")]
			if b.At(next).Kind == Water {
				b.Set(next, OccupiedSquare(0, 'A'))
				placed = append(placed, next)
			}
		}

		reachableBefore := reachableOwned(b, 0)
		Truncate(b, 0)
		for c := range reachableBefore {
			if b.At(c).Kind == Artifact {
				continue // the artifact coordinate itself
			}
			if b.At(c).Kind != Occupied && b.At(c).Kind != Artifact {
				t.Fatalf("reachable square %v was removed by Truncate", c)
			}
		}
	})
}

// TestPropertyApplyIsDeterministicAcrossReplays is spec §8's full-game
// determinism property: replaying the identical move sequence against
// two GameStates built from the same seed, board, and dictionary must
// produce byte-for-byte identical event logs, regardless of whether a
// given move succeeds or fails validation.
func TestPropertyApplyIsDeterministicAcrossReplays(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		n := rapid.IntRange(0, 25).Draw(t, "moves")

		newBoard := func() *Board {
			b := NewBoard(5, 5)
			for y := 0; y < 5; y++ {
				for x := 0; x < 5; x++ {
					b.Set(Coord{x, y}, LandSquare())
				}
			}
			b.Set(Coord{0, 0}, ArtifactSquare(0))
			b.Set(Coord{4, 4}, ArtifactSquare(1))
			return b
		}
		judge, err := NewJudge(strings.NewReader("CAT 10 5\nCATS 12 3\n"))
		if err != nil {
			t.Fatalf("build judge: %v", err)
		}
		rules := DefaultRules()
		rules.HandSize = 3

		g1 := NewGame(seed, newBoard(), judge, rules)
		g2 := NewGame(seed, newBoard(), judge, rules)

		var events1, events2 []Event
		for i := 0; i < n; i++ {
			player := PlayerID(rapid.IntRange(0, 1).Draw(t, "player"))
			x := rapid.IntRange(0, 4).Draw(t, "x")
			y := rapid.IntRange(0, 4).Draw(t, "y")
			letter := byte('A' + rapid.IntRange(0, 25).Draw(t, "letter"))
			move := PlaceMove(player, Coord{X: x, Y: y}, letter)

			ev1, err1 := g1.Apply(move, 0)
			ev2, err2 := g2.Apply(move, 0)

			if (err1 == nil) != (err2 == nil) {
				t.Fatalf("move %d: divergent errors %v vs %v", i, err1, err2)
			}
			if err1 != nil {
				continue
			}
			events1 = append(events1, *ev1)
			events2 = append(events2, *ev2)
		}

		if diff := cmp.Diff(events1, events2); diff != "" {
			t.Fatalf("replayed event logs diverged (-g1 +g2):\n%s", diff)
		}
		if diff := cmp.Diff(g1.Board.Debug(), g2.Board.Debug()); diff != "" {
			t.Fatalf("final board states diverged (-g1 +g2):\n%s", diff)
		}
	})
}

// TestPropertySortCoordsAscendingIsSorted checks the ascending-(y,x)
// ordering invariant the spec requires of truncation/doomed lists.
func TestPropertySortCoordsAscendingIsSorted(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 30).Draw(t, "n")
		coords := make([]Coord, n)
		for i := range coords {
			coords[i] = Coord{
				X: rapid.IntRange(0, 10).Draw(t, "x"),
				Y: rapid.IntRange(0, 10).Draw(t, "y"),
			}
		}

		sortCoordsAscending(coords)
		for i := 1; i < len(coords); i++ {
			if coords[i].Less(coords[i-1]) {
				t.Fatalf("not sorted at index %d: %v before %v", i, coords[i-1], coords[i])
			}
		}
	})
}
