package engine

// DefaultHandSize is the historical default value of Rules.HandSize.
const DefaultHandSize = 7

// Hand is a player's current letters: an ordered sequence of up to
// Rules.HandSize letters. Order is preserved across turns and is
// user-visible (spec §3): when a tile is played, the newly drawn letter
// is written back into the vacated index rather than appended at the
// end, so the remaining letters never shift.
//
// Because the bag is an infinite stream (spec §4.2), a hand's length is
// constant for the life of a game once dealt: every letter removed by a
// play is immediately replaced at the same index.
type Hand struct {
	letters []byte
}

// NewHand deals a fresh hand of size letters from bag.
func NewHand(size int, bag *Bag) *Hand {
	letters := make([]byte, size)
	for i := range letters {
		letters[i] = bag.Draw()
	}
	return &Hand{letters: letters}
}

// Size returns the number of letter slots in the hand.
func (h *Hand) Size() int {
	return len(h.letters)
}

// Letters returns a copy of the hand's letters, in slot order.
func (h *Hand) Letters() []byte {
	out := make([]byte, len(h.letters))
	copy(out, h.letters)
	return out
}

// Contains reports whether letter occupies any slot in the hand.
func (h *Hand) Contains(letter byte) bool {
	return h.IndexOf(letter) >= 0
}

// IndexOf returns the slot index of the first occurrence of letter, or
// -1 if the hand holds none.
func (h *Hand) IndexOf(letter byte) int {
	letter = normalizeLetter(letter)
	for i, l := range h.letters {
		if l == letter {
			return i
		}
	}
	return -1
}

// ReplaceAt draws a fresh letter from bag into slot index, returning the
// letter that was drawn. The caller is responsible for having already
// accounted for whatever letter previously occupied that slot.
func (h *Hand) ReplaceAt(index int, bag *Bag) byte {
	drawn := bag.Draw()
	h.letters[index] = drawn
	return drawn
}

// Clone returns a deep copy of the hand.
func (h *Hand) Clone() *Hand {
	return &Hand{letters: h.Letters()}
}
