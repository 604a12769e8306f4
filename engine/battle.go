package engine

import "strings"

// WordOutcome is a word involved in a battle, with the judge's verdict
// already resolved, as reported in a BattleReport (spec §3).
type WordOutcome struct {
	Coords []Coord
	Text   string
	Valid  bool
}

// BattleReport is the canonical, reproducible record of a single combat
// (spec §3, §4.6). Doomed is sorted in ascending (y, x) order.
type BattleReport struct {
	AttackerWords []WordOutcome
	DefenderWords []WordOutcome
	AttackerWon   bool
	Doomed        []Coord
}

// TriggersBattle reports whether placing at `at` is 4-adjacent to at
// least one square owned by someone other than placer — the only
// condition under which ResolveBattle does anything (spec §4.6).
func TriggersBattle(b *Board, placer PlayerID, at Coord) bool {
	for _, n := range b.Neighbors4(at) {
		sq := b.At(n)
		if sq.Kind == Occupied && sq.Owner != placer {
			return true
		}
	}
	return false
}

// ResolveBattle computes and applies the battle triggered by placing
// placer's tile at `at` (the board must already have that tile placed).
// It returns the BattleReport and removes doomed tiles from the board.
// If no battle is triggered, it returns a zero-value report and
// triggered=false; the caller should not run truncation in that case,
// though running it anyway is harmless (spec says truncation runs after
// every battle resolution, and a no-op truncation changes nothing).
func ResolveBattle(b *Board, rules Rules, judge *Judge, placer PlayerID, at Coord) (report BattleReport, triggered bool) {
	opponent := placer.OtherPlayer()

	var defenderAdjacent []Coord
	for _, n := range b.Neighbors4(at) {
		sq := b.At(n)
		if sq.Kind == Occupied && sq.Owner == opponent {
			defenderAdjacent = append(defenderAdjacent, n)
		}
	}
	if len(defenderAdjacent) == 0 {
		return BattleReport{}, false
	}

	defenderWords := uniqueWordsThrough(b, defenderAdjacent)

	var attackerCandidates []Coord
	seen := make(map[Coord]bool)
	for _, d := range defenderAdjacent {
		for _, n := range b.Neighbors4(d) {
			sq := b.At(n)
			if sq.Kind == Occupied && sq.Owner == placer && !seen[n] {
				seen[n] = true
				attackerCandidates = append(attackerCandidates, n)
			}
		}
	}
	attackerWords := uniqueWordsThrough(b, attackerCandidates)

	aStar := pickStrongestAttacker(attackerWords, judge, at)
	dStar := pickWeakestDefender(defenderWords, judge)

	aStarValid := judge.Lookup(aStar.Text).IsValid()
	dStarValid := judge.Lookup(dStar.Text).IsValid()

	allAttackersValid := true
	if rules.RequireAllAttackerWordsValid {
		for _, w := range attackerWords {
			if !judge.Lookup(w.Text).IsValid() {
				allAttackersValid = false
				break
			}
		}
	}

	succeeds := aStarValid && allAttackersValid &&
		(!dStarValid || aStar.Len() >= dStar.Len()+rules.AttackLengthAdvantage)

	report = BattleReport{
		AttackerWords: toOutcomes(attackerWords, judge),
		DefenderWords: toOutcomes(defenderWords, judge),
		AttackerWon:   succeeds,
	}

	var doomed []Coord
	if succeeds {
		for _, d := range defenderWords {
			dValid := judge.Lookup(d.Text).IsValid()
			loses := !dValid || aStar.Len() >= d.Len()+rules.AttackLengthAdvantage
			if loses {
				doomed = append(doomed, d.Coords...)
			}
		}
		// Collateral contact: every defender tile 4-adjacent to `at` is
		// always destroyed, even if its word otherwise survives.
		doomed = append(doomed, defenderAdjacent...)
	} else {
		doomed = append(doomed, at)
	}

	doomed = dedupeCoords(doomed)
	sortCoordsAscending(doomed)
	report.Doomed = doomed

	for _, c := range doomed {
		b.Set(c, LandSquare())
	}

	return report, true
}

// uniqueWordsThrough returns the set of distinct maximal words passing
// through any of coords, deduplicated by owner and coordinate span. A
// direction only contributes a word when it actually links letters
// together (length > 1); a tile with no neighbor in one axis does not
// count as "forming a word" in that axis. A fully isolated tile (both
// axes length 1) still contributes itself, so the set is never empty
// for an occupied square.
func uniqueWordsThrough(b *Board, coords []Coord) []Word {
	seen := make(map[string]bool)
	var words []Word
	for _, c := range coords {
		h, v, ok := WordsAt(b, c)
		if !ok {
			continue
		}
		candidates := []Word{h, v}
		if h.Len() == 1 && v.Len() == 1 {
			candidates = []Word{h}
		}
		for _, w := range candidates {
			if w.Len() == 1 && len(candidates) == 2 {
				continue
			}
			key := wordKey(w)
			if seen[key] {
				continue
			}
			seen[key] = true
			words = append(words, w)
		}
	}
	return words
}

func wordKey(w Word) string {
	var sb strings.Builder
	sb.WriteByte(byte('0' + w.Owner))
	sb.WriteByte('|')
	for i, c := range w.Coords {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// pickStrongestAttacker selects A*: the longest attacker word, tying
// first to a valid word if one of the tied-longest is valid, then to
// the word containing the just-placed coordinate, then lexicographically
// by coordinates (spec §4.6, §9 open question (b)).
func pickStrongestAttacker(words []Word, judge *Judge, at Coord) Word {
	if len(words) == 0 {
		return Word{}
	}

	maxLen := 0
	for _, w := range words {
		if w.Len() > maxLen {
			maxLen = w.Len()
		}
	}
	var tied []Word
	for _, w := range words {
		if w.Len() == maxLen {
			tied = append(tied, w)
		}
	}

	var validTied []Word
	for _, w := range tied {
		if judge.Lookup(w.Text).IsValid() {
			validTied = append(validTied, w)
		}
	}
	if len(validTied) > 0 {
		tied = validTied
	}

	best := tied[0]
	for _, w := range tied[1:] {
		if wordTieBreaksBefore(w, best, at) {
			best = w
		}
	}
	return best
}

func wordTieBreaksBefore(a, b Word, at Coord) bool {
	aHas, bHas := a.Contains(at), b.Contains(at)
	if aHas != bHas {
		return aHas
	}
	return coordsLess(a.Coords, b.Coords)
}

// pickWeakestDefender selects D*: the shortest defender word, preferring
// a valid one among ties (spec §4.6).
func pickWeakestDefender(words []Word, judge *Judge) Word {
	if len(words) == 0 {
		return Word{}
	}

	minLen := words[0].Len()
	for _, w := range words {
		if w.Len() < minLen {
			minLen = w.Len()
		}
	}
	var tied []Word
	for _, w := range words {
		if w.Len() == minLen {
			tied = append(tied, w)
		}
	}

	var validTied []Word
	for _, w := range tied {
		if judge.Lookup(w.Text).IsValid() {
			validTied = append(validTied, w)
		}
	}
	if len(validTied) > 0 {
		tied = validTied
	}

	best := tied[0]
	for _, w := range tied[1:] {
		if coordsLess(w.Coords, best.Coords) {
			best = w
		}
	}
	return best
}

func coordsLess(a, b []Coord) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i].Less(b[i])
		}
	}
	return len(a) < len(b)
}

func toOutcomes(words []Word, judge *Judge) []WordOutcome {
	out := make([]WordOutcome, len(words))
	for i, w := range words {
		out[i] = WordOutcome{
			Coords: w.Coords,
			Text:   w.Text,
			Valid:  judge.Lookup(w.Text).IsValid(),
		}
	}
	return out
}

func dedupeCoords(coords []Coord) []Coord {
	seen := make(map[Coord]bool, len(coords))
	out := coords[:0:0]
	for _, c := range coords {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
