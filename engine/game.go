package engine

// Player is one side's mutable state across a game (spec §3). Artifact
// and town coordinates live on the Board itself (Board.ArtifactsOf /
// TownsOf); Player holds only what belongs to the player independent of
// the board.
type Player struct {
	Hand         *Hand
	LastSwapTurn int // turn_number of the player's most recent swap, -1 if none
	Resigned     bool
}

// Event is the canonical, reproducible record of one turn (spec §3).
// Two games replayed from the same seed, board, rules and move sequence
// produce byte-identical Event streams.
type Event struct {
	TurnNumber    int
	Player        PlayerID
	Move          Move
	PlacedLetter  byte // meaningful only for MovePlace
	DrawnLetter   byte // meaningful only for MovePlace
	Battles       []BattleReport
	Truncations   []Coord
	Winner        *PlayerID
}

// GameState is the complete, self-contained state of a Truncate game: the
// board, the bag, the judge, the rule set, the clock, both players' hands,
// and turn bookkeeping. Nothing outside GameState and its Apply calls
// influences how the game evolves — no package-level state, no wall
// clock reads (spec §5).
type GameState struct {
	Board   *Board
	Bag     *Bag
	Judge   *Judge
	Rules   Rules
	Clock   *Clock
	Players [2]*Player

	TurnNumber int
	Current    PlayerID
	Over       bool
	Winner     *PlayerID

	Events []Event
}

// NewGame builds a fresh game: a bag seeded with seed, two freshly dealt
// hands, and player 0 to move first.
func NewGame(seed uint64, board *Board, judge *Judge, rules Rules) *GameState {
	bag := NewBag(seed)
	players := [2]*Player{
		{Hand: NewHand(rules.HandSize, bag), LastSwapTurn: -1},
		{Hand: NewHand(rules.HandSize, bag), LastSwapTurn: -1},
	}
	return &GameState{
		Board:   board,
		Bag:     bag,
		Judge:   judge,
		Rules:   rules,
		Clock:   NewClock(rules),
		Players: players,
		Current: PlayerID(0),
	}
}

// Apply validates and applies move, charging elapsedMS against the
// mover's clock first. It either returns the resulting Event with a nil
// error, or leaves the game state completely unchanged and returns a
// non-nil error — Apply never leaves partial mutation visible after a
// rejected move (spec §4.8, §7).
func (g *GameState) Apply(move Move, elapsedMS int64) (*Event, error) {
	if g.Over {
		return nil, ErrGameOver
	}
	if move.Player != g.Current {
		return nil, ErrNotYourTurn
	}

	clockBefore := *g.Clock
	g.Clock.Charge(g.Current, elapsedMS)
	if g.Clock.Expired(g.Current) {
		return g.finishWithTimeExpiry(g.Current), nil
	}

	var ev *Event
	var err error
	switch move.Kind {
	case MovePlace:
		ev, err = g.applyPlace(move)
	case MoveSwap:
		ev, err = g.applySwap(move)
	default:
		err = ErrMalformedMove
	}
	if err != nil {
		*g.Clock = clockBefore
		return nil, err
	}
	return ev, nil
}

func (g *GameState) finishWithTimeExpiry(loser PlayerID) *Event {
	winner := loser.OtherPlayer()
	g.Over = true
	g.Winner = &winner
	ev := Event{
		TurnNumber: g.TurnNumber,
		Player:     loser,
		Move:       TimeExpiredMove(loser),
		Winner:     &winner,
	}
	g.Events = append(g.Events, ev)
	return &ev
}

func (g *GameState) applyPlace(move Move) (*Event, error) {
	player := g.Players[move.Player]

	if !player.Hand.Contains(move.Letter) {
		return nil, ErrNoSuchLetter
	}
	if err := validatePlaceSquare(g.Board, move.Player, move.At); err != nil {
		return nil, err
	}

	idx := player.Hand.IndexOf(move.Letter)
	g.Board.Set(move.At, OccupiedSquare(move.Player, move.Letter))
	drawn := player.Hand.ReplaceAt(idx, g.Bag)

	var battles []BattleReport
	if TriggersBattle(g.Board, move.Player, move.At) {
		report, triggered := ResolveBattle(g.Board, g.Rules, g.Judge, move.Player, move.At)
		if triggered {
			battles = append(battles, report)
		}
	}

	truncations := TruncateBoth(g.Board)

	var winner *PlayerID
	if checkWin(g.Board, g.Rules, g.Judge, move.Player, move.At) {
		w := move.Player
		winner = &w
		g.Over = true
		g.Winner = &w
	}

	ev := Event{
		TurnNumber:   g.TurnNumber,
		Player:       move.Player,
		Move:         move,
		PlacedLetter: move.Letter,
		DrawnLetter:  drawn,
		Battles:      battles,
		Truncations:  truncations,
		Winner:       winner,
	}
	g.Events = append(g.Events, ev)
	g.advanceTurn()
	return &ev, nil
}

func (g *GameState) applySwap(move Move) (*Event, error) {
	player := g.Players[move.Player]

	if err := validateSwap(g.Board, g.Rules, player, g.TurnNumber, move.Player, move.A, move.B); err != nil {
		return nil, err
	}

	sqA := g.Board.At(move.A)
	sqB := g.Board.At(move.B)
	g.Board.Set(move.A, OccupiedSquare(move.Player, sqB.Letter))
	g.Board.Set(move.B, OccupiedSquare(move.Player, sqA.Letter))
	player.LastSwapTurn = g.TurnNumber

	ev := Event{
		TurnNumber: g.TurnNumber,
		Player:     move.Player,
		Move:       move,
	}
	g.Events = append(g.Events, ev)
	g.advanceTurn()
	return &ev, nil
}

func (g *GameState) advanceTurn() {
	if g.Over {
		return
	}
	g.TurnNumber++
	g.Current = g.Current.OtherPlayer()
}

// validatePlaceSquare checks that at is a legal destination for player to
// place a tile: it must not already be occupied or otherwise claimed,
// and it must be 4-adjacent to one of player's artifacts or already-owned
// occupied squares (spec §4.5).
func validatePlaceSquare(b *Board, player PlayerID, at Coord) error {
	if !b.InBounds(at) {
		return ErrInvalidSquare
	}
	sq := b.At(at)
	if sq.Kind != Land {
		return ErrInvalidSquare
	}

	for _, n := range b.Neighbors4(at) {
		nsq := b.At(n)
		switch nsq.Kind {
		case Artifact, Occupied:
			if nsq.Owner == player {
				return nil
			}
		}
	}
	return ErrUnreachable
}

// validateSwap checks that a and b are distinct squares player owns,
// that player's swap cooldown has elapsed, and that exchanging their
// letters would not disconnect any owned tile from player's artifacts.
func validateSwap(b *Board, rules Rules, player *Player, turnNumber int, playerID PlayerID, a, c Coord) error {
	if player.LastSwapTurn >= 0 && turnNumber-player.LastSwapTurn < rules.SwapCooldown {
		return ErrSwapOnCooldown
	}

	if !b.InBounds(a) || !b.InBounds(c) {
		return ErrInvalidSquare
	}
	sqA, sqC := b.At(a), b.At(c)
	if sqA.Kind != Occupied || sqA.Owner != playerID {
		return ErrInvalidSquare
	}
	if sqC.Kind != Occupied || sqC.Owner != playerID {
		return ErrInvalidSquare
	}

	if a == c {
		return ErrSameSquare
	}

	clone := b.Clone()
	clone.Set(a, OccupiedSquare(playerID, sqC.Letter))
	clone.Set(c, OccupiedSquare(playerID, sqA.Letter))
	reachable := reachableOwned(clone, playerID)
	for y := 0; y < clone.Height(); y++ {
		for x := 0; x < clone.Width(); x++ {
			cc := Coord{X: x, Y: y}
			sq := clone.At(cc)
			if sq.Kind == Occupied && sq.Owner == playerID && !reachable[cc] {
				return ErrDisconnectsGroup
			}
		}
	}

	return nil
}

// checkWin reports whether the word(s) through at, after battle
// resolution and truncation, are valid and touch an opponent town (or,
// under Rules.ArtifactTouchWins, an opponent artifact) — the win
// condition of spec §4.8. It returns false if at's tile did not survive
// combat.
func checkWin(b *Board, rules Rules, judge *Judge, player PlayerID, at Coord) bool {
	h, v, ok := WordsAt(b, at)
	if !ok {
		return false
	}

	for _, w := range []Word{h, v} {
		if !judge.Lookup(w.Text).IsValid() {
			continue
		}
		for _, c := range w.Coords {
			for _, n := range b.Neighbors4(c) {
				sq := b.At(n)
				if sq.Owner == player {
					continue
				}
				if sq.Kind == Town {
					return true
				}
				if rules.ArtifactTouchWins && sq.Kind == Artifact {
					return true
				}
			}
		}
	}
	return false
}
