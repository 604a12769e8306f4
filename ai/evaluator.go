package ai

import (
	"math/rand"

	"github.com/todd-working/truncate/engine"
)

// Evaluator chooses one move from a list of legal candidates. It is the
// generalization of the teacher's Solver interface; the name changes to
// make clear this is not a search-based player — no Evaluator here looks
// more than one move ahead, and none score board position, only pick
// among GenerateLegalMoves' output.
type Evaluator interface {
	// SelectMove chooses a move from moves, or returns nil if moves is
	// empty (the caller should then try a Swap-only generation or
	// concede the turn, per the simulator's policy).
	SelectMove(g *engine.GameState, player engine.PlayerID, moves []engine.Move) *engine.Move

	// Name identifies the evaluator in simulator reports.
	Name() string
}

// FirstEvaluator deterministically picks the first candidate move,
// favoring Place over Swap since GenerateLegalMoves lists placements
// first. It exists as a stable, reproducible baseline for tests and
// replay fixtures — the Truncate analogue of the teacher's GreedySolver,
// minus the scoring GreedySolver had available and this domain doesn't.
type FirstEvaluator struct{}

func (FirstEvaluator) Name() string { return "first" }

func (FirstEvaluator) SelectMove(g *engine.GameState, player engine.PlayerID, moves []engine.Move) *engine.Move {
	if len(moves) == 0 {
		return nil
	}
	return &moves[0]
}

// RandomEvaluator picks uniformly among the candidate moves. Ported from
// the teacher's RandomSolver: same seeded math/rand source, same
// reproducibility guarantee given a fixed seed and call sequence.
type RandomEvaluator struct {
	rng *rand.Rand
}

// NewRandomEvaluator builds a RandomEvaluator seeded for reproducible
// simulation runs.
func NewRandomEvaluator(seed int64) *RandomEvaluator {
	return &RandomEvaluator{rng: rand.New(rand.NewSource(seed))}
}

func (e *RandomEvaluator) Name() string { return "random" }

func (e *RandomEvaluator) SelectMove(g *engine.GameState, player engine.PlayerID, moves []engine.Move) *engine.Move {
	if len(moves) == 0 {
		return nil
	}
	idx := e.rng.Intn(len(moves))
	return &moves[idx]
}

// PreferPlaceEvaluator picks uniformly among Place moves when any exist,
// falling back to a uniform Swap pick otherwise. It exists to keep
// simulated games from swapping indefinitely when a legal placement is
// always available, which a pure RandomEvaluator would do roughly half
// the time on boards with many empty swap-eligible pairs.
type PreferPlaceEvaluator struct {
	rng *rand.Rand
}

func NewPreferPlaceEvaluator(seed int64) *PreferPlaceEvaluator {
	return &PreferPlaceEvaluator{rng: rand.New(rand.NewSource(seed))}
}

func (e *PreferPlaceEvaluator) Name() string { return "prefer-place" }

func (e *PreferPlaceEvaluator) SelectMove(g *engine.GameState, player engine.PlayerID, moves []engine.Move) *engine.Move {
	var placements []engine.Move
	for _, m := range moves {
		if m.Kind == engine.MovePlace {
			placements = append(placements, m)
		}
	}
	if len(placements) > 0 {
		return &placements[e.rng.Intn(len(placements))]
	}
	if len(moves) == 0 {
		return nil
	}
	return &moves[e.rng.Intn(len(moves))]
}

// EvaluatorByName returns a named Evaluator, for configuration-driven
// selection from the simulator CLI. Unknown names fall back to "first".
func EvaluatorByName(name string, seed int64) Evaluator {
	switch name {
	case "random":
		return NewRandomEvaluator(seed)
	case "prefer-place":
		return NewPreferPlaceEvaluator(seed)
	case "first":
		fallthrough
	default:
		return FirstEvaluator{}
	}
}
