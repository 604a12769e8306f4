package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/todd-working/truncate/engine"
)

func sampleMoves() []engine.Move {
	return []engine.Move{
		engine.PlaceMove(0, engine.Coord{X: 1, Y: 0}, 'A'),
		engine.PlaceMove(0, engine.Coord{X: 1, Y: 0}, 'B'),
		engine.SwapMove(0, engine.Coord{X: 2, Y: 0}, engine.Coord{X: 3, Y: 0}),
	}
}

func TestFirstEvaluatorPicksFirst(t *testing.T) {
	moves := sampleMoves()
	got := (FirstEvaluator{}).SelectMove(nil, 0, moves)
	assert.Equal(t, &moves[0], got)
}

func TestFirstEvaluatorEmptyMoves(t *testing.T) {
	got := (FirstEvaluator{}).SelectMove(nil, 0, nil)
	assert.Nil(t, got)
}

func TestRandomEvaluatorIsDeterministicForSeed(t *testing.T) {
	moves := sampleMoves()
	a := NewRandomEvaluator(7).SelectMove(nil, 0, moves)
	b := NewRandomEvaluator(7).SelectMove(nil, 0, moves)
	assert.Equal(t, a, b)
}

func TestPreferPlaceEvaluatorPrefersPlacements(t *testing.T) {
	moves := sampleMoves()
	e := NewPreferPlaceEvaluator(3)
	for i := 0; i < 20; i++ {
		got := e.SelectMove(nil, 0, moves)
		assert.Equal(t, engine.MovePlace, got.Kind)
	}
}

func TestPreferPlaceEvaluatorFallsBackToSwap(t *testing.T) {
	moves := []engine.Move{engine.SwapMove(0, engine.Coord{X: 0, Y: 0}, engine.Coord{X: 1, Y: 0})}
	e := NewPreferPlaceEvaluator(1)
	got := e.SelectMove(nil, 0, moves)
	assert.Equal(t, engine.MoveSwap, got.Kind)
}

func TestEvaluatorByNameDefaultsToFirst(t *testing.T) {
	e := EvaluatorByName("nonsense", 0)
	assert.Equal(t, "first", e.Name())
}
