package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJudge(t *testing.T, dict string) *Judge {
	t.Helper()
	j, err := NewJudge(strings.NewReader(dict))
	require.NoError(t, err)
	return j
}

func battleBoard() *Board {
	b := NewBoard(8, 1)
	b.Set(Coord{0, 0}, ArtifactSquare(0))
	b.Set(Coord{7, 0}, ArtifactSquare(1))
	b.Set(Coord{1, 0}, OccupiedSquare(0, 'C'))
	b.Set(Coord{2, 0}, OccupiedSquare(0, 'A'))
	b.Set(Coord{4, 0}, OccupiedSquare(1, 'B'))
	b.Set(Coord{5, 0}, OccupiedSquare(1, 'A'))
	b.Set(Coord{6, 0}, OccupiedSquare(1, 'T'))
	return b
}

func TestResolveBattleAttackerWinsOnInvalidDefender(t *testing.T) {
	b := battleBoard()
	b.Set(Coord{3, 0}, OccupiedSquare(0, 'T'))
	judge := newTestJudge(t, "cat 5 0.01\n")

	require.True(t, TriggersBattle(b, 0, Coord{3, 0}))
	report, triggered := ResolveBattle(b, DefaultRules(), judge, 0, Coord{3, 0})
	require.True(t, triggered)

	assert.True(t, report.AttackerWon)
	assert.Equal(t, []Coord{{4, 0}, {5, 0}, {6, 0}}, report.Doomed)
	assert.Equal(t, Land, b.At(Coord{4, 0}).Kind)
	assert.Equal(t, Occupied, b.At(Coord{1, 0}).Kind)
}

func TestResolveBattleAttackerLosesWhenDefenderValidAndNotShorter(t *testing.T) {
	b := battleBoard()
	b.Set(Coord{3, 0}, OccupiedSquare(0, 'T'))
	judge := newTestJudge(t, "cat 5 0.01\nbat 5 0.01\n")

	report, triggered := ResolveBattle(b, DefaultRules(), judge, 0, Coord{3, 0})
	require.True(t, triggered)

	assert.False(t, report.AttackerWon)
	assert.Equal(t, []Coord{{3, 0}}, report.Doomed)
	assert.Equal(t, Land, b.At(Coord{3, 0}).Kind)
	assert.Equal(t, Occupied, b.At(Coord{4, 0}).Kind, "defender survives a failed attack")
}

func TestResolveBattleAttackerWinsOnLengthAdvantage(t *testing.T) {
	b := NewBoard(9, 1)
	b.Set(Coord{0, 0}, ArtifactSquare(0))
	b.Set(Coord{8, 0}, ArtifactSquare(1))
	b.Set(Coord{1, 0}, OccupiedSquare(0, 'C'))
	b.Set(Coord{2, 0}, OccupiedSquare(0, 'A'))
	b.Set(Coord{3, 0}, OccupiedSquare(0, 'R'))
	b.Set(Coord{5, 0}, OccupiedSquare(1, 'A'))
	b.Set(Coord{6, 0}, OccupiedSquare(1, 'T'))
	judge := newTestJudge(t, "cart 5 0.01\nat 5 0.01\n")

	// "CART" only becomes the attacker word once the new tile is placed.
	b.Set(Coord{4, 0}, OccupiedSquare(0, 'T'))
	report, triggered := ResolveBattle(b, DefaultRules(), judge, 0, Coord{4, 0})
	require.True(t, triggered)

	assert.True(t, report.AttackerWon)
}

func TestTriggersBattleFalseWithNoAdjacentOpponent(t *testing.T) {
	b := NewBoard(3, 1)
	b.Set(Coord{0, 0}, ArtifactSquare(0))
	b.Set(Coord{1, 0}, OccupiedSquare(0, 'A'))
	assert.False(t, TriggersBattle(b, 0, Coord{1, 0}))
}
