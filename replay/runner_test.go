package replay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todd-working/truncate/engine"
)

func TestApplyLogStopsAtFirstError(t *testing.T) {
	b := engine.NewBoard(3, 1)
	b.Set(engine.Coord{X: 0, Y: 0}, engine.ArtifactSquare(0))
	b.Set(engine.Coord{X: 1, Y: 0}, engine.LandSquare())
	b.Set(engine.Coord{X: 2, Y: 0}, engine.ArtifactSquare(1))
	judge, err := engine.NewJudge(strings.NewReader(""))
	require.NoError(t, err)
	rules := engine.DefaultRules()
	rules.HandSize = 1

	// Seed 7 with a one-letter hand deals player 0 an F.
	moves, err := ReadMoveLog(strings.NewReader("0 P F 1,0\n0 P B 1,0\n"))
	require.NoError(t, err)

	g := engine.NewGame(7, b, judge, rules)
	events, err := ApplyLog(g, moves)
	assert.Error(t, err, "player 0 can't move twice in a row")
	assert.Len(t, events, 1, "the first legal move should still be applied")
}
