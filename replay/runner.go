package replay

import (
	"fmt"

	"github.com/todd-working/truncate/engine"
)

// ApplyLog replays moves against g in order, charging zero elapsed time
// per move (move logs don't record timing; a future format revision
// could add it as a fourth field per line). It stops at the first
// rejected move and returns the events produced so far alongside the
// error, so a caller can inspect exactly how far a corrupt or illegal
// log got before failing.
func ApplyLog(g *engine.GameState, moves []LoggedMove) ([]engine.Event, error) {
	events := make([]engine.Event, 0, len(moves))
	for i, lm := range moves {
		ev, err := g.Apply(lm.Move, 0)
		if err != nil {
			return events, fmt.Errorf("move %d (%s): %w", i, FormatMove(lm.Move), err)
		}
		events = append(events, *ev)
	}
	return events, nil
}
