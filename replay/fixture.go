package replay

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/todd-working/truncate/engine"
)

// Fixture is a complete, reproducible puzzle or regression scenario: a
// seed, a board layout, a rule set, and a recorded move log, all in one
// YAML document. Loading a Fixture and replaying its Moves through
// ApplyLog must produce the same Events every time, on every platform
// (spec §5, §8).
type Fixture struct {
	Seed  uint64       `yaml:"seed"`
	Board string       `yaml:"board"`
	Rules engine.Rules `yaml:"rules"`
	Moves string       `yaml:"moves"`
}

// LoadFixture decodes a Fixture from YAML.
func LoadFixture(r io.Reader) (Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}
	return f, nil
}

// Build parses f's board and move log and constructs the starting
// GameState plus the parsed move list, ready for ApplyLog.
func (f Fixture) Build(judge *engine.Judge) (*engine.GameState, []LoggedMove, error) {
	board, err := engine.ParseBoard(f.Board)
	if err != nil {
		return nil, nil, fmt.Errorf("fixture board: %w", err)
	}

	rules := f.Rules
	if rules.HandSize == 0 {
		rules = engine.DefaultRules()
	}

	game := engine.NewGame(f.Seed, board, judge, rules)

	moves, err := ReadMoveLog(strings.NewReader(f.Moves))
	if err != nil {
		return nil, nil, fmt.Errorf("fixture moves: %w", err)
	}

	return game, moves, nil
}
