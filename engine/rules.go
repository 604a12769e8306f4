package engine

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Rules is the enumerated rules configuration for a game (spec §3).
// Every field is normative: two games with different Rules values are
// different games, even given the same seed, board, and move sequence.
type Rules struct {
	// HandSize is the number of letters a hand holds. Default 7.
	HandSize int `yaml:"hand_size"`

	// AttackLengthAdvantage is how much longer the strongest attacker
	// word must be than the weakest defender word when the defender is
	// itself valid. Default 1; historical games used 2 and are replayed
	// with that value (spec §9).
	AttackLengthAdvantage int `yaml:"attack_length_advantage"`

	// SwapCooldown is the number of turns a player must wait after a
	// swap before swapping again. Default 1 (no back-to-back swaps).
	SwapCooldown int `yaml:"swap_cooldown"`

	// ArtifactTouchWins makes a valid word touching an opponent's
	// artifact win the game, as if it touched a town.
	ArtifactTouchWins bool `yaml:"artifact_touch_wins"`

	// BattleDelayMS is cosmetic only; the rules engine never reads it,
	// it is carried through purely for the rendering client.
	BattleDelayMS int `yaml:"battle_delay_ms"`

	// TurnTimeMS is the per-player time budget in milliseconds. Zero
	// means unlimited (no clock).
	TurnTimeMS int64 `yaml:"turn_time_ms"`

	// RequireAllAttackerWordsValid recovers the pre-2023 rule where
	// every word the attacker's placement forms must be valid, not just
	// the strongest one. Used to replay legacy games (spec §4.6, §9).
	RequireAllAttackerWordsValid bool `yaml:"require_all_attacker_words_valid"`
}

// DefaultRules returns the current (post-2023) rule set.
func DefaultRules() Rules {
	return Rules{
		HandSize:              DefaultHandSize,
		AttackLengthAdvantage: 1,
		SwapCooldown:          1,
		ArtifactTouchWins:     false,
		BattleDelayMS:         0,
		TurnTimeMS:            0,
	}
}

// LegacyRules returns the rule set needed to faithfully replay games
// recorded before the 2023 rules change (spec §9): attacker advantage
// of 2, and every attacker word (not just the strongest) must be valid.
func LegacyRules() Rules {
	r := DefaultRules()
	r.AttackLengthAdvantage = 2
	r.RequireAllAttackerWordsValid = true
	return r
}

// LoadRulesYAML decodes a Rules value from YAML, for puzzle fixtures and
// replay files that pin the rule set alongside a seed and board layout.
func LoadRulesYAML(r io.Reader) (Rules, error) {
	var rules Rules
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&rules); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// =============================================================================
// MOVES
// =============================================================================

// MoveKind tags the Move variant.
type MoveKind uint8

const (
	MovePlace MoveKind = iota
	MoveSwap
	MoveTimeExpired
)

func (k MoveKind) String() string {
	switch k {
	case MoveSwap:
		return "Swap"
	case MoveTimeExpired:
		return "TimeExpired"
	default:
		return "Place"
	}
}

// Move is the tagged union of the things that can occur on a turn (spec
// §3). Only the fields relevant to Kind are meaningful:
//   - Place: Player, At, Letter
//   - Swap: Player, A, B
//   - TimeExpired: Player only, synthesized by Clock rather than supplied
//     by a caller
type Move struct {
	Kind   MoveKind
	Player PlayerID
	At     Coord
	Letter byte
	A, B   Coord
}

// PlaceMove constructs a Place move.
func PlaceMove(player PlayerID, at Coord, letter byte) Move {
	return Move{Kind: MovePlace, Player: player, At: at, Letter: normalizeLetter(letter)}
}

// SwapMove constructs a Swap move.
func SwapMove(player PlayerID, a, b Coord) Move {
	return Move{Kind: MoveSwap, Player: player, A: a, B: b}
}

// TimeExpiredMove constructs the synthetic move Apply returns when a
// player's clock reaches zero.
func TimeExpiredMove(player PlayerID) Move {
	return Move{Kind: MoveTimeExpired, Player: player}
}
