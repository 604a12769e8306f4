// Package ai provides a legal-move enumerator and a handful of
// intentionally simple Evaluators for driving the engine without a
// human player — reference opponents for the simulator and for
// exercising the rules engine in tests, not a real search-based AI.
package ai

import (
	"github.com/todd-working/truncate/engine"
)

// GenerateLegalMoves enumerates candidate moves for player: one Place
// per (letter in hand, empty square reachable from player's territory)
// pair, plus one Swap per pair of differently-lettered player-owned
// squares, provided player's swap cooldown has elapsed. Every Place
// candidate is guaranteed legal; a Swap candidate can still be rejected
// by game.Apply under the disconnection invariant, which this generator
// does not pre-check (it would require a flood fill per candidate pair).
// It does no look-ahead and scores nothing — unlike the teacher's
// movegen, which enumerates and scores full multi-tile lines, Truncate's
// Place move is always exactly one letter at one square, so there is no
// line-building left to do.
func GenerateLegalMoves(g *engine.GameState, player engine.PlayerID) []engine.Move {
	var moves []engine.Move
	moves = append(moves, generatePlacements(g, player)...)
	moves = append(moves, generateSwaps(g, player)...)
	return moves
}

func generatePlacements(g *engine.GameState, player engine.PlayerID) []engine.Move {
	board := g.Board
	hand := g.Players[player].Hand

	seenLetters := make(map[byte]bool)
	var letters []byte
	for _, l := range hand.Letters() {
		if !seenLetters[l] {
			seenLetters[l] = true
			letters = append(letters, l)
		}
	}

	var squares []engine.Coord
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			c := engine.Coord{X: x, Y: y}
			if isPlaceable(board, player, c) {
				squares = append(squares, c)
			}
		}
	}

	var moves []engine.Move
	for _, c := range squares {
		for _, l := range letters {
			moves = append(moves, engine.PlaceMove(player, c, l))
		}
	}
	return moves
}

func isPlaceable(b *engine.Board, player engine.PlayerID, c engine.Coord) bool {
	sq := b.At(c)
	if sq.Kind != engine.Land {
		return false
	}
	for _, n := range b.Neighbors4(c) {
		nsq := b.At(n)
		if (nsq.Kind == engine.Artifact || nsq.Kind == engine.Occupied) && nsq.Owner == player {
			return true
		}
	}
	return false
}

func generateSwaps(g *engine.GameState, player engine.PlayerID) []engine.Move {
	board := g.Board
	p := g.Players[player]
	if p.LastSwapTurn >= 0 && g.TurnNumber-p.LastSwapTurn < g.Rules.SwapCooldown {
		return nil
	}

	var owned []engine.Coord
	for y := 0; y < board.Height(); y++ {
		for x := 0; x < board.Width(); x++ {
			c := engine.Coord{X: x, Y: y}
			sq := board.At(c)
			if sq.Kind == engine.Occupied && sq.Owner == player {
				owned = append(owned, c)
			}
		}
	}

	var moves []engine.Move
	for i := 0; i < len(owned); i++ {
		for j := i + 1; j < len(owned); j++ {
			if board.At(owned[i]).Letter == board.At(owned[j]).Letter {
				continue // swapping identical letters is a legal no-op move, not worth enumerating
			}
			moves = append(moves, engine.SwapMove(player, owned[i], owned[j]))
		}
	}
	return moves
}
