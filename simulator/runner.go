// Package simulator plays batches of AI-vs-AI games for regression
// testing and rule-balance evaluation. Grounded on the teacher's
// simulator/runner.go, with one deliberate change: concurrency is
// structured through golang.org/x/sync/errgroup instead of a raw
// sync.WaitGroup plus sync/atomic counters, so a panicking worker or a
// context cancellation actually stops the batch instead of leaking
// goroutines.
package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/todd-working/truncate/ai"
	"github.com/todd-working/truncate/engine"
)

// GameResult is the outcome of one simulated game.
type GameResult struct {
	ID         string    `json:"id"`
	Seed       uint64    `json:"seed"`
	Players    [2]string `json:"players"`
	Winner     int       `json:"winner"` // 0, 1, or -1 for no winner within MaxTurns
	TotalTurns int       `json:"total_turns"`
	DurationMS float64   `json:"duration_ms"`
}

// Config configures a simulation batch.
type Config struct {
	NumGames  int
	Player1   string // an ai.EvaluatorByName name
	Player2   string
	Workers   int // 0 = runtime.NumCPU()
	BaseSeed  uint64
	MaxTurns  int // 0 = DefaultMaxTurns
	BoardText string
	Rules     engine.Rules
}

// DefaultMaxTurns bounds a simulated game so a rule configuration that
// can't reach a win condition doesn't simulate forever.
const DefaultMaxTurns = 500

// Stats summarizes a completed batch.
type Stats struct {
	GamesPlayed int
	Player1Wins int
	Player2Wins int
	NoWinner    int
	TotalTurns  int
}

// Runner executes batches of simulated games sharing one Judge and one
// parsed board layout.
type Runner struct {
	config Config
	judge  *engine.Judge
	board  *engine.Board
}

// NewRunner parses config.BoardText once and builds a Runner ready to
// play config.NumGames games against judge.
func NewRunner(config Config, judge *engine.Judge) (*Runner, error) {
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.MaxTurns <= 0 {
		config.MaxTurns = DefaultMaxTurns
	}
	board, err := engine.ParseBoard(config.BoardText)
	if err != nil {
		return nil, fmt.Errorf("simulator board: %w", err)
	}
	return &Runner{config: config, judge: judge, board: board}, nil
}

// Run plays config.NumGames games across config.Workers goroutines,
// streaming one JSON GameResult per line to output as each game
// finishes, and returns the aggregate Stats. It stops early and returns
// the first error if ctx is canceled or a game panics during play.
func (r *Runner) Run(ctx context.Context, output io.Writer) (Stats, error) {
	start := time.Now()

	results := make(chan GameResult, r.config.Workers)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)

	writerDone := make(chan struct{})
	var stats Stats
	go func() {
		defer close(writerDone)
		enc := json.NewEncoder(output)
		for res := range results {
			stats.GamesPlayed++
			stats.TotalTurns += res.TotalTurns
			switch res.Winner {
			case 0:
				stats.Player1Wins++
			case 1:
				stats.Player2Wins++
			default:
				stats.NoWinner++
			}
			if err := enc.Encode(res); err != nil {
				log.Printf("simulator: failed to encode result %s: %v", res.ID, err)
			}
		}
	}()

	for i := 0; i < r.config.NumGames; i++ {
		seed := r.config.BaseSeed + uint64(i)
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("game seed %d panicked: %v", seed, p)
				}
			}()
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results <- r.playGame(seed)
			return nil
		})
	}

	err := g.Wait()
	close(results)
	<-writerDone

	log.Printf("simulator: %d games in %v (%s %d wins, %s %d wins, %d no-winner)",
		stats.GamesPlayed, time.Since(start).Round(time.Millisecond),
		r.config.Player1, stats.Player1Wins, r.config.Player2, stats.Player2Wins, stats.NoWinner)

	return stats, err
}

func (r *Runner) playGame(seed uint64) GameResult {
	start := time.Now()

	board := r.board.Clone()
	game := engine.NewGame(seed, board, r.judge, r.config.Rules)

	evaluators := [2]ai.Evaluator{
		ai.EvaluatorByName(r.config.Player1, int64(seed)),
		ai.EvaluatorByName(r.config.Player2, int64(seed)+1),
	}

	turns := 0
	for !game.Over && turns < r.config.MaxTurns {
		turns++
		player := game.Current
		moves := ai.GenerateLegalMoves(game, player)
		move := evaluators[player].SelectMove(game, player, moves)
		if move == nil {
			// Genuinely no legal move and no eligible swap: the player
			// forfeits the rest of the game to its opponent.
			winner := player.OtherPlayer()
			game.Over = true
			game.Winner = &winner
			break
		}
		if _, err := game.Apply(*move, 0); err != nil {
			// A generated move that Apply rejects (e.g. a swap that
			// would disconnect a group, which GenerateLegalMoves does
			// not pre-check) uses up one iteration of the MaxTurns
			// budget and the same player selects again, rather than
			// crashing the batch.
			continue
		}
	}

	winner := -1
	if game.Winner != nil {
		winner = int(*game.Winner)
	}

	return GameResult{
		ID:         fmt.Sprintf("game-%d", seed),
		Seed:       seed,
		Players:    [2]string{r.config.Player1, r.config.Player2},
		Winner:     winner,
		TotalTurns: turns,
		DurationMS: float64(time.Since(start).Nanoseconds()) / 1e6,
	}
}
