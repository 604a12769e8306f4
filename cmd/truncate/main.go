// Command truncate replays fixtures, renders boards to SVG, and runs
// AI-vs-AI simulation batches. It never opens a network port: Truncate
// is a library and CLI, not a hosted game server (spec Non-goals).
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/todd-working/truncate/engine"
	"github.com/todd-working/truncate/replay"
	"github.com/todd-working/truncate/simulator"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "replay":
		err = runReplay(os.Args[2:])
	case "svg":
		err = runSVG(os.Args[2:])
	case "simulate":
		err = runSimulate(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "truncate %s: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("truncate - word battle game engine")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  truncate replay -fixture FILE [-dict FILE]    Replay a fixture and print its events as JSON")
	fmt.Println("  truncate svg -board FILE                      Render a board layout to SVG on stdout")
	fmt.Println("  truncate simulate [options]                   Run AI vs AI simulations")
	fmt.Println()
	fmt.Println("Run 'truncate <command> -h' for command-specific help.")
}

func runReplay(args []string) error {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	fixturePath := fs.String("fixture", "", "Path to a YAML fixture (required)")
	dictPath := fs.String("dict", "", "Path to a dictionary file (default: empty dictionary)")
	fs.Parse(args)

	if *fixturePath == "" {
		return fmt.Errorf("-fixture is required")
	}

	fixtureFile, err := os.Open(*fixturePath)
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer fixtureFile.Close()

	fixture, err := replay.LoadFixture(fixtureFile)
	if err != nil {
		return err
	}

	judge, err := loadJudge(*dictPath)
	if err != nil {
		return err
	}

	game, moves, err := fixture.Build(judge)
	if err != nil {
		return err
	}

	events, applyErr := replay.ApplyLog(game, moves)
	for _, ev := range events {
		view := replay.NewEventView(ev)
		if err := writeJSONLine(os.Stdout, view); err != nil {
			return err
		}
	}
	if applyErr != nil {
		return applyErr
	}
	return replay.WriteGameView(os.Stdout, game)
}

func runSVG(args []string) error {
	fs := flag.NewFlagSet("svg", flag.ExitOnError)
	boardPath := fs.String("board", "", "Path to a board layout file (required)")
	fs.Parse(args)

	if *boardPath == "" {
		return fmt.Errorf("-board is required")
	}

	data, err := os.ReadFile(*boardPath)
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}

	board, err := engine.ParseBoard(string(data))
	if err != nil {
		return err
	}

	replay.WriteBoardSVG(os.Stdout, board)
	return nil
}

func runSimulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	numGames := fs.Int("n", 1000, "Number of games to simulate")
	player1 := fs.String("p1", "first", "Player 1 strategy: first, random, prefer-place")
	player2 := fs.String("p2", "first", "Player 2 strategy: first, random, prefer-place")
	workers := fs.Int("workers", 0, "Number of parallel workers (0 = num CPUs)")
	seed := fs.Uint64("seed", 1, "Base random seed")
	maxTurns := fs.Int("max-turns", 0, "Turn cap per game (0 = default)")
	boardPath := fs.String("board", "", "Path to a board layout file (required)")
	dictPath := fs.String("dict", "", "Path to a dictionary file (default: empty dictionary)")
	output := fs.String("o", "", "Output file for per-game JSON results (default: stdout)")
	fs.Parse(args)

	if *boardPath == "" {
		return fmt.Errorf("-board is required")
	}

	boardText, err := os.ReadFile(*boardPath)
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}

	judge, err := loadJudge(*dictPath)
	if err != nil {
		return err
	}

	config := simulator.Config{
		NumGames:  *numGames,
		Player1:   *player1,
		Player2:   *player2,
		Workers:   *workers,
		BaseSeed:  *seed,
		MaxTurns:  *maxTurns,
		BoardText: string(boardText),
		Rules:     engine.DefaultRules(),
	}

	runner, err := simulator.NewRunner(config, judge)
	if err != nil {
		return err
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	_, err = runner.Run(context.Background(), out)
	return err
}

func loadJudge(dictPath string) (*engine.Judge, error) {
	if dictPath == "" {
		return engine.NewJudge(strings.NewReader(""))
	}
	f, err := os.Open(dictPath)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	return engine.NewJudge(f)
}

func writeJSONLine(w *os.File, v any) error {
	return json.NewEncoder(w).Encode(v)
}
