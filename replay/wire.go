// Package replay turns engine.GameState and engine.Event values into the
// wire formats external tools consume: JSON views for a rendering
// client, and the plain-text move-log format of spec §6 for archived
// games and puzzle fixtures. Nothing here opens a socket — Truncate's
// rules engine has no network layer (see SPEC_FULL.md); replay only
// produces and consumes data.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/todd-working/truncate/engine"
)

// SquareView is the JSON presentation of one board cell, grounded on the
// teacher's TileJSON (api/server.go): a small struct naming only the
// fields a client needs to draw the cell.
type SquareView struct {
	Kind     string `json:"kind"`
	Owner    *int   `json:"owner,omitempty"`
	Letter   string `json:"letter,omitempty"`
	Defeated bool   `json:"defeated,omitempty"`
}

// BoardView is the full board, row-major, for a client to render.
type BoardView struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Cells  [][]SquareView `json:"cells"`
}

func squareView(sq engine.Square) SquareView {
	v := SquareView{Kind: sq.Kind.String()}
	switch sq.Kind {
	case engine.Occupied:
		owner := int(sq.Owner)
		v.Owner = &owner
		v.Letter = string(sq.Letter)
		v.Defeated = sq.Defeated
	case engine.Artifact, engine.Town:
		owner := int(sq.Owner)
		v.Owner = &owner
		v.Defeated = sq.Defeated
	}
	return v
}

// NewBoardView builds a BoardView from a live Board.
func NewBoardView(b *engine.Board) BoardView {
	cells := make([][]SquareView, b.Height())
	for y := range cells {
		row := make([]SquareView, b.Width())
		for x := range row {
			row[x] = squareView(b.At(engine.Coord{X: x, Y: y}))
		}
		cells[y] = row
	}
	return BoardView{Width: b.Width(), Height: b.Height(), Cells: cells}
}

// GameView is the top-level JSON snapshot of a game, the replay
// analogue of the teacher's GameStateResponse.
type GameView struct {
	Board         BoardView `json:"board"`
	Hands         [2]string `json:"hands"`
	CurrentPlayer int       `json:"current_player"`
	TurnNumber    int       `json:"turn_number"`
	GameOver      bool      `json:"game_over"`
	Winner        *int      `json:"winner,omitempty"`
}

// NewGameView snapshots g as a GameView.
func NewGameView(g *engine.GameState) GameView {
	v := GameView{
		Board:         NewBoardView(g.Board),
		CurrentPlayer: int(g.Current),
		TurnNumber:    g.TurnNumber,
		GameOver:      g.Over,
	}
	for p := 0; p < 2; p++ {
		v.Hands[p] = string(g.Players[p].Hand.Letters())
	}
	if g.Winner != nil {
		w := int(*g.Winner)
		v.Winner = &w
	}
	return v
}

// WriteGameView encodes g as indented JSON to w.
func WriteGameView(w io.Writer, g *engine.GameState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewGameView(g))
}

// WordOutcomeView and BattleReportView mirror engine.WordOutcome and
// engine.BattleReport for JSON consumers.
type WordOutcomeView struct {
	Coords []string `json:"coords"`
	Text   string   `json:"text"`
	Valid  bool     `json:"valid"`
}

type BattleReportView struct {
	AttackerWords []WordOutcomeView `json:"attacker_words"`
	DefenderWords []WordOutcomeView `json:"defender_words"`
	AttackerWon   bool              `json:"attacker_won"`
	Doomed        []string          `json:"doomed"`
}

func battleReportView(r engine.BattleReport) BattleReportView {
	return BattleReportView{
		AttackerWords: wordOutcomeViews(r.AttackerWords),
		DefenderWords: wordOutcomeViews(r.DefenderWords),
		AttackerWon:   r.AttackerWon,
		Doomed:        coordStrings(r.Doomed),
	}
}

func wordOutcomeViews(words []engine.WordOutcome) []WordOutcomeView {
	out := make([]WordOutcomeView, len(words))
	for i, w := range words {
		out[i] = WordOutcomeView{Coords: coordStrings(w.Coords), Text: w.Text, Valid: w.Valid}
	}
	return out
}

func coordStrings(coords []engine.Coord) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = c.String()
	}
	return out
}

// EventView is the JSON presentation of engine.Event.
type EventView struct {
	TurnNumber   int                `json:"turn_number"`
	Player       int                `json:"player"`
	Kind         string             `json:"kind"`
	At           string             `json:"at,omitempty"`
	PlacedLetter string             `json:"placed_letter,omitempty"`
	DrawnLetter  string             `json:"drawn_letter,omitempty"`
	SwapA        string             `json:"swap_a,omitempty"`
	SwapB        string             `json:"swap_b,omitempty"`
	Battles      []BattleReportView `json:"battles,omitempty"`
	Truncations  []string           `json:"truncations,omitempty"`
	Winner       *int               `json:"winner,omitempty"`
}

// NewEventView converts an engine.Event to its JSON view.
func NewEventView(ev engine.Event) EventView {
	v := EventView{
		TurnNumber: ev.TurnNumber,
		Player:     int(ev.Player),
		Kind:       ev.Move.Kind.String(),
	}
	switch ev.Move.Kind {
	case engine.MovePlace:
		v.At = ev.Move.At.String()
		v.PlacedLetter = string(ev.PlacedLetter)
		v.DrawnLetter = string(ev.DrawnLetter)
	case engine.MoveSwap:
		v.SwapA = ev.Move.A.String()
		v.SwapB = ev.Move.B.String()
	}
	for _, b := range ev.Battles {
		v.Battles = append(v.Battles, battleReportView(b))
	}
	v.Truncations = coordStrings(ev.Truncations)
	if ev.Winner != nil {
		w := int(*ev.Winner)
		v.Winner = &w
	}
	return v
}

// =============================================================================
// TEXT MOVE LOG
// =============================================================================

// FormatMove renders move in the text move-log format of spec §6:
//
//	P <letter> <x>,<y>   Place
//	S <x1>,<y1> <x2>,<y2> Swap
func FormatMove(m engine.Move) string {
	switch m.Kind {
	case engine.MovePlace:
		return fmt.Sprintf("P %c %s", m.Letter, m.At)
	case engine.MoveSwap:
		return fmt.Sprintf("S %s %s", m.A, m.B)
	default:
		return ""
	}
}

// ParseMove parses one line of the text move-log format into a Move for
// player. Blank lines and lines starting with '#' are not valid moves;
// callers filtering a log should skip those before calling ParseMove.
func ParseMove(player engine.PlayerID, line string) (engine.Move, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return engine.Move{}, fmt.Errorf("%w: empty move line", engine.ErrMalformedMove)
	}

	switch fields[0] {
	case "P":
		if len(fields) != 3 || len(fields[1]) != 1 {
			return engine.Move{}, fmt.Errorf("%w: want \"P <letter> <x>,<y>\", got %q", engine.ErrMalformedMove, line)
		}
		at, err := parseCoord(fields[2])
		if err != nil {
			return engine.Move{}, fmt.Errorf("%w: %v", engine.ErrMalformedMove, err)
		}
		return engine.PlaceMove(player, at, fields[1][0]), nil

	case "S":
		if len(fields) != 3 {
			return engine.Move{}, fmt.Errorf("%w: want \"S <x1>,<y1> <x2>,<y2>\", got %q", engine.ErrMalformedMove, line)
		}
		a, err := parseCoord(fields[1])
		if err != nil {
			return engine.Move{}, fmt.Errorf("%w: %v", engine.ErrMalformedMove, err)
		}
		b, err := parseCoord(fields[2])
		if err != nil {
			return engine.Move{}, fmt.Errorf("%w: %v", engine.ErrMalformedMove, err)
		}
		return engine.SwapMove(player, a, b), nil

	default:
		return engine.Move{}, fmt.Errorf("%w: unknown move tag %q", engine.ErrMalformedMove, fields[0])
	}
}

func parseCoord(s string) (engine.Coord, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return engine.Coord{}, fmt.Errorf("coordinate %q is not \"x,y\"", s)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return engine.Coord{}, fmt.Errorf("coordinate %q: bad x: %w", s, err)
	}
	y, err := strconv.Atoi(parts[1])
	if err != nil {
		return engine.Coord{}, fmt.Errorf("coordinate %q: bad y: %w", s, err)
	}
	return engine.Coord{X: x, Y: y}, nil
}

// LoggedMove pairs a parsed move with the player who made it, as read
// off a move-log file where each line begins with the player digit.
type LoggedMove struct {
	Player engine.PlayerID
	Move   engine.Move
}

// ReadMoveLog reads the move-log format: each non-blank, non-comment
// line is "<player> <move>", e.g. "0 P A 3,4" or "1 S 1,1 2,2".
func ReadMoveLog(r io.Reader) ([]LoggedMove, error) {
	var out []LoggedMove
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, " ", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("move log line %d: %w", lineNo, engine.ErrMalformedMove)
		}
		playerNum, err := strconv.Atoi(fields[0])
		if err != nil || (playerNum != 0 && playerNum != 1) {
			return nil, fmt.Errorf("move log line %d: bad player digit: %w", lineNo, engine.ErrMalformedMove)
		}
		player := engine.PlayerID(playerNum)
		move, err := ParseMove(player, fields[1])
		if err != nil {
			return nil, fmt.Errorf("move log line %d: %w", lineNo, err)
		}
		out = append(out, LoggedMove{Player: player, Move: move})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteMoveLog writes moves in the format ReadMoveLog accepts.
func WriteMoveLog(w io.Writer, moves []LoggedMove) error {
	for _, m := range moves {
		if _, err := fmt.Fprintf(w, "%d %s\n", m.Player, FormatMove(m.Move)); err != nil {
			return err
		}
	}
	return nil
}
