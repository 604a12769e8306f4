package replay

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/todd-working/truncate/engine"
)

// cellSize is the pixel size of one board square in the debug SVG
// export. Debug-only: never consumed by the (out-of-scope) rendering
// client, only by developers eyeballing a fixture or a failing test.
const cellSize = 40

var squareFill = map[engine.SquareKind]string{
	engine.Water: "#1b3a5c",
	engine.Land:  "#cdb892",
}

var ownerFill = [2]string{"#c0392b", "#2980b9"}

// WriteBoardSVG renders b as a labeled SVG grid to w, grounded on the
// teacher's pack's svgo-based board export (dshills-dungo's pkg/export):
// one canvas, one rect or circle per cell, letters drawn as text.
func WriteBoardSVG(w io.Writer, b *engine.Board) {
	width := b.Width() * cellSize
	height := b.Height() * cellSize

	canvas := svg.New(w)
	canvas.Start(width, height)
	defer canvas.End()

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			drawSquare(canvas, b.At(engine.Coord{X: x, Y: y}), x*cellSize, y*cellSize)
		}
	}
}

func drawSquare(canvas *svg.SVG, sq engine.Square, px, py int) {
	switch sq.Kind {
	case engine.Water, engine.Land:
		canvas.Rect(px, py, cellSize, cellSize, "fill:"+squareFill[sq.Kind]+";stroke:#000;stroke-width:1")

	case engine.Occupied:
		fill := ownerFill[sq.Owner]
		if sq.Defeated {
			fill = "#555555"
		}
		canvas.Rect(px, py, cellSize, cellSize, "fill:"+fill+";stroke:#000;stroke-width:1")
		canvas.Text(px+cellSize/2, py+cellSize/2+5, string(sq.Letter),
			"text-anchor:middle;font-size:20px;fill:#fff;font-family:monospace")

	case engine.Artifact:
		canvas.Rect(px, py, cellSize, cellSize, "fill:"+ownerFill[sq.Owner]+";stroke:#000;stroke-width:1")
		canvas.Circle(px+cellSize/2, py+cellSize/2, cellSize/3, "fill:#ffd700;stroke:#000;stroke-width:2")

	case engine.Town:
		fill := ownerFill[sq.Owner]
		if sq.Defeated {
			fill = "#555555"
		}
		canvas.Rect(px, py, cellSize, cellSize, "fill:"+fill+";stroke:#000;stroke-width:1")
		canvas.Rect(px+cellSize/4, py+cellSize/4, cellSize/2, cellSize/2, "fill:none;stroke:#fff;stroke-width:2")
	}
}
