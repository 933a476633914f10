package tetris

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// Frame is a read-only snapshot of the well.
type Frame struct {
	Board       Board // locked cells only
	Active      [4]Cell
	ActiveColor core.Color
	Next        PieceType
	NextCells   [4]Cell // rotation 0, relative to the bounding box
	Score       int
	Level       int
	Lines       int
}

// HUD returns the shared counters.
func (f Frame) HUD() sim.HUD {
	return sim.HUD{Score: f.Score, Level: f.Level, Lines: f.Lines}
}

// Render returns a snapshot with a copied board.
func (g *Game) Render() sim.Frame {
	return Frame{
		Board:       g.board.Clone(),
		Active:      g.active.Cells(),
		ActiveColor: g.active.Type.Color(),
		Next:        g.next,
		NextCells:   shapes[g.next][0],
		Score:       g.Score(),
		Level:       g.level,
		Lines:       g.lines,
	}
}
