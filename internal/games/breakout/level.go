package breakout

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// rowColors cycles over brick rows, top first.
var rowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
}

// Brick represents a single brick.
type Brick struct {
	Bounds core.RectF
	Alive  bool
	Points int
	Color  core.Color
}

// Grid is the brick wall, indexed [row][col] from the top.
type Grid [][]Brick

// NewGrid lays out a full wall of alive bricks. Top rows are worth more.
func NewGrid(field config.FieldConfig, b config.BreakoutBricks, rowPoints int) Grid {
	w := (field.Width - 2*b.Margin - float64(b.Cols-1)*b.Gap) / float64(b.Cols)

	grid := make(Grid, b.Rows)
	for row := range b.Rows {
		grid[row] = make([]Brick, b.Cols)
		y := b.Top + float64(row)*(b.Height+b.Gap)
		for col := range b.Cols {
			x := b.Margin + float64(col)*(w+b.Gap)
			grid[row][col] = Brick{
				Bounds: core.NewRectF(x, y, w, b.Height),
				Alive:  true,
				Points: (b.Rows - row) * rowPoints,
				Color:  rowColors[row%len(rowColors)],
			}
		}
	}
	return grid
}

// CountAlive returns the number of alive bricks.
func (g Grid) CountAlive() int {
	count := 0
	for _, row := range g {
		for _, brick := range row {
			if brick.Alive {
				count++
			}
		}
	}
	return count
}
