package tetris

import "github.com/vovakirdan/retro-arcade/internal/core"

// Board is the well, indexed [row][col]. ColorDefault marks an empty cell.
type Board [][]core.Color

// NewBoard creates an empty board.
func NewBoard(cols, rows int) Board {
	b := make(Board, rows)
	for y := range b {
		b[y] = make([]core.Color, cols)
	}
	return b
}

// Cols returns the board width.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Rows returns the board height.
func (b Board) Rows() int { return len(b) }

// Filled reports whether a cell inside the board is occupied.
func (b Board) Filled(x, y int) bool {
	return b[y][x] != core.ColorDefault
}

// Fits reports whether the piece lies inside the board on empty cells.
func (b Board) Fits(p Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.Cols() || c.Y < 0 || c.Y >= b.Rows() {
			return false
		}
		if b.Filled(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Place writes the piece's cells into the board.
func (b Board) Place(p Piece) {
	color := p.Type.Color()
	for _, c := range p.Cells() {
		b[c.Y][c.X] = color
	}
}

// ClearLines removes full rows, scanning bottom to top, and returns how
// many were removed. After a removal the same index is checked again since
// the rows above have shifted down into it.
func (b Board) ClearLines() int {
	cleared := 0
	for y := b.Rows() - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		row := b[y]
		copy(b[1:y+1], b[:y])
		for x := range row {
			row[x] = core.ColorDefault
		}
		b[0] = row
		cleared++
	}
	return cleared
}

func (b Board) rowFull(y int) bool {
	for x := range b[y] {
		if !b.Filled(x, y) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for y, row := range b {
		c[y] = append([]core.Color(nil), row...)
	}
	return c
}
