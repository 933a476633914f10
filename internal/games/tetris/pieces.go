package tetris

import "github.com/vovakirdan/retro-arcade/internal/core"

// PieceType identifies one of the seven tetrominoes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL
	pieceCount
)

// Cell is a board coordinate; Y grows downward.
type Cell struct {
	X, Y int
}

// spawnShapes are the rotation-0 layouts inside each piece's bounding box.
var spawnShapes = [pieceCount]struct {
	box   int
	rows  []string
	color core.Color
}{
	PieceI: {4, []string{"....", "####", "....", "...."}, core.ColorCyan},
	PieceO: {2, []string{"##", "##"}, core.ColorYellow},
	PieceT: {3, []string{".#.", "###", "..."}, core.ColorMagenta},
	PieceS: {3, []string{".##", "##.", "..."}, core.ColorGreen},
	PieceZ: {3, []string{"##.", ".##", "..."}, core.ColorRed},
	PieceJ: {3, []string{"#..", "###", "..."}, core.ColorBlue},
	PieceL: {3, []string{"..#", "###", "..."}, core.ColorOrange},
}

// shapes holds the four clockwise rotation states of every piece.
var shapes [pieceCount][4][4]Cell

func init() {
	for t, spec := range spawnShapes {
		var cells [4]Cell
		n := 0
		for y, row := range spec.rows {
			for x, ch := range row {
				if ch == '#' {
					cells[n] = Cell{X: x, Y: y}
					n++
				}
			}
		}
		for rot := range 4 {
			shapes[t][rot] = cells
			for i, c := range cells {
				cells[i] = Cell{X: spec.box - 1 - c.Y, Y: c.X}
			}
		}
	}
}

// Color returns the piece's color tag.
func (t PieceType) Color() core.Color {
	return spawnShapes[t].color
}

func (t PieceType) String() string {
	return [...]string{"I", "O", "T", "S", "Z", "J", "L"}[t]
}

// Piece is the falling tetromino.
type Piece struct {
	Type     PieceType
	Rotation int
	X, Y     int // top-left of the bounding box
}

// Cells returns the board cells the piece covers.
func (p Piece) Cells() [4]Cell {
	cells := shapes[p.Type][p.Rotation]
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// Rotated returns the piece turned clockwise once.
func (p Piece) Rotated() Piece {
	p.Rotation = (p.Rotation + 1) % 4
	return p
}

// Moved returns the piece shifted by dx, dy.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
