package core

// Color is a symbolic color tag. Simulations attach it to board cells and
// entities; the terminal painter maps it to an ANSI color.
type Color uint8

// Palette shared by the games and the painter.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)
