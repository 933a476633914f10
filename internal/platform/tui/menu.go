package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/session"
)

const banner = "R E T R O   A R C A D E"

// paintMenu draws the game picker.
func paintMenu(s *core.Screen, v session.View) {
	top := max(1, (s.Height()-len(v.Games)*2-6)/2)

	textCentered(s, top, banner, core.ColorYellow)
	textCentered(s, top+2, "Select a game", core.ColorGray)

	for i, g := range v.Games {
		line := "  " + g.Title + "  "
		color := core.ColorWhite
		if i == v.Cursor {
			line = "> " + g.Title + " <"
			color = core.ColorCyan
		}
		textCentered(s, top+4+i*2, line, color)
	}
}

// paintInstructions draws the pre-run screen for the selected game.
func paintInstructions(s *core.Screen, v session.View) {
	top := max(1, (s.Height()-len(v.Instructions)-6)/2)

	textCentered(s, top, strings.ToUpper(v.Title), core.ColorYellow)
	for i, line := range v.Instructions {
		textCentered(s, top+2+i, line, core.ColorWhite)
	}
	textCentered(s, top+3+len(v.Instructions), "ENTER to start · ESC to go back", core.ColorGray)
}

// paintPaused draws the pause box over the playfield.
func paintPaused(s *core.Screen) {
	overlay(s, []overlayLine{
		{"PAUSED", core.ColorYellow},
		{"", core.ColorDefault},
		{"P to resume", core.ColorWhite},
		{"ESC for menu", core.ColorWhite},
	})
}

// paintGameOver draws the result box over the final frame.
func paintGameOver(s *core.Screen, v session.View) {
	lines := []overlayLine{
		{"GAME OVER", core.ColorRed},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score %d", v.Score), core.ColorWhite},
		{fmt.Sprintf("Best  %d", v.Best), core.ColorWhite},
	}
	if v.NewHigh {
		lines = append(lines, overlayLine{"NEW HIGH SCORE!", core.ColorYellow})
	}
	lines = append(lines,
		overlayLine{"", core.ColorDefault},
		overlayLine{"ENTER to play again", core.ColorGray},
		overlayLine{"ESC for menu", core.ColorGray},
	)
	overlay(s, lines)
}

type overlayLine struct {
	text  string
	color core.Color
}

// overlay draws a boxed, centered block of text, blanking what is under it.
func overlay(s *core.Screen, lines []overlayLine) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l.text)))
	}
	box := core.NewRect((s.Width()-w-4)/2, (s.Height()-len(lines)-2)/2, w+4, len(lines)+2)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box)
	for i, l := range lines {
		textCentered(s, box.Y+1+i, l.text, l.color)
	}
}

// text writes a colored string starting at (x, y).
func text(s *core.Screen, x, y int, str string, c core.Color) {
	i := 0
	for _, r := range str {
		s.SetColored(x+i, y, r, c)
		i++
	}
}

// textCentered writes a colored string centered on row y.
func textCentered(s *core.Screen, y int, str string, c core.Color) {
	text(s, (s.Width()-len([]rune(str)))/2, y, str, c)
}

// centerText pads a line so it is centered in width columns.
func centerText(str string, width int) string {
	pad := (width - lipgloss.Width(str)) / 2
	if pad <= 0 {
		return str
	}
	return strings.Repeat(" ", pad) + str
}
