package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/session"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// Paint draws the session view into the screen buffer.
func Paint(s *core.Screen, v session.View) {
	s.Clear()
	switch v.State {
	case session.StateMenu:
		paintMenu(s, v)
	case session.StateInstructions:
		paintInstructions(s, v)
	case session.StatePlaying:
		paintPlayfield(s, v)
	case session.StatePaused:
		paintPlayfield(s, v)
		paintPaused(s)
	case session.StateGameOver:
		paintPlayfield(s, v)
		paintGameOver(s, v)
	}
}

func paintPlayfield(s *core.Screen, v session.View) {
	if v.Frame == nil {
		return
	}
	paintHUD(s, v.Title, v.Frame.HUD())
	if p, ok := framePainters[v.GameID]; ok {
		p(s, v.Frame)
		return
	}
	textCentered(s, s.Height()/2, "no renderer for "+v.GameID, core.ColorGray)
}

// framePainters draws a game's frame below the HUD row. Painters ignore
// frames of the wrong type.
var framePainters = map[string]func(*core.Screen, sim.Frame){}

// paintHUD draws the title and the non-zero counters on row 0.
func paintHUD(s *core.Screen, title string, h sim.HUD) {
	text(s, 1, 0, strings.ToUpper(title), core.ColorYellow)

	parts := []string{fmt.Sprintf("Score %d", h.Score)}
	if h.Level > 0 {
		parts = append(parts, fmt.Sprintf("Level %d", h.Level))
	}
	if h.Lines > 0 {
		parts = append(parts, fmt.Sprintf("Lines %d", h.Lines))
	}
	if h.Wave > 0 {
		parts = append(parts, fmt.Sprintf("Wave %d", h.Wave))
	}
	if h.Lives > 0 {
		parts = append(parts, "Lives "+strings.Repeat("♥", h.Lives))
	}
	stats := strings.Join(parts, "   ")
	text(s, s.Width()-len([]rune(stats))-1, 0, stats, core.ColorWhite)
}

// viewport maps simulation units onto screen cells inside a field box.
type viewport struct {
	area   core.Rect
	sx, sy float64
}

// placeField draws a box around an innerW×innerH area below the HUD,
// shrinking it to fit the screen, and returns the viewport for a field of
// fw×fh simulation units.
func placeField(s *core.Screen, innerW, innerH int, fw, fh float64) viewport {
	innerW = max(1, min(innerW, s.Width()-2))
	innerH = max(1, min(innerH, s.Height()-3))
	x := (s.Width() - innerW - 2) / 2
	y := 1 + (s.Height()-1-innerH-2)/2
	s.DrawBox(core.NewRect(x, y, innerW+2, innerH+2))

	return viewport{
		area: core.NewRect(x+1, y+1, innerW, innerH),
		sx:   float64(innerW) / fw,
		sy:   float64(innerH) / fh,
	}
}

// gridField places a field for a cols×rows cell grid, two columns per
// cell when the screen is wide enough.
func gridField(s *core.Screen, cols, rows int) viewport {
	cw := 1
	if cols*2 <= s.Width()-2 {
		cw = 2
	}
	return placeField(s, cols*cw, rows, float64(cols), float64(rows))
}

// aspectField places a continuous field using the full screen width.
// Terminal cells are about twice as tall as wide, so rows are halved.
func aspectField(s *core.Screen, fw, fh float64) viewport {
	w := s.Width() - 2
	h := int(math.Round(float64(w) * fh / fw / 2))
	if h > s.Height()-3 {
		h = s.Height() - 3
		w = int(math.Round(float64(h) * 2 * fw / fh))
	}
	return placeField(s, w, h, fw, fh)
}

// fill covers every cell the rectangle touches, at least one.
func (v viewport) fill(s *core.Screen, r core.RectF, ch rune, c core.Color) {
	x0 := int(math.Floor(r.X * v.sx))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	for y := max(y0, 0); y < min(y1, v.area.H); y++ {
		for x := max(x0, 0); x < min(x1, v.area.W); x++ {
			s.SetColored(v.area.X+x, v.area.Y+y, ch, c)
		}
	}
}

// point draws a single glyph at the cell containing (x, y).
func (v viewport) point(s *core.Screen, x, y float64, ch rune, c core.Color) {
	cx := int(x * v.sx)
	cy := int(y * v.sy)
	if cx < 0 || cx >= v.area.W || cy < 0 || cy >= v.area.H {
		return
	}
	s.SetColored(v.area.X+cx, v.area.Y+cy, ch, c)
}

// cell fills grid cell (x, y) of a unit-scaled grid viewport.
func (v viewport) cell(s *core.Screen, x, y int, ch rune, c core.Color) {
	v.fill(s, core.NewRectF(float64(x), float64(y), 1, 1), ch, c)
}
