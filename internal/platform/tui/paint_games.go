package tui

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/breakout"
	"github.com/vovakirdan/retro-arcade/internal/games/invaders"
	"github.com/vovakirdan/retro-arcade/internal/games/snake"
	"github.com/vovakirdan/retro-arcade/internal/games/tetris"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

func init() {
	framePainters[snake.ID] = paintSnake
	framePainters[breakout.ID] = paintBreakout
	framePainters[tetris.ID] = paintTetris
	framePainters[invaders.ID] = paintInvaders
}

func paintSnake(s *core.Screen, frame sim.Frame) {
	f, ok := frame.(snake.Frame)
	if !ok {
		return
	}
	v := gridField(s, f.Width, f.Height)

	if f.HasFood {
		v.cell(s, f.Food.X, f.Food.Y, '●', core.ColorRed)
	}
	for i := len(f.Body) - 1; i >= 0; i-- {
		c := core.ColorGreen
		if i == 0 {
			c = core.ColorYellow
		}
		v.cell(s, f.Body[i].X, f.Body[i].Y, '█', c)
	}
}

func paintBreakout(s *core.Screen, frame sim.Frame) {
	f, ok := frame.(breakout.Frame)
	if !ok {
		return
	}
	v := aspectField(s, f.Width, f.Height)

	for _, b := range f.Bricks {
		v.fill(s, b.Bounds, '█', b.Color)
	}
	v.fill(s, f.Paddle, '▀', core.ColorWhite)
	v.point(s, f.Ball.X, f.Ball.Y, '●', core.ColorWhite)
}

func paintTetris(s *core.Screen, frame sim.Frame) {
	f, ok := frame.(tetris.Frame)
	if !ok {
		return
	}
	v := gridField(s, f.Board.Cols(), f.Board.Rows())

	for y := range f.Board.Rows() {
		for x := range f.Board.Cols() {
			if c := f.Board[y][x]; c != core.ColorDefault {
				v.cell(s, x, y, '█', c)
			} else {
				v.cell(s, x, y, '·', core.ColorGray)
			}
		}
	}
	for _, c := range f.Active {
		v.cell(s, c.X, c.Y, '█', f.ActiveColor)
	}

	// Next piece preview right of the well.
	px := v.area.Right() + 3
	if px+8 >= s.Width() {
		return
	}
	text(s, px, v.area.Y, "NEXT", core.ColorGray)
	cw := 1
	if v.sx >= 2 {
		cw = 2
	}
	for _, c := range f.NextCells {
		for i := range cw {
			s.SetColored(px+c.X*cw+i, v.area.Y+2+c.Y, '█', f.Next.Color())
		}
	}
}

var alienGlyphs = map[invaders.AlienType]struct {
	ch rune
	c  core.Color
}{
	invaders.AlienSquid:   {'Ж', core.ColorMagenta},
	invaders.AlienCrab:    {'Ѫ', core.ColorCyan},
	invaders.AlienOctopus: {'Ѭ', core.ColorGreen},
}

func paintInvaders(s *core.Screen, frame sim.Frame) {
	f, ok := frame.(invaders.Frame)
	if !ok {
		return
	}
	v := aspectField(s, f.Width, f.Height)

	for _, blk := range f.Shields {
		if blk.Health <= 0 {
			continue
		}
		ch := '░'
		switch {
		case blk.Health*3 > f.MaxHealth*2:
			ch = '█'
		case blk.Health*3 > f.MaxHealth:
			ch = '▓'
		}
		v.fill(s, blk.Bounds, ch, core.ColorGreen)
	}
	for _, a := range f.Aliens {
		g := alienGlyphs[a.Type]
		v.fill(s, a.Bounds, g.ch, g.c)
	}
	for _, b := range f.PlayerBullets {
		v.fill(s, b, '│', core.ColorYellow)
	}
	for _, b := range f.FleetBullets {
		v.fill(s, b, '¦', core.ColorRed)
	}
	v.fill(s, f.Player, '▲', core.ColorGreen)
}
