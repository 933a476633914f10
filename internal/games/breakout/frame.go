package breakout

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// BrickView is a drawable alive brick.
type BrickView struct {
	Bounds core.RectF
	Color  core.Color
}

// Frame is a read-only snapshot of the playfield.
type Frame struct {
	Width, Height float64
	Paddle        core.RectF
	Ball          Ball
	Bricks        []BrickView
	Score         int
	Lives         int
	Level         int
}

// HUD returns the shared counters.
func (f Frame) HUD() sim.HUD {
	return sim.HUD{Score: f.Score, Lives: f.Lives, Level: f.Level}
}

// Render returns a snapshot with only the alive bricks.
func (g *Game) Render() sim.Frame {
	bricks := make([]BrickView, 0, g.alive)
	for _, row := range g.bricks {
		for _, brick := range row {
			if brick.Alive {
				bricks = append(bricks, BrickView{Bounds: brick.Bounds, Color: brick.Color})
			}
		}
	}

	return Frame{
		Width:  g.cfg.Field.Width,
		Height: g.cfg.Field.Height,
		Paddle: g.paddle.Bounds(),
		Ball:   g.ball,
		Bricks: bricks,
		Score:  g.Score(),
		Lives:  g.lives,
		Level:  g.level,
	}
}
