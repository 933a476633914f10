package invaders

import (
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// AlienView is a drawable living alien.
type AlienView struct {
	Bounds core.RectF
	Type   AlienType
}

// BlockView is a drawable shield block.
type BlockView struct {
	Bounds core.RectF
	Health int
}

// Frame is a read-only snapshot of the battlefield.
type Frame struct {
	Width, Height float64
	Player        core.RectF
	Aliens        []AlienView
	Shields       []BlockView
	PlayerBullets []core.RectF
	FleetBullets  []core.RectF
	MaxHealth     int
	Score         int
	Lives         int
	Wave          int
}

// HUD returns the shared counters.
func (f Frame) HUD() sim.HUD {
	return sim.HUD{Score: f.Score, Lives: f.Lives, Wave: f.Wave}
}

// Render returns a snapshot of living entities.
func (g *Game) Render() sim.Frame {
	aliens := make([]AlienView, 0, g.alive)
	for _, a := range g.fleet {
		if a.Alive {
			aliens = append(aliens, AlienView{Bounds: g.alienBounds(a), Type: a.Type})
		}
	}

	size := g.cfg.Shields.BlockSize
	shields := make([]BlockView, len(g.shields))
	for i, blk := range g.shields {
		shields[i] = BlockView{Bounds: core.NewRectF(blk.X, blk.Y, size, size), Health: blk.Health}
	}

	return Frame{
		Width:         g.cfg.Field.Width,
		Height:        g.cfg.Field.Height,
		Player:        g.PlayerBounds(),
		Aliens:        aliens,
		Shields:       shields,
		PlayerBullets: bulletBounds(g.playerBullets),
		FleetBullets:  bulletBounds(g.fleetBullets),
		MaxHealth:     g.cfg.Shields.Health,
		Score:         g.Score(),
		Lives:         g.lives,
		Wave:          g.wave,
	}
}

func bulletBounds(bullets []Bullet) []core.RectF {
	out := make([]core.RectF, len(bullets))
	for i, b := range bullets {
		out[i] = b.Bounds()
	}
	return out
}
