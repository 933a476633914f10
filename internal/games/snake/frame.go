package snake

import "github.com/vovakirdan/retro-arcade/internal/sim"

// Frame is a read-only snapshot of the board.
type Frame struct {
	Width     int
	Height    int
	Body      []Point // Head at index 0
	Direction Direction
	Food      Point
	HasFood   bool
	Score     int
	Eaten     int
}

// HUD returns the shared counters.
func (f Frame) HUD() sim.HUD {
	return sim.HUD{Score: f.Score}
}

// Render returns a snapshot. The body is copied so the frame stays valid
// after further updates.
func (g *Game) Render() sim.Frame {
	body := make([]Point, len(g.body))
	copy(body, g.body)

	return Frame{
		Width:     g.cfg.Width,
		Height:    g.cfg.Height,
		Body:      body,
		Direction: g.direction,
		Food:      g.food,
		HasFood:   g.hasFood,
		Score:     g.Score(),
		Eaten:     g.eaten,
	}
}
