package session

import (
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// View is everything a renderer needs to draw the current screen.
type View struct {
	State        State
	Games        []registry.GameInfo
	Cursor       int
	GameID       string
	Title        string
	Instructions []string

	// Frame is the live frame while Playing or Paused and the final frame
	// on the game-over screen.
	Frame sim.Frame

	Score   int
	Best    int
	NewHigh bool
}

// View returns a snapshot of the session for drawing.
func (c *Controller) View() View {
	v := View{
		State:        c.state,
		Games:        c.games,
		Cursor:       c.cursor,
		GameID:       c.selected,
		Title:        c.title,
		Instructions: c.instructions,
	}

	switch c.state {
	case StatePlaying, StatePaused:
		v.Frame = c.active.Render()
		v.Score = c.active.Score()
	case StateGameOver:
		v.Frame = c.lastFrame
		v.Score = c.lastScore
		v.Best = c.best
		v.NewHigh = c.newHigh
	}
	return v
}
