// Package sim defines the contract every arcade simulation implements.
// Simulations are pure state machines: the session drives them with frame
// deltas and input events, and pulls read-only frames for drawing.
package sim

import "github.com/vovakirdan/retro-arcade/internal/core"

// Simulation is the capability interface shared by all games.
type Simulation interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	// Used for registry lookups and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Instructions returns the lines shown before a run starts.
	Instructions() []string

	// Init resets the simulation to a valid starting configuration.
	Init()

	// Update advances the simulation by dt seconds. It may end the run.
	Update(dt float64)

	// Render returns a snapshot of the drawable state. It must not mutate
	// the simulation: two calls without an Update in between are identical.
	Render() Frame

	// HandleInput applies a key-down or key-up intent.
	HandleInput(in core.Input)

	Start()
	Stop()
	Pause()
	Resume()

	Score() int
	Running() bool
	Paused() bool

	// SetListener installs the receiver of sound and game-over events.
	SetListener(l Listener)
}

// Listener receives the outward events of a simulation run.
type Listener interface {
	OnSound(s core.Sound)
	OnGameOver(score int)
}

// HUD holds the counters every frame carries. Fields a game does not use
// stay zero.
type HUD struct {
	Score int
	Level int
	Lives int
	Lines int
	Wave  int
}

// Frame is a read-only drawable snapshot. Each game returns its own
// concrete frame type; the renderer switches on it.
type Frame interface {
	HUD() HUD
}
