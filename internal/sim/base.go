package sim

import "github.com/vovakirdan/retro-arcade/internal/core"

// Base carries the lifecycle and scoring state shared by all games.
// Games embed it and call AddScore, Emit and TriggerGameOver.
type Base struct {
	score    int
	running  bool
	paused   bool
	over     bool
	listener Listener
}

// Reset clears score and lifecycle flags for a new run.
// The listener is kept.
func (b *Base) Reset() {
	b.score = 0
	b.running = false
	b.paused = false
	b.over = false
}

// Start marks the run as running. A finished run stays finished.
func (b *Base) Start() {
	if b.over {
		return
	}
	b.running = true
	b.paused = false
}

// Stop halts the run without reporting game over.
func (b *Base) Stop() {
	b.running = false
	b.paused = false
}

// Pause freezes updates.
func (b *Base) Pause() {
	if b.running {
		b.paused = true
	}
}

// Resume unfreezes updates.
func (b *Base) Resume() {
	b.paused = false
}

// Active reports whether Update should advance state.
func (b *Base) Active() bool {
	return b.running && !b.paused
}

// Score returns the current score.
func (b *Base) Score() int {
	return b.score
}

// Running reports whether the run is live.
func (b *Base) Running() bool {
	return b.running
}

// Paused reports whether the run is paused.
func (b *Base) Paused() bool {
	return b.paused
}

// Over reports whether the run has ended through TriggerGameOver.
func (b *Base) Over() bool {
	return b.over
}

// SetListener installs the event receiver.
func (b *Base) SetListener(l Listener) {
	b.listener = l
}

// AddScore adds n points. Non-positive amounts are ignored so the score
// never decreases.
func (b *Base) AddScore(n int) {
	if n <= 0 {
		return
	}
	b.score += n
}

// Emit forwards a sound event to the listener.
func (b *Base) Emit(s core.Sound) {
	if b.listener != nil {
		b.listener.OnSound(s)
	}
}

// TriggerGameOver ends the run and notifies the listener exactly once.
func (b *Base) TriggerGameOver() {
	if b.over {
		return
	}
	b.over = true
	b.running = false
	b.paused = false
	if b.listener != nil {
		b.listener.OnGameOver(b.score)
	}
}
