package tui

import (
	"time"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// HoldTimeout is how long a key counts as held after its last press.
// Terminals report key repeats but never key releases, so a release is
// synthesized once the repeats stop.
const HoldTimeout = 150 * time.Millisecond

// holdTracker turns a stream of key presses into press/release pairs.
type holdTracker struct {
	timeout time.Duration
	expires map[core.Intent]time.Time
}

func newHoldTracker(timeout time.Duration) *holdTracker {
	return &holdTracker{timeout: timeout, expires: make(map[core.Intent]time.Time)}
}

// Press records a key press at now. It reports whether the intent was
// not already held.
func (h *holdTracker) Press(i core.Intent, now time.Time) bool {
	_, held := h.expires[i]
	h.expires[i] = now.Add(h.timeout)
	return !held
}

// Expire returns the intents whose hold lapsed at now, in intent order.
func (h *holdTracker) Expire(now time.Time) []core.Intent {
	var out []core.Intent
	for i := core.IntentUp; i <= core.IntentConfirm; i++ {
		if t, ok := h.expires[i]; ok && !now.Before(t) {
			out = append(out, i)
			delete(h.expires, i)
		}
	}
	return out
}

// Reset forgets all holds without reporting releases.
func (h *holdTracker) Reset() {
	clear(h.expires)
}
