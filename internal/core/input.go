package core

// Intent is a symbolic input, abstracted from physical key presses.
// The input producer maps devices onto this vocabulary; the core never
// reads raw device state.
type Intent int

const (
	IntentNone      Intent = iota
	IntentUp               // W, Up arrow
	IntentDown             // S, Down arrow
	IntentLeft             // A, Left arrow
	IntentRight            // D, Right arrow
	IntentPrimary          // Space - launch, fire, hard drop
	IntentSecondary        // X - alternate action
	IntentPause            // P
	IntentCancel           // Esc, B - back out to the menu
	IntentConfirm          // Enter
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentUp:
		return "Up"
	case IntentDown:
		return "Down"
	case IntentLeft:
		return "Left"
	case IntentRight:
		return "Right"
	case IntentPrimary:
		return "Primary"
	case IntentSecondary:
		return "Secondary"
	case IntentPause:
		return "Pause"
	case IntentCancel:
		return "Cancel"
	case IntentConfirm:
		return "Confirm"
	default:
		return "Unknown"
	}
}

// Input is a single key-down or key-up event for an intent.
type Input struct {
	Intent   Intent
	Released bool // true for key-up
}

// Press builds a key-down event.
func Press(i Intent) Input {
	return Input{Intent: i}
}

// Release builds a key-up event.
func Release(i Intent) Input {
	return Input{Intent: i, Released: true}
}

// Held tracks which intents are currently held down.
// Games that move continuously (paddles, soft drop) query it every update.
type Held struct {
	intents map[Intent]bool
}

// NewHeld creates an empty held-intent set.
func NewHeld() Held {
	return Held{intents: make(map[Intent]bool)}
}

// Apply records a key-down or key-up event.
func (h *Held) Apply(in Input) {
	if h.intents == nil {
		h.intents = make(map[Intent]bool)
	}
	if in.Released {
		delete(h.intents, in.Intent)
		return
	}
	h.intents[in.Intent] = true
}

// Has returns true if the intent is currently held.
func (h Held) Has(i Intent) bool {
	if h.intents == nil {
		return false
	}
	return h.intents[i]
}

// Clear releases every intent.
func (h *Held) Clear() {
	for k := range h.intents {
		delete(h.intents, k)
	}
}
