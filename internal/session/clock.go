package session

// MaxFrameTime caps a single frame delta so a stalled host cannot trigger a
// burst of catch-up steps.
const MaxFrameTime = 0.25

// Clock converts variable frame deltas into a whole number of fixed steps.
type Clock struct {
	step float64
	acc  float64
	skip bool
}

// NewClock creates a clock producing steps of the given length in seconds.
func NewClock(step float64) *Clock {
	return &Clock{step: step}
}

// Step returns the fixed step length.
func (c *Clock) Step() float64 { return c.step }

// Advance adds a frame delta and returns how many fixed steps are due.
// Negative deltas count as zero.
func (c *Clock) Advance(dt float64) int {
	if c.skip {
		c.skip = false
		return 0
	}

	c.acc += min(max(dt, 0), MaxFrameTime)

	steps := 0
	for c.acc >= c.step {
		c.acc -= c.step
		steps++
	}
	return steps
}

// Reset clears the accumulator.
func (c *Clock) Reset() {
	c.acc = 0
	c.skip = false
}

// Resume clears the accumulator and discards the next delta, which spans
// the time spent paused.
func (c *Clock) Resume() {
	c.acc = 0
	c.skip = true
}
