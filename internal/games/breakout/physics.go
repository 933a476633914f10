package breakout

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// MaxBounceAngle is the steepest paddle reflection, measured from vertical.
// An impact at either paddle edge leaves at atan(2), about 63.4 degrees.
var MaxBounceAngle = math.Atan(2)

// LaunchSpread is the launch cone half-angle from vertical.
const LaunchSpread = math.Pi / 4

// Ball represents the ball state. X and Y are the center.
type Ball struct {
	X, Y     float64
	VX, VY   float64 // units per second
	Radius   float64
	Launched bool
}

// Bounds returns the ball's bounding square.
func (b *Ball) Bounds() core.RectF {
	return core.CenteredRectF(b.X, b.Y, b.Radius*2, b.Radius*2)
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// SetAngle points the ball at angle radians from straight up, keeping speed.
// Positive angles lean right.
func (b *Ball) SetAngle(angle, speed float64) {
	b.VX = speed * math.Sin(angle)
	b.VY = -speed * math.Cos(angle)
}

// Rescale changes the speed while keeping the direction.
func (b *Ball) Rescale(speed float64) {
	cur := b.Speed()
	if cur == 0 {
		return
	}
	b.VX *= speed / cur
	b.VY *= speed / cur
}

// Paddle represents the player's paddle. X is the left edge.
type Paddle struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Bounds returns the paddle's band.
func (p *Paddle) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the paddle's center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Axis names the velocity component a brick hit reflects.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Penetration reports how far the ball has pushed into a brick from each
// side. Smaller depth means the ball most likely came from that side.
type Penetration struct {
	Left, Right, Top, Bottom float64
}

// Penetrate computes penetration depths of ball into brick.
func Penetrate(ball, brick core.RectF) Penetration {
	return Penetration{
		Left:   ball.Right() - brick.X,
		Right:  brick.Right() - ball.X,
		Top:    ball.Bottom() - brick.Y,
		Bottom: brick.Bottom() - ball.Y,
	}
}

// Axis returns the reflection axis: the one with the smaller minimum depth.
func (p Penetration) Axis() Axis {
	if min(p.Left, p.Right) < min(p.Top, p.Bottom) {
		return AxisX
	}
	return AxisY
}

// Reflect bounces the ball off a brick according to the penetration.
// The velocity sign is set away from the brick rather than flipped, so a
// ball that is still inside on the next frame cannot oscillate.
func (b *Ball) Reflect(p Penetration) {
	switch p.Axis() {
	case AxisX:
		if p.Left < p.Right {
			b.VX = -math.Abs(b.VX)
		} else {
			b.VX = math.Abs(b.VX)
		}
	case AxisY:
		if p.Top < p.Bottom {
			b.VY = -math.Abs(b.VY)
		} else {
			b.VY = math.Abs(b.VY)
		}
	}
}
