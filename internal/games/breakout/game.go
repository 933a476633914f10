// Package breakout implements the Breakout simulation: a paddle, one ball
// and a wall of bricks in a continuous playfield.
package breakout

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// ID is the registry identifier.
const ID = "breakout"

// Game implements the Breakout simulation.
type Game struct {
	sim.Base

	cfg config.BreakoutConfig
	rng core.Rand

	held   core.Held
	paddle Paddle
	ball   Ball
	bricks Grid
	alive  int

	lives     int
	level     int
	ballSpeed float64
}

// New creates a Breakout simulation.
func New(cfg config.BreakoutConfig, rng core.Rand) *Game {
	g := &Game{cfg: cfg, rng: rng, held: core.NewHeld()}
	g.Init()
	return g
}

func init() {
	registry.Register(ID, 1, func(cfg config.Config, rng core.Rand) sim.Simulation {
		return New(cfg.Breakout, rng)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Breakout" }

// Instructions returns the pre-run help text.
func (g *Game) Instructions() []string {
	return []string{
		"Move the paddle with Left/Right or A/D.",
		"Press Space or Up to launch the ball.",
		"Break every brick to advance; the ball speeds up each level.",
		"Missing the ball costs a life.",
	}
}

// Init resets lives, level, bricks and docks the ball on a centered paddle.
func (g *Game) Init() {
	g.Base.Reset()
	g.held.Clear()

	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.ballSpeed = g.cfg.Ball.Speed

	g.paddle = Paddle{
		X:      (g.cfg.Field.Width - g.cfg.Paddle.Width) / 2,
		Y:      g.cfg.Paddle.Y,
		Width:  g.cfg.Paddle.Width,
		Height: g.cfg.Paddle.Height,
	}
	g.ball = Ball{Radius: g.cfg.Ball.Radius}
	g.loadBricks()
	g.dock()
}

func (g *Game) loadBricks() {
	g.bricks = NewGrid(g.cfg.Field, g.cfg.Bricks, g.cfg.Gameplay.RowPoints)
	g.alive = g.bricks.CountAlive()
}

// dock parks the ball on top of the paddle center.
func (g *Game) dock() {
	g.ball.Launched = false
	g.ball.VX = 0
	g.ball.VY = 0
	g.ball.X = g.paddle.CenterX()
	g.ball.Y = g.paddle.Y - g.ball.Radius
}

// launch releases a docked ball within LaunchSpread of vertical.
func (g *Game) launch() {
	angle := (g.rng.Float64()*2 - 1) * LaunchSpread
	g.ball.SetAngle(angle, g.ballSpeed)
	g.ball.Launched = true
	g.Emit(core.SoundBounce)
}

// HandleInput tracks held movement keys and launches on Primary/Up.
func (g *Game) HandleInput(in core.Input) {
	g.held.Apply(in)
	if in.Released || g.ball.Launched || !g.Active() {
		return
	}
	if in.Intent == core.IntentPrimary || in.Intent == core.IntentUp {
		g.launch()
	}
}

// Update advances paddle and ball by dt seconds.
func (g *Game) Update(dt float64) {
	if !g.Active() || dt <= 0 {
		return
	}

	g.updatePaddle(dt)

	if !g.ball.Launched {
		g.ball.X = g.paddle.CenterX()
		return
	}

	g.ball.X += g.ball.VX * dt
	g.ball.Y += g.ball.VY * dt

	g.collideWalls()
	if g.ball.Y-g.ball.Radius > g.cfg.Field.Height {
		g.loseLife()
		return
	}
	g.collidePaddle()
	g.collideBricks()
}

// updatePaddle handles paddle movement from held keys.
func (g *Game) updatePaddle(dt float64) {
	dir := 0.0
	if g.held.Has(core.IntentLeft) {
		dir--
	}
	if g.held.Has(core.IntentRight) {
		dir++
	}
	g.paddle.X += dir * g.cfg.Paddle.Speed * dt
	g.paddle.X = core.ClampF(g.paddle.X, 0, g.cfg.Field.Width-g.paddle.Width)
}

// collideWalls reflects the ball off the side and top walls.
func (g *Game) collideWalls() {
	b := &g.ball
	bounced := false

	if b.X-b.Radius < 0 {
		b.X = b.Radius
		if b.VX < 0 {
			b.VX = -b.VX
		}
		bounced = true
	} else if b.X+b.Radius > g.cfg.Field.Width {
		b.X = g.cfg.Field.Width - b.Radius
		if b.VX > 0 {
			b.VX = -b.VX
		}
		bounced = true
	}

	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		if b.VY < 0 {
			b.VY = -b.VY
		}
		bounced = true
	}

	if bounced {
		g.Emit(core.SoundBounce)
	}
}

// collidePaddle reflects a descending ball off the paddle. The exit angle
// depends only on where the ball hit; speed is preserved.
func (g *Game) collidePaddle() {
	b := &g.ball
	if b.VY <= 0 || !b.Bounds().Intersects(g.paddle.Bounds()) {
		return
	}

	offset := (b.X - g.paddle.CenterX()) / (g.paddle.Width / 2)
	offset = core.ClampF(offset, -1, 1)

	b.SetAngle(offset*MaxBounceAngle, b.Speed())
	b.Y = g.paddle.Y - b.Radius
	g.Emit(core.SoundBounce)
}

// collideBricks destroys at most one brick per frame: the first alive brick
// in grid order the ball overlaps.
func (g *Game) collideBricks() {
	bounds := g.ball.Bounds()
	for row := range g.bricks {
		for col := range g.bricks[row] {
			brick := &g.bricks[row][col]
			if !brick.Alive || !bounds.Intersects(brick.Bounds) {
				continue
			}

			g.ball.Reflect(Penetrate(bounds, brick.Bounds))
			g.hitBrick(brick)
			return
		}
	}
}

// hitBrick handles hitting a brick.
func (g *Game) hitBrick(brick *Brick) {
	brick.Alive = false
	g.alive--
	g.AddScore(brick.Points)
	g.Emit(core.SoundHit)

	if g.alive == 0 {
		g.handleLevelClear()
	}
}

// handleLevelClear speeds the ball up and builds a fresh wall. The ball
// keeps flying.
func (g *Game) handleLevelClear() {
	g.ballSpeed += g.cfg.Ball.SpeedIncrement
	g.level++
	g.loadBricks()
	g.AddScore(g.cfg.Gameplay.LevelBonus)
	g.ball.Rescale(g.ballSpeed)
	g.Emit(core.SoundLine)
}

// loseLife handles the ball dropping past the paddle.
func (g *Game) loseLife() {
	g.lives--
	g.Emit(core.SoundHit)

	if g.lives <= 0 {
		g.TriggerGameOver()
		return
	}
	g.dock()
}

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Level returns the current level, starting at 1.
func (g *Game) Level() int { return g.level }

// BallSpeed returns the current launch speed.
func (g *Game) BallSpeed() float64 { return g.ballSpeed }

// BricksRemaining returns the number of alive bricks.
func (g *Game) BricksRemaining() int { return g.alive }
