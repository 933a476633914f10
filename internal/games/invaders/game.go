// Package invaders implements the Space Invaders simulation.
package invaders

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// ID is the registry identifier.
const ID = "invaders"

// Game implements the Space Invaders simulation.
type Game struct {
	sim.Base

	cfg config.InvadersConfig
	rng core.Rand

	held    core.Held
	playerX float64 // cannon center
	lives   int
	wave    int

	fleet   []Alien
	alive   int
	dir     float64 // +1 right, -1 left
	stepAcc float64

	shields       []Block
	playerBullets []Bullet
	fleetBullets  []Bullet
	cooldown      float64 // seconds until the player may fire again
}

// New creates a Space Invaders simulation.
func New(cfg config.InvadersConfig, rng core.Rand) *Game {
	g := &Game{cfg: cfg, rng: rng, held: core.NewHeld()}
	g.Init()
	return g
}

func init() {
	registry.Register(ID, 3, func(cfg config.Config, rng core.Rand) sim.Simulation {
		return New(cfg.Invaders, rng)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Space Invaders" }

// Instructions returns the pre-run help text.
func (g *Game) Instructions() []string {
	return []string{
		"Move the cannon with Left/Right or A/D, fire with Space.",
		"Squids 30, crabs 20, octopuses 10 points.",
		"Shields absorb shots from both sides until they crumble.",
		"Each wave marches faster. Don't let the fleet land.",
	}
}

// Init starts wave one with full lives.
func (g *Game) Init() {
	g.Base.Reset()
	g.held.Clear()

	g.wave = 1
	g.lives = g.cfg.Player.Lives
	g.playerX = g.cfg.Field.Width / 2
	g.setupWave()
}

// setupWave builds a fresh fleet and shields and clears the sky.
func (g *Game) setupWave() {
	g.fleet = NewFleet(g.cfg.Fleet)
	g.alive = len(g.fleet)
	g.dir = 1
	g.stepAcc = 0
	g.shields = NewShields(g.cfg.Shields, g.cfg.Field.Width)
	g.playerBullets = g.playerBullets[:0]
	g.fleetBullets = g.fleetBullets[:0]
	g.cooldown = 0
}

// StepInterval returns seconds between fleet steps for a wave.
func (g *Game) StepInterval(wave int) float64 {
	f := g.cfg.Fleet
	return max(g.cfg.Waves.MinStep, f.StepInterval*math.Pow(g.cfg.Waves.StepDecay, float64(wave-1)))
}

// StepSize returns the horizontal distance of one fleet step for a wave.
func (g *Game) StepSize(wave int) float64 {
	return g.cfg.Fleet.StepSize * (1 + g.cfg.Waves.StepGrowth*float64(wave-1))
}

// FireChance returns the per-update probability that the fleet fires.
func (g *Game) FireChance(wave int) float64 {
	return g.cfg.Fleet.FireChance * (1 + g.cfg.Waves.FireGrowth*float64(wave-1))
}

// HandleInput tracks held keys and fires on Primary.
func (g *Game) HandleInput(in core.Input) {
	g.held.Apply(in)
	if in.Released || !g.Active() {
		return
	}
	if in.Intent == core.IntentPrimary {
		g.fire()
	}
}

// fire launches a player bullet unless the cannon is cooling down.
func (g *Game) fire() bool {
	if g.cooldown > 0 {
		return false
	}
	g.playerBullets = append(g.playerBullets, Bullet{
		X: g.playerX,
		Y: g.cfg.Player.Y - BulletHeight,
	})
	g.cooldown = g.cfg.Player.FireCooldown
	g.Emit(core.SoundShoot)
	return true
}

// Update advances the cannon, the fleet and all bullets by dt seconds.
func (g *Game) Update(dt float64) {
	if !g.Active() || dt <= 0 {
		return
	}

	g.cooldown = max(0, g.cooldown-dt)
	g.movePlayer(dt)
	if g.held.Has(core.IntentPrimary) {
		g.fire()
	}

	g.stepAcc += dt
	if interval := g.StepInterval(g.wave); g.stepAcc >= interval {
		g.stepAcc -= interval
		g.stepFleet()
		if !g.Running() {
			return
		}
	}

	g.fleetFire()
	g.updatePlayerBullets(dt)
	g.updateFleetBullets(dt)
	if !g.Running() {
		return
	}

	if g.alive == 0 {
		g.nextWave()
	}
}

func (g *Game) movePlayer(dt float64) {
	dir := 0.0
	if g.held.Has(core.IntentLeft) {
		dir--
	}
	if g.held.Has(core.IntentRight) {
		dir++
	}
	half := g.cfg.Player.Width / 2
	g.playerX = core.ClampF(g.playerX+dir*g.cfg.Player.Speed*dt, half, g.cfg.Field.Width-half)
}

// stepFleet moves the formation one step sideways, or drops it and turns
// around when the step would cross a side of the field.
func (g *Game) stepFleet() {
	if g.alive == 0 {
		return
	}

	left, right := math.Inf(1), math.Inf(-1)
	for _, a := range g.fleet {
		if a.Alive {
			left = min(left, a.X)
			right = max(right, a.X+g.cfg.Fleet.AlienWidth)
		}
	}

	step := g.StepSize(g.wave) * g.dir
	if left+step < 0 || right+step > g.cfg.Field.Width {
		g.dir = -g.dir
		landed := false
		for i := range g.fleet {
			g.fleet[i].Y += g.cfg.Fleet.DropDistance
			a := g.fleet[i]
			if a.Alive && a.Y+g.cfg.Fleet.AlienHeight > g.cfg.Player.Y {
				landed = true
			}
		}
		if landed {
			g.TriggerGameOver()
		}
		return
	}

	for i := range g.fleet {
		g.fleet[i].X += step
	}
	g.Emit(core.SoundMove)
}

// fleetFire lets one uniformly chosen living alien shoot, with probability
// FireChance per update.
func (g *Game) fleetFire() {
	if g.alive == 0 || g.rng.Float64() >= g.FireChance(g.wave) {
		return
	}

	n := g.rng.Intn(g.alive)
	for _, a := range g.fleet {
		if !a.Alive {
			continue
		}
		if n == 0 {
			g.fleetBullets = append(g.fleetBullets, Bullet{
				X: a.X + g.cfg.Fleet.AlienWidth/2,
				Y: a.Y + g.cfg.Fleet.AlienHeight,
			})
			return
		}
		n--
	}
}

func (g *Game) updatePlayerBullets(dt float64) {
	kept := g.playerBullets[:0]
	for _, b := range g.playerBullets {
		b.Y -= g.cfg.Player.BulletSpeed * dt
		if b.Y+BulletHeight < 0 {
			continue
		}
		if g.hitShield(b) || g.hitAlien(b) {
			continue
		}
		kept = append(kept, b)
	}
	g.playerBullets = kept
}

func (g *Game) updateFleetBullets(dt float64) {
	kept := g.fleetBullets[:0]
	for _, b := range g.fleetBullets {
		b.Y += g.cfg.Fleet.BulletSpeed * dt
		if b.Y > g.cfg.Field.Height {
			continue
		}
		if g.hitShield(b) {
			continue
		}
		if b.Bounds().Intersects(g.PlayerBounds()) {
			g.hitPlayer()
			continue
		}
		kept = append(kept, b)
	}
	g.fleetBullets = kept
}

// hitShield damages the first shield block under the bullet.
func (g *Game) hitShield(b Bullet) bool {
	bounds := b.Bounds()
	size := g.cfg.Shields.BlockSize
	for i, blk := range g.shields {
		if !bounds.Intersects(core.NewRectF(blk.X, blk.Y, size, size)) {
			continue
		}
		g.shields[i].Health--
		if g.shields[i].Health <= 0 {
			g.shields = append(g.shields[:i], g.shields[i+1:]...)
		}
		return true
	}
	return false
}

// hitAlien destroys the first living alien under the bullet.
func (g *Game) hitAlien(b Bullet) bool {
	bounds := b.Bounds()
	for i := range g.fleet {
		a := &g.fleet[i]
		if !a.Alive || !bounds.Intersects(g.alienBounds(*a)) {
			continue
		}
		a.Alive = false
		g.alive--
		g.AddScore(a.Points)
		g.Emit(core.SoundHit)
		return true
	}
	return false
}

// hitPlayer costs a life. Bullets landing after the last life is gone
// are absorbed.
func (g *Game) hitPlayer() {
	if !g.Running() {
		return
	}
	g.lives--
	g.Emit(core.SoundHit)
	if g.lives <= 0 {
		g.TriggerGameOver()
	}
}

// nextWave rebuilds the fleet and awards the wave bonus.
func (g *Game) nextWave() {
	g.wave++
	g.setupWave()
	g.AddScore(g.cfg.Waves.Bonus)
	g.Emit(core.SoundLine)
}

func (g *Game) alienBounds(a Alien) core.RectF {
	return core.NewRectF(a.X, a.Y, g.cfg.Fleet.AlienWidth, g.cfg.Fleet.AlienHeight)
}

// PlayerBounds returns the cannon's hit box.
func (g *Game) PlayerBounds() core.RectF {
	p := g.cfg.Player
	return core.NewRectF(g.playerX-p.Width/2, p.Y, p.Width, p.Height)
}

// Wave returns the current wave, starting at 1.
func (g *Game) Wave() int { return g.wave }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// AliveCount returns the number of living aliens.
func (g *Game) AliveCount() int { return g.alive }
