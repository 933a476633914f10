package invaders

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

const frame = 1.0 / 60

// scriptedRand returns queued values; an empty queue yields 0 and 0.99.
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

type listener struct {
	sounds    []core.Sound
	gameOvers int
}

func (l *listener) OnSound(s core.Sound) { l.sounds = append(l.sounds, s) }
func (l *listener) OnGameOver(int)       { l.gameOvers++ }

func newGame(t *testing.T, rng core.Rand) (*Game, *listener) {
	t.Helper()
	if rng == nil {
		rng = &scriptedRand{} // the fleet never fires
	}
	g := New(config.Default().Invaders, rng)
	l := &listener{}
	g.SetListener(l)
	g.Start()
	return g, l
}

func TestInitialFleet(t *testing.T) {
	g, _ := newGame(t, nil)

	if len(g.fleet) != 55 || g.AliveCount() != 55 {
		t.Fatalf("fleet = %d/%d, expected 55", len(g.fleet), g.AliveCount())
	}

	counts := map[AlienType]int{}
	for _, a := range g.fleet {
		counts[a.Type]++
		if a.Points != a.Type.Points() {
			t.Errorf("%v worth %d", a.Type, a.Points)
		}
	}
	if counts[AlienSquid] != 11 || counts[AlienCrab] != 22 || counts[AlienOctopus] != 22 {
		t.Errorf("type counts = %v", counts)
	}
	if g.fleet[0].Type != AlienSquid || g.fleet[54].Type != AlienOctopus {
		t.Error("squids should lead, octopuses trail")
	}

	if len(g.shields) != 4*4*3 {
		t.Errorf("shield blocks = %d, expected 48", len(g.shields))
	}
}

func TestWaveProgression(t *testing.T) {
	g, _ := newGame(t, nil)

	if g.StepInterval(2) >= g.StepInterval(1) {
		t.Error("wave 2 should step faster")
	}
	if g.StepSize(2) <= g.StepSize(1) {
		t.Error("wave 2 should take larger steps")
	}
	if g.FireChance(2) <= g.FireChance(1) {
		t.Error("wave 2 should fire more often")
	}
	if got := g.StepInterval(100); got != g.cfg.Waves.MinStep {
		t.Errorf("interval floor = %v, expected %v", got, g.cfg.Waves.MinStep)
	}
}

func TestFleetStepsSideways(t *testing.T) {
	g, l := newGame(t, nil)
	x0 := g.fleet[0].X

	g.stepFleet()

	if got := g.fleet[0].X - x0; math.Abs(got-g.StepSize(1)) > 1e-9 {
		t.Errorf("fleet moved %v, expected %v", got, g.StepSize(1))
	}
	if len(l.sounds) != 1 || l.sounds[0] != core.SoundMove {
		t.Errorf("sounds = %v, expected [move]", l.sounds)
	}
}

func TestFleetDropsAndReversesAtEdge(t *testing.T) {
	g, _ := newGame(t, nil)

	// Push the formation so the next step would cross the right side.
	shift := g.cfg.Field.Width - (g.fleet[len(g.fleet)-1].X + g.cfg.Fleet.AlienWidth) - 0.5
	for i := range g.fleet {
		g.fleet[i].X += shift
	}
	x0, y0 := g.fleet[0].X, g.fleet[0].Y

	g.stepFleet()

	if g.fleet[0].X != x0 {
		t.Error("dropping fleet must not move sideways")
	}
	if g.fleet[0].Y != y0+g.cfg.Fleet.DropDistance {
		t.Errorf("Y = %v, expected %v", g.fleet[0].Y, y0+g.cfg.Fleet.DropDistance)
	}
	if g.dir != -1 {
		t.Errorf("dir = %v, expected -1", g.dir)
	}

	g.stepFleet()
	if g.fleet[0].X >= x0 {
		t.Error("fleet should march left after reversing")
	}
}

func TestEdgeIgnoresDeadColumns(t *testing.T) {
	g, _ := newGame(t, nil)

	// Kill the rightmost column; the survivors may move further right.
	cols := g.cfg.Fleet.Cols
	for i := range g.fleet {
		if i%cols == cols-1 {
			g.fleet[i].Alive = false
			g.alive--
		}
	}
	shift := g.cfg.Field.Width - (g.fleet[cols-1].X + g.cfg.Fleet.AlienWidth) - 0.5
	for i := range g.fleet {
		g.fleet[i].X += shift
	}
	x0 := g.fleet[0].X

	g.stepFleet()

	if g.fleet[0].X == x0 {
		t.Error("dead aliens should not trigger the edge drop")
	}
}

func TestFleetLandingEndsRun(t *testing.T) {
	g, l := newGame(t, nil)

	for i := range g.fleet {
		g.fleet[i].Y += g.cfg.Player.Y - 30
		g.fleet[i].X += g.cfg.Field.Width // force an edge drop
	}
	g.stepFleet()

	if g.Running() {
		t.Error("fleet reaching the player row should end the run")
	}
	if l.gameOvers != 1 {
		t.Errorf("game over reported %d times", l.gameOvers)
	}
}

func TestFleetFireChoosesLivingAlien(t *testing.T) {
	rng := &scriptedRand{floats: []float64{0}, ints: []int{2}}
	g, _ := newGame(t, rng)

	g.fleet[0].Alive = false
	g.fleet[2].Alive = false
	g.alive -= 2

	g.fleetFire()

	if len(g.fleetBullets) != 1 {
		t.Fatalf("fleet bullets = %d, expected 1", len(g.fleetBullets))
	}
	// Living aliens are 1, 3, 4, ...; index 2 among them is alien 4.
	shooter := g.fleet[4]
	if want := shooter.X + g.cfg.Fleet.AlienWidth/2; g.fleetBullets[0].X != want {
		t.Errorf("bullet X = %v, expected %v", g.fleetBullets[0].X, want)
	}
}

func TestFleetFireProbability(t *testing.T) {
	chance := config.Default().Invaders.Fleet.FireChance
	rng := &scriptedRand{floats: []float64{chance + 0.001}}
	g, _ := newGame(t, rng)
	g.fleetFire()
	if len(g.fleetBullets) != 0 {
		t.Error("roll above fire chance should not fire")
	}
}

func TestPlayerFireCooldown(t *testing.T) {
	g, l := newGame(t, nil)
	shots := func() int {
		n := 0
		for _, s := range l.sounds {
			if s == core.SoundShoot {
				n++
			}
		}
		return n
	}

	g.HandleInput(core.Press(core.IntentPrimary))
	g.HandleInput(core.Release(core.IntentPrimary))
	g.HandleInput(core.Press(core.IntentPrimary))
	g.HandleInput(core.Release(core.IntentPrimary))

	if shots() != 1 || len(g.playerBullets) != 1 {
		t.Fatalf("shots = %d, expected 1 during cooldown", shots())
	}

	// Cooldown elapses through updates, not timers.
	for range 30 {
		g.Update(frame)
	}
	if g.cooldown != 0 {
		t.Errorf("cooldown = %v, expected 0", g.cooldown)
	}
	g.HandleInput(core.Press(core.IntentPrimary))
	if shots() != 2 {
		t.Errorf("shots = %d, expected 2 after cooldown", shots())
	}
}

func TestPlayerBulletKillsAlien(t *testing.T) {
	g, l := newGame(t, nil)
	target := g.fleet[0]

	g.playerBullets = []Bullet{{X: target.X + 1, Y: target.Y + 1}}
	g.updatePlayerBullets(frame)

	if g.fleet[0].Alive {
		t.Error("alien should be destroyed")
	}
	if g.Score() != AlienSquid.Points() {
		t.Errorf("score = %d, expected %d", g.Score(), AlienSquid.Points())
	}
	if len(g.playerBullets) != 0 {
		t.Error("bullet should be consumed")
	}
	if len(l.sounds) != 1 || l.sounds[0] != core.SoundHit {
		t.Errorf("sounds = %v, expected [hit]", l.sounds)
	}
}

func TestShieldAbsorbsBullets(t *testing.T) {
	g, _ := newGame(t, nil)
	blk := g.shields[0]
	size := g.cfg.Shields.BlockSize
	blocks := len(g.shields)

	for i := range g.cfg.Shields.Health {
		g.fleetBullets = []Bullet{{X: blk.X + size/2, Y: blk.Y}}
		g.updateFleetBullets(0)

		if len(g.fleetBullets) != 0 {
			t.Fatal("bullet should be consumed by the shield")
		}
		if i < g.cfg.Shields.Health-1 && g.shields[0].Health != g.cfg.Shields.Health-1-i {
			t.Fatalf("health = %d after %d hits", g.shields[0].Health, i+1)
		}
	}

	if len(g.shields) != blocks-1 {
		t.Errorf("blocks = %d, expected %d", len(g.shields), blocks-1)
	}
	if g.Lives() != g.cfg.Player.Lives {
		t.Error("shielded shots must not reach the player")
	}
}

func TestPlayerHitLosesLife(t *testing.T) {
	g, l := newGame(t, nil)
	g.shields = nil
	p := g.PlayerBounds()

	for range g.cfg.Player.Lives {
		g.fleetBullets = []Bullet{{X: p.CenterX(), Y: p.Y}}
		g.updateFleetBullets(0)
	}

	if g.Lives() != 0 || g.Running() {
		t.Errorf("lives = %d running = %v", g.Lives(), g.Running())
	}
	if l.gameOvers != 1 {
		t.Errorf("game over reported %d times, expected 1", l.gameOvers)
	}
}

func TestVolleyOnLastLifeStopsAtZero(t *testing.T) {
	g, l := newGame(t, nil)
	g.shields = nil
	g.lives = 1
	p := g.PlayerBounds()
	for range 3 {
		g.fleetBullets = append(g.fleetBullets, Bullet{X: p.CenterX(), Y: p.Y})
	}

	g.Update(frame)

	if g.Lives() != 0 {
		t.Errorf("lives = %d, expected 0", g.Lives())
	}
	if hud := g.Render().HUD(); hud.Lives != 0 {
		t.Errorf("hud lives = %d, expected 0", hud.Lives)
	}
	if l.gameOvers != 1 {
		t.Errorf("game over reported %d times, expected 1", l.gameOvers)
	}
}

func TestLastAlienStartsNextWave(t *testing.T) {
	g, l := newGame(t, nil)

	for i := range g.fleet {
		g.fleet[i].Alive = false
	}
	last := &g.fleet[len(g.fleet)-1]
	last.Alive = true
	g.alive = 1
	g.fleetBullets = []Bullet{{X: 1, Y: 1}}

	g.playerBullets = []Bullet{{X: last.X + 1, Y: last.Y + 1}}
	g.Update(frame)

	if g.Wave() != 2 {
		t.Errorf("wave = %d, expected 2", g.Wave())
	}
	if len(g.fleet) != g.cfg.Fleet.Rows*g.cfg.Fleet.Cols || g.AliveCount() != len(g.fleet) {
		t.Errorf("new fleet = %d alive of %d", g.AliveCount(), len(g.fleet))
	}
	if len(g.fleetBullets) != 0 || len(g.playerBullets) != 0 {
		t.Error("bullets should be cleared between waves")
	}
	if want := AlienOctopus.Points() + g.cfg.Waves.Bonus; g.Score() != want {
		t.Errorf("score = %d, expected %d", g.Score(), want)
	}
	if l.gameOvers != 0 {
		t.Error("wave clear must not end the run")
	}
}

func TestRenderIdempotent(t *testing.T) {
	g, _ := newGame(t, core.NewRand(5))
	g.HandleInput(core.Press(core.IntentPrimary))
	for range 120 {
		g.Update(frame)
	}

	f1 := g.Render()
	f2 := g.Render()
	if !reflect.DeepEqual(f1, f2) {
		t.Error("two renders without update differ")
	}
}
