package snake

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// fixedRand always returns the same values, forcing the scan fallback when
// that cell is taken.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(n int) int   { return r.n % n }
func (r fixedRand) Float64() float64 { return r.f }

type listener struct {
	sounds    []core.Sound
	gameOvers int
}

func (l *listener) OnSound(s core.Sound) { l.sounds = append(l.sounds, s) }
func (l *listener) OnGameOver(int)       { l.gameOvers++ }

func newGame(t *testing.T) (*Game, *listener) {
	t.Helper()
	g := New(config.Default().Snake, core.NewRand(12345))
	l := &listener{}
	g.SetListener(l)
	g.Start()
	return g, l
}

func TestInitialState(t *testing.T) {
	g, _ := newGame(t)

	want := []Point{{5, 12}, {4, 12}, {3, 12}}
	if !reflect.DeepEqual(g.body, want) {
		t.Errorf("initial body = %v, expected %v", g.body, want)
	}
	if g.direction != DirRight {
		t.Errorf("initial direction = %v, expected right", g.direction)
	}
	if !g.hasFood || g.occupied(g.food) {
		t.Errorf("initial food %v invalid", g.food)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.Default().Snake
	g1 := New(cfg, core.NewRand(7))
	g2 := New(cfg, core.NewRand(7))
	g1.Start()
	g2.Start()

	for i := range 200 {
		if i == 20 {
			g1.HandleInput(core.Press(core.IntentDown))
			g2.HandleInput(core.Press(core.IntentDown))
		}
		if i == 60 {
			g1.HandleInput(core.Press(core.IntentLeft))
			g2.HandleInput(core.Press(core.IntentLeft))
		}
		g1.Update(1.0 / 60)
		g2.Update(1.0 / 60)
	}

	if !reflect.DeepEqual(g1.Render(), g2.Render()) {
		t.Error("same seed and inputs produced different frames")
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g, _ := newGame(t)

	g.HandleInput(core.Press(core.IntentLeft))
	if g.nextDir == DirLeft {
		t.Error("Should not allow immediate reversal from Right to Left")
	}

	g.HandleInput(core.Press(core.IntentDown))
	if g.nextDir != DirDown {
		t.Errorf("Expected nextDir to be Down, got %v", g.nextDir)
	}

	// Reversal is judged against the current direction, not the buffered one.
	g.HandleInput(core.Press(core.IntentUp))
	if g.nextDir != DirUp {
		t.Errorf("Expected nextDir to be Up, got %v", g.nextDir)
	}

	g.HandleInput(core.Release(core.IntentDown))
	if g.nextDir != DirUp {
		t.Error("key-up events must not steer")
	}
}

func TestEatFoodGrows(t *testing.T) {
	g, l := newGame(t)

	// Food directly in front of the head on a 20x25 board.
	g.food = Point{X: 6, Y: 12}
	g.hasFood = true

	g.Update(g.cfg.BaseInterval)

	if g.Length() != 4 {
		t.Errorf("length = %d, expected 4", g.Length())
	}
	if g.body[0] != (Point{6, 12}) {
		t.Errorf("head = %v, expected (6,12)", g.body[0])
	}
	if g.Score() != g.cfg.FoodValue {
		t.Errorf("score = %d, expected %d", g.Score(), g.cfg.FoodValue)
	}
	if len(l.sounds) != 1 || l.sounds[0] != core.SoundEat {
		t.Errorf("sounds = %v, expected [eat]", l.sounds)
	}
	if g.occupied(g.food) {
		t.Errorf("food relocated onto the snake at %v", g.food)
	}
	if want := g.cfg.BaseInterval - g.cfg.IntervalStep; g.Interval() != want {
		t.Errorf("interval = %v, expected %v", g.Interval(), want)
	}

	// Next step without food keeps the length.
	g.food = Point{X: 0, Y: 0}
	g.Update(g.Interval())
	if g.Length() != 4 {
		t.Errorf("length after plain step = %d, expected 4", g.Length())
	}
}

func TestIntervalFloor(t *testing.T) {
	g, _ := newGame(t)
	g.eaten = 1000
	g.body = []Point{{1, 1}}
	g.food = Point{2, 1}
	g.hasFood = true
	g.Update(g.interval)

	if g.Interval() != g.cfg.MinInterval {
		t.Errorf("interval = %v, expected floor %v", g.Interval(), g.cfg.MinInterval)
	}
}

func TestOutOfBoundsEndsRun(t *testing.T) {
	sizes := []struct{ w, h int }{
		{20, 25},
		{6, 6},
		{8, 3},
		{40, 12},
		{12, 40},
	}

	for _, size := range sizes {
		walls := []struct {
			name string
			head Point
			dir  Direction
		}{
			{"right wall", Point{size.w - 1, size.h / 2}, DirRight},
			{"left wall", Point{0, size.h / 2}, DirLeft},
			{"top wall", Point{size.w / 2, 0}, DirUp},
			{"bottom wall", Point{size.w / 2, size.h - 1}, DirDown},
		}

		for _, tt := range walls {
			t.Run(fmt.Sprintf("%dx%d %s", size.w, size.h, tt.name), func(t *testing.T) {
				cfg := config.Default().Snake
				cfg.Width, cfg.Height = size.w, size.h
				g := New(cfg, core.NewRand(12345))
				l := &listener{}
				g.SetListener(l)
				g.Start()

				g.AddScore(70)
				g.body = []Point{tt.head}
				g.direction = tt.dir
				g.nextDir = tt.dir

				g.Update(g.interval)

				if g.Running() {
					t.Error("run should end on leaving the board")
				}
				if l.gameOvers != 1 {
					t.Errorf("game over reported %d times, expected 1", l.gameOvers)
				}
				if g.Score() != 70 {
					t.Errorf("score = %d after the final step, expected 70", g.Score())
				}

				// Further updates are no-ops.
				for range 5 {
					g.Update(10)
				}
				if l.gameOvers != 1 {
					t.Error("game over reported again")
				}
				if g.Score() != 70 {
					t.Errorf("score changed to %d after the run ended", g.Score())
				}
			})
		}
	}
}

func TestSelfCollision(t *testing.T) {
	g, l := newGame(t)

	// Moving right puts the head onto (6,5), the tail cell.
	g.body = []Point{{5, 5}, {5, 6}, {6, 6}, {6, 5}}
	g.direction = DirRight
	g.nextDir = DirRight

	g.step()

	if g.Running() || l.gameOvers != 1 {
		t.Error("Game should be over after running into the tail")
	}
}

func TestFoodPlacementAvoidsSnake(t *testing.T) {
	cfg := config.Default().Snake
	g := New(cfg, fixedRand{n: 0})

	// Cover the first row so the fixed sample (0,0) is always taken.
	g.body = g.body[:0]
	for x := range cfg.Width {
		g.body = append(g.body, Point{X: x, Y: 0})
	}
	g.placeFood()

	if !g.hasFood {
		t.Fatal("expected food on a non-full board")
	}
	if g.food != (Point{0, 1}) {
		t.Errorf("scan fallback placed food at %v, expected (0,1)", g.food)
	}
}

func TestFoodPlacementFullBoard(t *testing.T) {
	cfg := config.Default().Snake
	cfg.Width, cfg.Height = 6, 2
	g := New(cfg, core.NewRand(1))

	g.body = g.body[:0]
	for y := range cfg.Height {
		for x := range cfg.Width {
			g.body = append(g.body, Point{X: x, Y: y})
		}
	}
	g.placeFood()

	if g.hasFood {
		t.Errorf("full board should have no food, got %v", g.food)
	}
	if f := g.Render().(Frame); f.HasFood {
		t.Error("frame should report no food")
	}
}

func TestPausedDoesNotMove(t *testing.T) {
	g, _ := newGame(t)
	before := g.Render()

	g.Pause()
	g.Update(1)
	if !reflect.DeepEqual(before, g.Render()) {
		t.Error("paused simulation moved")
	}

	g.Resume()
	g.Update(g.interval)
	if reflect.DeepEqual(before, g.Render()) {
		t.Error("resumed simulation did not move")
	}
}

func TestRenderIdempotent(t *testing.T) {
	g, _ := newGame(t)
	g.Update(0.5)

	f1 := g.Render()
	f2 := g.Render()
	if !reflect.DeepEqual(f1, f2) {
		t.Error("two renders without update differ")
	}

	// Mutating a frame must not leak into the simulation.
	f1.(Frame).Body[0] = Point{-5, -5}
	if g.body[0] == (Point{-5, -5}) {
		t.Error("frame shares body storage with the simulation")
	}
}

func TestScenarioFoodTwoCellsAhead(t *testing.T) {
	g, _ := newGame(t)
	if g.cfg.Width != 20 || g.cfg.Height != 25 || g.Length() != 3 {
		t.Fatalf("unexpected defaults %dx%d len %d", g.cfg.Width, g.cfg.Height, g.Length())
	}

	g.food = g.body[0].Add(Point{X: 2})
	g.hasFood = true

	g.Update(g.cfg.BaseInterval) // first step: plain move
	if g.Length() != 3 || g.Score() != 0 {
		t.Fatalf("after one step: len %d score %d", g.Length(), g.Score())
	}
	g.Update(g.Interval()) // second step: eat

	if g.Length() != 4 {
		t.Errorf("length = %d, expected 4", g.Length())
	}
	if g.Score() != g.cfg.FoodValue {
		t.Errorf("score = %d, expected %d", g.Score(), g.cfg.FoodValue)
	}
}
