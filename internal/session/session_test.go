package session

import (
	"errors"
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	_ "github.com/vovakirdan/retro-arcade/internal/games/snake"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

const fakeID = "fake"

// fakeSim records everything the controller does to it.
type fakeSim struct {
	sim.Base
	updates int
	inputs  []core.Input
	stopped bool
}

type fakeFrame struct{ score int }

func (f fakeFrame) HUD() sim.HUD { return sim.HUD{Score: f.score} }

func (f *fakeSim) ID() string             { return fakeID }
func (f *fakeSim) Title() string          { return "Fake" }
func (f *fakeSim) Instructions() []string { return []string{"do nothing"} }
func (f *fakeSim) Init()                  { f.Base.Reset() }
func (f *fakeSim) Render() sim.Frame      { return fakeFrame{f.Score()} }
func (f *fakeSim) Stop()                  { f.Base.Stop(); f.stopped = true }

func (f *fakeSim) Update(float64) {
	if f.Active() {
		f.updates++
	}
}

func (f *fakeSim) HandleInput(in core.Input) {
	f.inputs = append(f.inputs, in)
	if !in.Released && in.Intent == core.IntentSecondary {
		f.Emit(core.SoundShoot)
	}
}

// end finishes the run with the given score.
func (f *fakeSim) end(score int) {
	f.AddScore(score)
	f.TriggerGameOver()
}

var fakes []*fakeSim

func init() {
	registry.Register(fakeID, 99, func(config.Config, core.Rand) sim.Simulation {
		f := &fakeSim{}
		fakes = append(fakes, f)
		return f
	})
}

func lastFake() *fakeSim { return fakes[len(fakes)-1] }

type memStore struct {
	best   map[string]int
	sets   int
	getErr error
}

func (m *memStore) Get(id string) (int, error) {
	if m.getErr != nil {
		return 0, m.getErr
	}
	return m.best[id], nil
}

func (m *memStore) Set(id string, score int) error {
	m.best[id] = score
	m.sets++
	return nil
}

type audio struct{ sounds []core.Sound }

func (a *audio) Play(s core.Sound) { a.sounds = append(a.sounds, s) }

func (a *audio) last() core.Sound {
	if len(a.sounds) == 0 {
		return ""
	}
	return a.sounds[len(a.sounds)-1]
}

type observer struct {
	started []string
	ended   []RunResult
}

func (o *observer) RunStarted(_, runID string) { o.started = append(o.started, runID) }
func (o *observer) RunEnded(r RunResult)       { o.ended = append(o.ended, r) }

type fixture struct {
	c     *Controller
	store *memStore
	audio *audio
	obs   *observer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		store: &memStore{best: map[string]int{}},
		audio: &audio{},
		obs:   &observer{},
	}
	f.c = New(core.DefaultConfig(),
		WithStore(f.store),
		WithAudio(f.audio),
		WithObserver(f.obs),
		WithRand(core.NewRand(1)),
	)
	return f
}

// playing brings the fixture's controller into Playing on the fake game.
func (f fixture) playing(t *testing.T) *fakeSim {
	t.Helper()
	f.c.Select(fakeID)
	f.c.ConfirmStart()
	if f.c.State() != StatePlaying {
		t.Fatalf("state = %v, expected playing", f.c.State())
	}
	return lastFake()
}

func TestTransitions(t *testing.T) {
	f := newFixture(t)
	c := f.c

	if c.State() != StateMenu || c.Active() != nil {
		t.Fatal("controller should start in the menu with no simulation")
	}

	c.Select(fakeID)
	if c.State() != StateInstructions || f.audio.last() != core.SoundSelect {
		t.Fatalf("after select: %v / %q", c.State(), f.audio.last())
	}
	if c.Active() != nil {
		t.Error("instructions must not own a simulation")
	}

	c.ConfirmStart()
	if c.State() != StatePlaying || c.Active() == nil {
		t.Fatalf("after confirm: %v", c.State())
	}
	want := []core.Sound{core.SoundSelect, core.SoundConfirm, core.SoundStart}
	for i, s := range want {
		if f.audio.sounds[i] != s {
			t.Errorf("sound %d = %q, expected %q", i, f.audio.sounds[i], s)
		}
	}
	s := lastFake()
	if !s.Running() {
		t.Error("simulation should be started")
	}

	c.Pause()
	if c.State() != StatePaused || !s.Paused() || f.audio.last() != core.SoundPause {
		t.Fatalf("after pause: %v", c.State())
	}

	c.Resume()
	if c.State() != StatePlaying || s.Paused() {
		t.Fatalf("after resume: %v", c.State())
	}

	c.Abort()
	if c.State() != StateMenu || c.Active() != nil {
		t.Fatalf("after abort: %v", c.State())
	}
	if !s.stopped {
		t.Error("abort should stop the simulation")
	}
	if len(f.obs.ended) != 0 {
		t.Error("aborted runs are not reported as ended")
	}
}

func TestInvalidTransitionsIgnored(t *testing.T) {
	f := newFixture(t)
	c := f.c

	c.Pause()
	c.Resume()
	c.ConfirmStart()
	c.Abort()
	c.Tick(1)
	if c.State() != StateMenu || len(f.audio.sounds) != 0 {
		t.Fatalf("menu reacted to invalid ops: %v %v", c.State(), f.audio.sounds)
	}

	c.Select("pacman")
	if c.State() != StateMenu {
		t.Error("unknown game should be ignored")
	}

	f.playing(t)
	c.Select(fakeID)
	c.Resume()
	c.ConfirmStart()
	if c.State() != StatePlaying {
		t.Errorf("state = %v, expected playing", c.State())
	}
}

func TestAbortFromEveryState(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f fixture, t *testing.T)
	}{
		{"instructions", func(f fixture, _ *testing.T) { f.c.Select(fakeID) }},
		{"playing", func(f fixture, t *testing.T) { f.playing(t) }},
		{"paused", func(f fixture, t *testing.T) { f.playing(t); f.c.Pause() }},
		{"gameover", func(f fixture, t *testing.T) { f.playing(t).end(1); f.c.Tick(1.0 / 60) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f, t)
			f.c.Abort()
			if f.c.State() != StateMenu || f.c.Active() != nil {
				t.Errorf("state = %v active = %v", f.c.State(), f.c.Active())
			}
		})
	}
}

func TestGameOverHighScore(t *testing.T) {
	f := newFixture(t)
	c := f.c

	s := f.playing(t)
	s.end(120)
	c.Tick(1.0 / 60)

	if c.State() != StateGameOver {
		t.Fatalf("state = %v, expected gameover", c.State())
	}
	if c.Active() != nil {
		t.Error("game over must release the simulation")
	}
	if f.store.best[fakeID] != 120 || f.audio.last() != core.SoundHighScore {
		t.Errorf("best = %d sound = %q", f.store.best[fakeID], f.audio.last())
	}
	v := c.View()
	if !v.NewHigh || v.Score != 120 || v.Best != 120 {
		t.Errorf("view = %+v", v)
	}
	if v.Frame == nil || v.Frame.HUD().Score != 120 {
		t.Error("game-over view should keep the final frame")
	}

	// A lower score on the next run plays the ordinary game-over sound.
	c.ConfirmStart()
	if c.State() != StatePlaying {
		t.Fatalf("state = %v, expected playing", c.State())
	}
	lastFake().end(50)
	c.Tick(1.0 / 60)

	if f.store.best[fakeID] != 120 || f.store.sets != 1 {
		t.Errorf("best = %d after %d sets, expected 120 after 1", f.store.best[fakeID], f.store.sets)
	}
	if f.audio.last() != core.SoundGameOver {
		t.Errorf("sound = %q, expected gameover", f.audio.last())
	}
	if v := c.View(); v.NewHigh || v.Best != 120 || v.Score != 50 {
		t.Errorf("view = %+v", v)
	}

	if len(f.obs.started) != 2 || len(f.obs.ended) != 2 {
		t.Fatalf("observer saw %d starts %d ends", len(f.obs.started), len(f.obs.ended))
	}
	if f.obs.started[0] == f.obs.started[1] {
		t.Error("each run needs its own run ID")
	}
	if !f.obs.ended[0].NewHigh || f.obs.ended[1].NewHigh {
		t.Error("observer results disagree with the store")
	}
}

func TestGameOverReportedOnce(t *testing.T) {
	f := newFixture(t)
	s := f.playing(t)

	s.end(10)
	s.TriggerGameOver()
	f.c.Tick(1)
	f.c.Tick(1)

	if len(f.obs.ended) != 1 {
		t.Errorf("run ended %d times, expected 1", len(f.obs.ended))
	}
}

func TestGameOverDuringInput(t *testing.T) {
	f := newFixture(t)
	s := f.playing(t)
	s.AddScore(5)

	// Simulations may end a run from HandleInput, e.g. a hard drop.
	s.TriggerGameOver()
	f.c.HandleInput(core.Press(core.IntentLeft))

	if f.c.State() != StateGameOver {
		t.Errorf("state = %v, expected gameover", f.c.State())
	}
}

func TestStoreErrorReadsAsZero(t *testing.T) {
	f := newFixture(t)
	f.store.getErr = errors.New("disk on fire")

	f.playing(t).end(7)
	f.c.Tick(1.0 / 60)

	if f.c.State() != StateGameOver {
		t.Fatalf("state = %v", f.c.State())
	}
	if f.audio.last() != core.SoundHighScore {
		t.Errorf("sound = %q, expected highscore against a zero best", f.audio.last())
	}
}

func TestZeroScoreIsNotHighScore(t *testing.T) {
	f := newFixture(t)
	f.playing(t).end(0)
	f.c.Tick(1.0 / 60)

	if f.audio.last() != core.SoundGameOver || f.store.sets != 0 {
		t.Errorf("sound = %q sets = %d", f.audio.last(), f.store.sets)
	}
}

func TestTickFixedSteps(t *testing.T) {
	f := newFixture(t)
	s := f.playing(t)

	f.c.Tick(1.0 / 60)
	if s.updates != 1 {
		t.Errorf("updates = %d, expected 1", s.updates)
	}

	// A long stall is clamped to MaxFrameTime.
	f.c.Tick(10)
	if got, limit := s.updates-1, int(MaxFrameTime*60); got > limit {
		t.Errorf("stall produced %d steps, expected at most %d", got, limit)
	}
}

func TestPauseWithholdsTicks(t *testing.T) {
	f := newFixture(t)
	s := f.playing(t)

	f.c.Pause()
	f.c.Tick(0.1)
	if s.updates != 0 {
		t.Error("paused run received updates")
	}

	f.c.Resume()
	f.c.Tick(0.2) // spans the pause; discarded
	if s.updates != 0 {
		t.Errorf("first delta after resume produced %d updates", s.updates)
	}
	f.c.Tick(1.0 / 60)
	if s.updates != 1 {
		t.Errorf("updates = %d, expected 1", s.updates)
	}
}

func TestInputRouting(t *testing.T) {
	f := newFixture(t)
	s := f.playing(t)

	f.c.HandleInput(core.Press(core.IntentLeft))
	f.c.HandleInput(core.Release(core.IntentLeft))
	f.c.HandleInput(core.Press(core.IntentSecondary))
	if len(s.inputs) != 3 {
		t.Fatalf("forwarded %d inputs, expected 3", len(s.inputs))
	}
	if f.audio.last() != core.SoundShoot {
		t.Error("simulation sounds should reach the audio sink")
	}
	f.c.HandleInput(core.Release(core.IntentSecondary))

	// Pause is handled by the controller. Held keys are released first.
	f.c.HandleInput(core.Press(core.IntentRight))
	f.c.HandleInput(core.Press(core.IntentPause))
	if f.c.State() != StatePaused {
		t.Fatalf("state = %v, expected paused", f.c.State())
	}
	lastIn := s.inputs[len(s.inputs)-1]
	if lastIn != core.Release(core.IntentRight) {
		t.Errorf("last input = %+v, expected Right released", lastIn)
	}
	n := len(s.inputs)

	f.c.HandleInput(core.Release(core.IntentRight))
	f.c.HandleInput(core.Press(core.IntentLeft))
	if len(s.inputs) != n {
		t.Error("paused run must not receive input")
	}

	f.c.HandleInput(core.Press(core.IntentConfirm))
	if f.c.State() != StatePlaying {
		t.Fatalf("confirm should resume, state = %v", f.c.State())
	}
	f.c.HandleInput(core.Press(core.IntentCancel))
	if f.c.State() != StateMenu {
		t.Errorf("cancel should abort, state = %v", f.c.State())
	}
}

func TestMenuNavigation(t *testing.T) {
	f := newFixture(t)
	c := f.c

	games := c.View().Games
	if len(games) < 2 || games[0].ID != "snake" || games[len(games)-1].ID != fakeID {
		t.Fatalf("menu = %+v", games)
	}

	c.HandleInput(core.Press(core.IntentUp)) // wraps to the last entry
	if c.View().Cursor != len(games)-1 {
		t.Errorf("cursor = %d, expected %d", c.View().Cursor, len(games)-1)
	}
	c.HandleInput(core.Press(core.IntentDown))
	if c.View().Cursor != 0 {
		t.Errorf("cursor = %d, expected 0", c.View().Cursor)
	}

	c.HandleInput(core.Press(core.IntentConfirm))
	v := c.View()
	if v.State != StateInstructions || v.GameID != "snake" || v.Title != "Snake" {
		t.Fatalf("view = %+v", v)
	}
	if len(v.Instructions) == 0 {
		t.Error("instructions missing")
	}

	c.HandleInput(core.Press(core.IntentPrimary))
	if c.State() != StatePlaying || c.Active().ID() != "snake" {
		t.Fatalf("state = %v", c.State())
	}
	if c.View().Frame == nil {
		t.Error("playing view should carry the live frame")
	}
}

func TestSnakeRunEndsThroughController(t *testing.T) {
	f := newFixture(t)
	c := f.c
	c.Select("snake")
	c.ConfirmStart()

	// Driving into the right wall ends the run within a few seconds.
	for range 60 * 10 {
		c.Tick(1.0 / 60)
		if c.State() != StatePlaying {
			break
		}
	}

	if c.State() != StateGameOver {
		t.Fatalf("state = %v, expected gameover", c.State())
	}
	if len(f.obs.ended) != 1 || f.obs.ended[0].GameID != "snake" {
		t.Errorf("ended = %+v", f.obs.ended)
	}
}
