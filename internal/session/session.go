// Package session hosts one arcade session: the menu, the instructions
// screen and the lifecycle of the active simulation run.
package session

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// State is the session lifecycle state.
type State int

const (
	StateMenu State = iota
	StateInstructions
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateInstructions:
		return "instructions"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Controller owns the session state machine and at most one simulation.
// It is not safe for concurrent use; the host serialises calls.
type Controller struct {
	cfg       config.Config
	rng       core.Rand
	store     ScoreStore
	audio     AudioSink
	observers []Observer
	logger    *log.Logger

	games  []registry.GameInfo
	cursor int

	state        State
	selected     string
	title        string
	instructions []string

	active sim.Simulation
	runID  string
	clock  *Clock
	held   core.Held // intents forwarded as pressed to the active run

	overPending bool
	overScore   int

	lastFrame sim.Frame
	lastScore int
	best      int
	newHigh   bool
}

// New creates a controller in the Menu state.
func New(runtime core.RuntimeConfig, opts ...Option) *Controller {
	c := &Controller{
		cfg:   config.Default(),
		games: registry.List(),
		clock: NewClock(runtime.StepSeconds()),
		held:  core.NewHeld(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = core.NewRand(runtime.Seed)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Active returns the owned simulation, or nil outside Playing and Paused.
func (c *Controller) Active() sim.Simulation { return c.active }

// Select picks a game from the menu and shows its instructions.
func (c *Controller) Select(gameID string) {
	if c.state != StateMenu {
		c.ignored("select")
		return
	}
	if !registry.Exists(gameID) {
		c.logger.Debug("unknown game", "game", gameID)
		return
	}

	// A throwaway instance supplies the title and help text; the shared
	// random source is not consumed.
	preview, err := registry.Create(gameID, c.cfg, core.NewRand(1))
	if err != nil {
		c.logger.Debug("unknown game", "game", gameID, "error", err)
		return
	}

	for i, g := range c.games {
		if g.ID == gameID {
			c.cursor = i
		}
	}
	c.selected = gameID
	c.title = preview.Title()
	c.instructions = preview.Instructions()
	c.transition(StateInstructions)
	c.play(core.SoundSelect)
}

// ConfirmStart begins a run from the instructions screen, or a fresh run
// of the same game from the game-over screen.
func (c *Controller) ConfirmStart() {
	switch c.state {
	case StateInstructions:
		c.play(core.SoundConfirm)
		c.startRun()
	case StateGameOver:
		c.startRun()
	default:
		c.ignored("confirm")
	}
}

// Pause freezes the active run.
func (c *Controller) Pause() {
	if c.state != StatePlaying {
		c.ignored("pause")
		return
	}
	c.releaseHeld()
	c.active.Pause()
	c.transition(StatePaused)
	c.play(core.SoundPause)
}

// Resume continues a paused run without a catch-up burst.
func (c *Controller) Resume() {
	if c.state != StatePaused {
		c.ignored("resume")
		return
	}
	c.active.Resume()
	c.clock.Resume()
	c.transition(StatePlaying)
	c.play(core.SoundPause)
}

// Abort returns to the menu, discarding any run in progress.
func (c *Controller) Abort() {
	if c.state == StateMenu {
		c.ignored("abort")
		return
	}
	if c.active != nil {
		c.logger.Debug("run aborted", "game", c.selected, "run", c.runID, "score", c.active.Score())
		c.stopRun()
	}
	c.lastFrame = nil
	c.transition(StateMenu)
}

// Tick advances the active run by a frame delta in seconds.
func (c *Controller) Tick(dt float64) {
	if c.state != StatePlaying {
		return
	}

	step := c.clock.Step()
	for range c.clock.Advance(dt) {
		c.active.Update(step)
		if c.overPending {
			c.finishRun()
			return
		}
	}
}

// HandleInput routes a key event according to the current state.
func (c *Controller) HandleInput(in core.Input) {
	if c.state == StatePlaying {
		c.handlePlaying(in)
		return
	}
	if in.Released {
		return
	}

	switch c.state {
	case StateMenu:
		c.handleMenu(in.Intent)
	case StateInstructions:
		switch in.Intent {
		case core.IntentConfirm, core.IntentPrimary:
			c.ConfirmStart()
		case core.IntentCancel:
			c.Abort()
		}
	case StatePaused:
		switch in.Intent {
		case core.IntentPause, core.IntentConfirm:
			c.Resume()
		case core.IntentCancel:
			c.Abort()
		}
	case StateGameOver:
		switch in.Intent {
		case core.IntentConfirm, core.IntentPrimary:
			c.ConfirmStart()
		case core.IntentCancel:
			c.Abort()
		}
	}
}

func (c *Controller) handleMenu(intent core.Intent) {
	n := len(c.games)
	if n == 0 {
		return
	}
	switch intent {
	case core.IntentUp:
		c.cursor = (c.cursor - 1 + n) % n
	case core.IntentDown:
		c.cursor = (c.cursor + 1) % n
	case core.IntentConfirm, core.IntentPrimary:
		c.Select(c.games[c.cursor].ID)
	}
}

func (c *Controller) handlePlaying(in core.Input) {
	if !in.Released {
		switch in.Intent {
		case core.IntentPause:
			c.Pause()
			return
		case core.IntentCancel:
			c.Abort()
			return
		}
	}

	c.held.Apply(in)
	c.active.HandleInput(in)
	if c.overPending {
		c.finishRun()
	}
}

// releaseHeld sends key-ups for every intent the run still sees as held.
func (c *Controller) releaseHeld() {
	for _, i := range []core.Intent{
		core.IntentUp, core.IntentDown, core.IntentLeft, core.IntentRight,
		core.IntentPrimary, core.IntentSecondary,
	} {
		if c.held.Has(i) {
			c.active.HandleInput(core.Release(i))
		}
	}
	c.held.Clear()
}

func (c *Controller) startRun() {
	s, err := registry.Create(c.selected, c.cfg, c.rng)
	if err != nil {
		c.logger.Error("cannot create simulation", "game", c.selected, "error", err)
		c.transition(StateMenu)
		return
	}

	s.SetListener(listener{c})
	s.Init()
	s.Start()

	c.active = s
	c.runID = uuid.NewString()
	c.clock.Reset()
	c.held.Clear()
	c.overPending = false
	c.lastFrame = nil
	c.newHigh = false

	c.transition(StatePlaying)
	c.play(core.SoundStart)
	c.logger.Debug("run started", "game", c.selected, "run", c.runID)
	for _, o := range c.observers {
		o.RunStarted(c.selected, c.runID)
	}
}

// stopRun stops the active simulation and keeps only its final frame.
func (c *Controller) stopRun() {
	c.lastFrame = c.active.Render()
	c.active.Stop()
	c.active.SetListener(nil)
	c.active = nil
	c.held.Clear()
	c.overPending = false
}

// finishRun records the score of a run that reported game over.
func (c *Controller) finishRun() {
	score := c.overScore
	c.lastScore = score

	best := 0
	if c.store != nil {
		b, err := c.store.Get(c.selected)
		if err != nil {
			c.logger.Warn("cannot read best score", "game", c.selected, "error", err)
		} else {
			best = b
		}
	}

	c.newHigh = score > best
	if c.newHigh {
		best = score
		if c.store != nil {
			if err := c.store.Set(c.selected, score); err != nil {
				c.logger.Warn("cannot save best score", "game", c.selected, "error", err)
			}
		}
		c.logger.Info("new high score", "game", c.selected, "score", score)
		c.play(core.SoundHighScore)
	} else {
		c.play(core.SoundGameOver)
	}
	c.best = best

	c.stopRun()
	c.transition(StateGameOver)

	result := RunResult{GameID: c.selected, RunID: c.runID, Score: score, Best: best, NewHigh: c.newHigh}
	for _, o := range c.observers {
		o.RunEnded(result)
	}
}

func (c *Controller) transition(to State) {
	c.logger.Debug("session transition", "from", c.state, "to", to)
	c.state = to
}

func (c *Controller) ignored(op string) {
	c.logger.Debug("transition ignored", "op", op, "state", c.state)
}

func (c *Controller) play(s core.Sound) {
	if c.audio != nil {
		c.audio.Play(s)
	}
}

// listener adapts the controller to sim.Listener.
type listener struct {
	c *Controller
}

func (l listener) OnSound(s core.Sound) { l.c.play(s) }

func (l listener) OnGameOver(score int) {
	l.c.overPending = true
	l.c.overScore = score
}
