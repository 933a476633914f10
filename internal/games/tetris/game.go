// Package tetris implements the falling-block puzzle simulation.
package tetris

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// ID is the registry identifier.
const ID = "tetris"

// lineScores is the base award per lock, indexed by lines cleared.
var lineScores = [...]int{0, 100, 300, 500, 800}

// kicks are the horizontal offsets tried, in order, when rotating.
var kicks = [...]int{0, -1, 1, -2, 2}

// Game implements the Tetris simulation.
type Game struct {
	sim.Base

	cfg config.TetrisConfig
	rng core.Rand

	held   core.Held
	board  Board
	active Piece
	next   PieceType

	level int
	lines int
	acc   float64
}

// New creates a Tetris simulation.
func New(cfg config.TetrisConfig, rng core.Rand) *Game {
	g := &Game{cfg: cfg, rng: rng, held: core.NewHeld()}
	g.Init()
	return g
}

func init() {
	registry.Register(ID, 2, func(cfg config.Config, rng core.Rand) sim.Simulation {
		return New(cfg.Tetris, rng)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Instructions returns the pre-run help text.
func (g *Game) Instructions() []string {
	return []string{
		"Left/Right move the piece, Up rotates it.",
		"Hold Down to soft drop; Space hard drops.",
		"Fill a row to clear it. More rows at once score more.",
		"Every 10 lines the level rises and pieces fall faster.",
	}
}

// Init clears the board and spawns the first piece.
func (g *Game) Init() {
	g.Base.Reset()
	g.held.Clear()

	g.board = NewBoard(g.cfg.Cols, g.cfg.Rows)
	g.level = 1
	g.lines = 0
	g.acc = 0
	g.next = g.randomPiece()
	g.spawn()
}

func (g *Game) randomPiece() PieceType {
	return PieceType(g.rng.Intn(int(pieceCount)))
}

// spawn brings the next piece in at the top. A blocked spawn ends the run.
func (g *Game) spawn() {
	g.active = Piece{Type: g.next, X: g.spawnX()}
	g.next = g.randomPiece()
	if !g.board.Fits(g.active) {
		g.TriggerGameOver()
	}
}

// spawnX centers the 4-wide piece box on the board.
func (g *Game) spawnX() int {
	return (g.cfg.Cols - 4) / 2
}

// HandleInput moves, rotates or drops the active piece.
func (g *Game) HandleInput(in core.Input) {
	g.held.Apply(in)
	if in.Released || !g.Active() {
		return
	}

	switch in.Intent {
	case core.IntentLeft:
		g.shift(-1)
	case core.IntentRight:
		g.shift(1)
	case core.IntentUp:
		g.rotate()
	case core.IntentPrimary:
		g.hardDrop()
	}
}

// shift moves the piece sideways if the target is free.
func (g *Game) shift(dx int) bool {
	moved := g.active.Moved(dx, 0)
	if !g.board.Fits(moved) {
		return false
	}
	g.active = moved
	g.Emit(core.SoundMove)
	return true
}

// rotate turns the piece clockwise, trying each kick offset in order.
func (g *Game) rotate() bool {
	rotated := g.active.Rotated()
	for _, dx := range kicks {
		candidate := rotated.Moved(dx, 0)
		if g.board.Fits(candidate) {
			g.active = candidate
			g.Emit(core.SoundMove)
			return true
		}
	}
	return false
}

// hardDrop drops the piece to the floor and locks it at once.
func (g *Game) hardDrop() {
	rows := 0
	for g.board.Fits(g.active.Moved(0, 1)) {
		g.active = g.active.Moved(0, 1)
		rows++
	}
	g.AddScore(rows * g.cfg.HardDropPoints)
	g.lock()
}

// Update applies gravity for dt seconds.
func (g *Game) Update(dt float64) {
	if !g.Active() || dt <= 0 {
		return
	}

	interval := g.GravityInterval()
	if g.held.Has(core.IntentDown) {
		interval /= g.cfg.SoftDropFactor
	}

	// Time banked under normal gravity must not turn into a burst of
	// soft-drop rows.
	g.acc = min(g.acc, interval)
	g.acc += dt
	for g.acc >= interval && g.Running() {
		g.acc -= interval
		g.fall()
	}
}

// GravityInterval returns seconds per row at the current level.
func (g *Game) GravityInterval() float64 {
	return max(g.cfg.MinInterval, g.cfg.BaseInterval-float64(g.level-1)*g.cfg.IntervalStep)
}

// fall moves the piece down one row or locks it.
func (g *Game) fall() {
	if down := g.active.Moved(0, 1); g.board.Fits(down) {
		g.active = down
		return
	}
	g.lock()
}

// lock writes the piece into the board, scores cleared lines and spawns
// the next piece.
func (g *Game) lock() {
	g.board.Place(g.active)
	g.Emit(core.SoundDrop)

	n := g.board.ClearLines()
	if n > 0 {
		g.AddScore(lineScores[n] * g.level)
		g.lines += n
		g.level = 1 + g.lines/g.cfg.LinesPerLevel
		g.Emit(core.SoundLine)
	}

	g.acc = 0
	g.spawn()
}

// Level returns the current level, starting at 1.
func (g *Game) Level() int { return g.level }

// Lines returns the total lines cleared.
func (g *Game) Lines() int { return g.lines }
