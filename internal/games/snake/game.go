// Package snake implements the classic grid Snake simulation.
package snake

import (
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// ID is the registry identifier.
const ID = "snake"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// Game implements the Snake simulation.
type Game struct {
	sim.Base

	cfg config.SnakeConfig
	rng core.Rand

	// Snake state
	body          []Point // Head at index 0
	direction     Direction
	nextDir       Direction // Buffered direction for next step
	pendingGrowth int

	food    Point
	hasFood bool
	eaten   int

	acc      float64 // seconds accumulated toward the next step
	interval float64
}

// New creates a Snake simulation.
func New(cfg config.SnakeConfig, rng core.Rand) *Game {
	g := &Game{cfg: cfg, rng: rng}
	g.Init()
	return g
}

func init() {
	registry.Register(ID, 0, func(cfg config.Config, rng core.Rand) sim.Simulation {
		return New(cfg.Snake, rng)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Instructions returns the pre-run help text.
func (g *Game) Instructions() []string {
	return []string{
		"Steer the snake with the arrow keys or WASD.",
		"Eat food to grow and score points.",
		"Each meal makes the snake a little faster.",
		"Hitting a wall or your own tail ends the run.",
	}
}

// Init places a fresh snake moving right and spawns the first food.
func (g *Game) Init() {
	g.Base.Reset()

	length := max(1, g.cfg.InitialLength)
	headX := length + 2
	y := g.cfg.Height / 2

	g.body = make([]Point, 0, length)
	for i := range length {
		g.body = append(g.body, Point{X: headX - i, Y: y})
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.pendingGrowth = 0
	g.eaten = 0
	g.acc = 0
	g.interval = g.cfg.BaseInterval

	g.placeFood()
}

// HandleInput buffers a direction change for the next step.
func (g *Game) HandleInput(in core.Input) {
	if in.Released {
		return
	}

	var dir Direction
	switch in.Intent {
	case core.IntentUp:
		dir = DirUp
	case core.IntentDown:
		dir = DirDown
	case core.IntentLeft:
		dir = DirLeft
	case core.IntentRight:
		dir = DirRight
	default:
		return
	}

	// Prevent instant reversal
	if !isOpposite(dir, g.direction) {
		g.nextDir = dir
	}
}

// Update advances the snake by however many whole steps fit into dt.
func (g *Game) Update(dt float64) {
	if !g.Active() || dt <= 0 {
		return
	}

	g.acc += dt
	for g.acc >= g.interval && g.Running() {
		g.acc -= g.interval
		g.step()
	}
}

// step moves the snake one cell in the buffered direction.
func (g *Game) step() {
	g.direction = g.nextDir

	head := g.body[0].Add(g.direction.Delta())

	if head.X < 0 || head.X >= g.cfg.Width || head.Y < 0 || head.Y >= g.cfg.Height {
		g.TriggerGameOver()
		return
	}
	// The tail counts: the snake may not chase its own tail.
	if g.occupied(head) {
		g.TriggerGameOver()
		return
	}

	g.body = append(g.body, Point{})
	copy(g.body[1:], g.body)
	g.body[0] = head

	if g.hasFood && head == g.food {
		g.pendingGrowth++
		g.eaten++
		g.interval = max(g.cfg.MinInterval, g.cfg.BaseInterval-g.cfg.IntervalStep*float64(g.eaten))
		g.placeFood()
		g.AddScore(g.cfg.FoodValue)
		g.Emit(core.SoundEat)
	}

	if g.pendingGrowth > 0 {
		g.pendingGrowth--
	} else {
		g.body = g.body[:len(g.body)-1]
	}
}

// placeFood picks a random free cell, falling back to a row-major scan.
// On a full board no food is placed.
func (g *Game) placeFood() {
	w, h := g.cfg.Width, g.cfg.Height
	for range g.cfg.FoodAttempts {
		p := Point{X: g.rng.Intn(w), Y: g.rng.Intn(h)}
		if !g.occupied(p) {
			g.food = p
			g.hasFood = true
			return
		}
	}

	for y := range h {
		for x := range w {
			p := Point{X: x, Y: y}
			if !g.occupied(p) {
				g.food = p
				g.hasFood = true
				return
			}
		}
	}

	g.hasFood = false
}

// occupied checks if the snake covers the given cell.
func (g *Game) occupied(p Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Length returns the number of body cells.
func (g *Game) Length() int { return len(g.body) }

// Interval returns the current seconds per step.
func (g *Game) Interval() float64 { return g.interval }

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() Point {
	switch d {
	case DirUp:
		return Point{Y: -1}
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	default:
		return Point{X: 1}
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
