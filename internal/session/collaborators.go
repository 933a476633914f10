package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// ScoreStore persists the best score per game.
type ScoreStore interface {
	Get(gameID string) (int, error)
	Set(gameID string, score int) error
}

// AudioSink voices symbolic sound events.
type AudioSink interface {
	Play(s core.Sound)
}

// RunResult describes a finished run.
type RunResult struct {
	GameID  string
	RunID   string
	Score   int
	Best    int
	NewHigh bool
}

// Observer is told about run boundaries. Aborted runs are reported as
// started but never ended.
type Observer interface {
	RunStarted(gameID, runID string)
	RunEnded(r RunResult)
}

// Option configures a Controller.
type Option func(*Controller)

// WithStore sets the best-score store. Without one, best scores are not
// persisted.
func WithStore(s ScoreStore) Option {
	return func(c *Controller) { c.store = s }
}

// WithAudio sets the audio consumer.
func WithAudio(a AudioSink) Option {
	return func(c *Controller) { c.audio = a }
}

// WithObserver adds a run observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) { c.observers = append(c.observers, o) }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithConfig sets the game configuration handed to every new run.
func WithConfig(cfg config.Config) Option {
	return func(c *Controller) { c.cfg = cfg }
}

// WithRand sets the random source shared by all runs.
func WithRand(r core.Rand) Option {
	return func(c *Controller) { c.rng = r }
}
