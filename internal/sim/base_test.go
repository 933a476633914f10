package sim

import (
	"testing"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

type recorder struct {
	sounds    []core.Sound
	gameOvers []int
}

func (r *recorder) OnSound(s core.Sound)  { r.sounds = append(r.sounds, s) }
func (r *recorder) OnGameOver(score int) { r.gameOvers = append(r.gameOvers, score) }

func TestAddScoreMonotonic(t *testing.T) {
	var b Base
	b.AddScore(10)
	b.AddScore(-5)
	b.AddScore(0)
	b.AddScore(3)

	if b.Score() != 13 {
		t.Errorf("Score() = %d, expected 13", b.Score())
	}
}

func TestTriggerGameOverOnce(t *testing.T) {
	rec := &recorder{}
	var b Base
	b.SetListener(rec)
	b.Start()
	b.AddScore(42)

	b.TriggerGameOver()
	b.TriggerGameOver()

	if len(rec.gameOvers) != 1 {
		t.Fatalf("expected exactly one game over notification, got %d", len(rec.gameOvers))
	}
	if rec.gameOvers[0] != 42 {
		t.Errorf("game over score = %d, expected 42", rec.gameOvers[0])
	}
	if b.Running() {
		t.Error("run should not be running after game over")
	}

	// A finished run cannot be restarted without Reset.
	b.Start()
	if b.Running() {
		t.Error("Start after game over should be ignored")
	}

	b.Reset()
	b.Start()
	if !b.Running() {
		t.Error("Start after Reset should run")
	}
}

func TestPauseResume(t *testing.T) {
	var b Base

	b.Pause()
	if b.Paused() {
		t.Error("Pause before Start should be ignored")
	}

	b.Start()
	b.Pause()
	if !b.Paused() || b.Active() {
		t.Error("paused run should not be active")
	}

	b.Resume()
	if b.Paused() || !b.Active() {
		t.Error("resumed run should be active")
	}

	b.Stop()
	if b.Running() || b.Active() {
		t.Error("stopped run should not be active")
	}
}

func TestEmitWithoutListener(t *testing.T) {
	var b Base
	b.Emit(core.SoundEat) // must not panic

	rec := &recorder{}
	b.SetListener(rec)
	b.Emit(core.SoundEat)
	if len(rec.sounds) != 1 || rec.sounds[0] != core.SoundEat {
		t.Errorf("sounds = %v, expected [eat]", rec.sounds)
	}
}
