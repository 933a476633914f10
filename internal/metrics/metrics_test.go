package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vovakirdan/retro-arcade/internal/session"
)

func TestRecorderCountsRuns(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.RunStarted("snake", "a")
	r.RunStarted("snake", "b")
	r.RunStarted("tetris", "c")
	r.RunEnded(session.RunResult{GameID: "snake", RunID: "a", Score: 30, Best: 30, NewHigh: true})
	r.RunEnded(session.RunResult{GameID: "snake", RunID: "b", Score: 10, Best: 30})

	if got := testutil.ToFloat64(r.RunsStarted.WithLabelValues("snake")); got != 2 {
		t.Errorf("snake runs started = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.RunsStarted.WithLabelValues("tetris")); got != 1 {
		t.Errorf("tetris runs started = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.RunsFinished.WithLabelValues("snake")); got != 2 {
		t.Errorf("snake runs finished = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.HighScores.WithLabelValues("snake")); got != 1 {
		t.Errorf("snake high scores = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.BestScore.WithLabelValues("snake")); got != 30 {
		t.Errorf("snake best = %v, want 30", got)
	}
	if got := testutil.ToFloat64(r.LastScore.WithLabelValues("snake")); got != 10 {
		t.Errorf("snake last = %v, want 10", got)
	}
}

func TestRecorderRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)
	r.RunStarted("breakout", "x")

	if n := testutil.CollectAndCount(r.RunsStarted); n != 1 {
		t.Errorf("expected 1 series, got %d", n)
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() failed: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "arcade_runs_started_total" {
			found = true
		}
	}
	if !found {
		t.Error("arcade_runs_started_total not registered")
	}
}
