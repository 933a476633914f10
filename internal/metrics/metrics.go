// Package metrics exports run counters for Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vovakirdan/retro-arcade/internal/session"
)

// Recorder counts runs per game. It implements session.Observer.
type Recorder struct {
	RunsStarted  *prometheus.CounterVec
	RunsFinished *prometheus.CounterVec
	HighScores   *prometheus.CounterVec
	BestScore    *prometheus.GaugeVec
	LastScore    *prometheus.GaugeVec
}

// New creates a Recorder and registers its collectors with reg.
// Pass prometheus.DefaultRegisterer to expose them on the default handler.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		RunsStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arcade_runs_started_total",
				Help: "Runs started per game",
			},
			[]string{"game"},
		),
		RunsFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arcade_runs_finished_total",
				Help: "Runs that reached game over per game",
			},
			[]string{"game"},
		),
		HighScores: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arcade_high_scores_total",
				Help: "Runs that set a new best score",
			},
			[]string{"game"},
		),
		BestScore: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "arcade_best_score",
				Help: "Best score seen per game",
			},
			[]string{"game"},
		),
		LastScore: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "arcade_last_score",
				Help: "Score of the most recently finished run",
			},
			[]string{"game"},
		),
	}
	reg.MustRegister(r.RunsStarted, r.RunsFinished, r.HighScores, r.BestScore, r.LastScore)
	return r
}

func (r *Recorder) RunStarted(gameID, runID string) {
	r.RunsStarted.WithLabelValues(gameID).Inc()
}

func (r *Recorder) RunEnded(res session.RunResult) {
	r.RunsFinished.WithLabelValues(res.GameID).Inc()
	r.LastScore.WithLabelValues(res.GameID).Set(float64(res.Score))
	r.BestScore.WithLabelValues(res.GameID).Set(float64(res.Best))
	if res.NewHigh {
		r.HighScores.WithLabelValues(res.GameID).Inc()
	}
}

var _ session.Observer = (*Recorder)(nil)
