// Package web serves a small read-only HTTP API over the score stores
// and exposes the Prometheus collectors.
package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/session"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// History is the optional run history behind /api/scores.
type History interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
}

// Deps are the collaborators the API reads from. Best is required;
// History and Gatherer may be nil.
type Deps struct {
	Best     session.ScoreStore
	History  History
	Gatherer prometheus.Gatherer
	Logger   *log.Logger
	Version  string
}

// Server is the HTTP API.
type Server struct {
	deps    Deps
	engine  *gin.Engine
	started time.Time
}

// GameResponse is one entry of /api/games.
type GameResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Best  int    `json:"best"`
}

// RunResponse is one history row of /api/scores/:game.
type RunResponse struct {
	RunID     string    `json:"run_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// ScoresResponse is the body of /api/scores/:game.
type ScoresResponse struct {
	Game  string        `json:"game"`
	Best  int           `json:"best"`
	Runs  []RunResponse `json:"runs"`
	Stats *StatsBody    `json:"stats,omitempty"`
}

// StatsBody aggregates the run history of one game.
type StatsBody struct {
	Games   int     `json:"games"`
	Average float64 `json:"average"`
	Total   int64   `json:"total"`
}

// NewServer builds the router.
func NewServer(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	s := &Server{deps: deps, started: time.Now()}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.health)
	api := r.Group("/api")
	{
		api.GET("/games", s.listGames)
		api.GET("/scores/:game", s.gameScores)
	}
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	s.engine = r
	return s
}

// Handler returns the router for embedding or tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.deps.Logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": s.deps.Version,
		"uptime":  time.Since(s.started).Round(time.Second).String(),
	})
}

func (s *Server) listGames(c *gin.Context) {
	games := registry.List()
	out := make([]GameResponse, 0, len(games))
	for _, g := range games {
		best, err := s.deps.Best.Get(g.ID)
		if err != nil {
			s.deps.Logger.Warn("cannot read best score", "game", g.ID, "error", err)
		}
		out = append(out, GameResponse{ID: g.ID, Title: g.Title, Best: best})
	}
	c.JSON(http.StatusOK, gin.H{"games": out})
}

func (s *Server) gameScores(c *gin.Context) {
	id := c.Param("game")
	if !registry.Exists(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game"})
		return
	}

	limit := 10
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	best, err := s.deps.Best.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read best score"})
		return
	}
	resp := ScoresResponse{Game: id, Best: best, Runs: []RunResponse{}}

	if s.deps.History != nil {
		runs, err := s.deps.History.TopScores(id, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read history"})
			return
		}
		for _, r := range runs {
			resp.Runs = append(resp.Runs, RunResponse{RunID: r.RunID, Score: r.Score, CreatedAt: r.CreatedAt})
		}
		if stats, err := s.deps.History.GetGameStats(id); err == nil {
			resp.Stats = &StatsBody{Games: stats.GamesCount, Average: stats.AvgScore, Total: stats.TotalScore}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Serve listens on addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.deps.Logger.Info("http server started", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
