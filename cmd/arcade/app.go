package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-arcade/internal/audio"
	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/session"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// app holds the collaborators shared by the play, menu and serve commands.
type app struct {
	logger  *log.Logger
	cfg     config.Config
	history *storage.Store
	best    session.ScoreStore
	speaker *audio.Speaker
	closers []func()
}

// newLogger builds the process logger. When the TUI owns the terminal,
// output goes to ~/.arcade/arcade.log instead of stderr.
func newLogger(toFile bool) (*log.Logger, func()) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	if toFile {
		w = io.Discard
		if home, err := os.UserHomeDir(); err == nil {
			dir := filepath.Join(home, ".arcade")
			if err := os.MkdirAll(dir, 0o755); err == nil {
				if f, err := os.OpenFile(filepath.Join(dir, "arcade.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600); err == nil {
					w = f
					closeFn = func() { f.Close() }
				}
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger, closeFn
}

// newApp loads config and opens the stores. Store failures are logged and
// the arcade keeps running without persistence.
func newApp(tuiOwnsTerminal bool) (*app, error) {
	logger, closeLog := newLogger(tuiOwnsTerminal)
	a := &app{logger: logger, closers: []func(){closeLog}}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("load config: %w", err)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		a.close()
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)
	a.cfg = cfg

	if store, err := storage.Open(flagDBPath); err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
	} else {
		store.SetLogger(a.logger.WithPrefix("storage"))
		a.history = store
		a.best = store
		a.closers = append(a.closers, func() { store.Close() })
	}

	if flagRedis != "" {
		rs, err := storage.OpenRedis(flagRedis, platform.RedisPassword, platform.RedisDB)
		if err != nil {
			logger.Warn("redis unavailable, using local best scores", "error", err)
		} else {
			a.best = rs
			a.closers = append(a.closers, func() { rs.Close() })
		}
	}

	if flagAudio {
		sp, err := audio.NewSpeaker(0.5)
		if err != nil {
			logger.Warn("audio disabled", "error", err)
		} else {
			a.speaker = sp
			a.closers = append(a.closers, sp.Close)
		}
	}

	return a, nil
}

// sessionOptions returns the controller options for a local or remote
// session. Audio is local only.
func (a *app) sessionOptions(withAudio bool) []session.Option {
	opts := []session.Option{
		session.WithConfig(a.cfg),
		session.WithLogger(a.logger),
	}
	if a.best != nil {
		opts = append(opts, session.WithStore(a.best))
	}
	if a.history != nil {
		opts = append(opts, session.WithObserver(a.history))
	}
	if withAudio && a.speaker != nil {
		opts = append(opts, session.WithAudio(a.speaker))
	}
	return opts
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// runtimeConfig sizes the screen from the controlling terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
