package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/metrics"
	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/platform/web"
	"github.com/vovakirdan/retro-arcade/internal/session"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagNoSSH       bool
	flagNoHTTP      bool
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH server and HTTP status API",
	Long: `Start an SSH server that lets users connect and play, plus an HTTP
API with best scores and Prometheus metrics.

Each SSH connection gets its own session with a game picker menu.
Scores are shared by every connection; pass --redis to share them
between several servers.

HTTP endpoints:
  /healthz            - liveness
  /api/games          - games and best scores
  /api/scores/:game   - best score and top runs
  /metrics            - Prometheus metrics

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                          # SSH on :2222, HTTP on :8080
  arcade serve --ssh :23234 --no-http   # SSH only
  arcade serve --redis localhost:6379   # Shared best scores

Users can connect with:
  ssh localhost -p 2222`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from ARCADE_SSH_ADDR or :2222)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "HTTP server address (default from ARCADE_HTTP_ADDR or :8080)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagNoSSH, "no-ssh", false, "Do not start the SSH server")
	serveCmd.Flags().BoolVar(&flagNoHTTP, "no-http", false, "Do not start the HTTP server")
}

func runServe(_ *cobra.Command, _ []string) error {
	if flagNoSSH && flagNoHTTP {
		return errors.New("nothing to serve: both --no-ssh and --no-http set")
	}
	if flagSSHAddr == "" {
		flagSSHAddr = platform.SSHAddr
	}
	if flagHTTPAddr == "" {
		flagHTTPAddr = platform.HTTPAddr
	}

	// Audio is a local-terminal feature.
	flagAudio = false
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := metrics.New(prometheus.DefaultRegisterer)
	opts := append(a.sessionOptions(false), session.WithObserver(rec))

	errc := make(chan error, 2)
	running := 0

	if !flagNoSSH {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
		cfg.TickRate = flagFPS

		srv, err := tui.NewSSHServer(cfg, a.logger.WithPrefix("ssh"), opts...)
		if err != nil {
			return err
		}
		running++
		go func() { errc <- srv.Serve(ctx) }()
	}

	if !flagNoHTTP {
		best := a.best
		if best == nil {
			return errors.New("http api needs a score store")
		}
		deps := web.Deps{
			Best:     best,
			Gatherer: prometheus.DefaultGatherer,
			Logger:   a.logger.WithPrefix("http"),
			Version:  version,
		}
		if a.history != nil {
			deps.History = a.history
		}
		srv := web.NewServer(deps)
		running++
		go func() { errc <- srv.Serve(ctx, flagHTTPAddr) }()
	}

	a.logger.Info("arcade serving", "ssh", !flagNoSSH, "http", !flagNoHTTP)

	// First failure stops everything; otherwise wait for every server to
	// finish its shutdown.
	var firstErr error
	for range running {
		if err := <-errc; err != nil && firstErr == nil {
			firstErr = err
			stop()
		}
	}
	return firstErr
}
