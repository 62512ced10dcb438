// Package dev runs the routegen development loop: watch the pages tree,
// regenerate on structural changes, and push reload notifications to
// connected browsers. It also exposes pass metrics for scraping.
package dev

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/routegen-dev/routegen/internal/config"
	"github.com/routegen-dev/routegen/internal/gen"
	"github.com/routegen-dev/routegen/internal/watch"
)

// Options configures the development server.
type Options struct {
	// Config is the project configuration.
	Config *config.Config

	// Logger receives server output.
	Logger *log.Logger
}

// Server is the development server.
type Server struct {
	cfg       *config.Config
	logger    *log.Logger
	generator *gen.Generator
	watcher   *watch.Watcher
	reload    *ReloadServer

	lastFailed bool
}

// NewServer creates a development server.
func NewServer(opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	watcher, err := watch.New(watch.Config{
		Root:       opts.Config.PagesDir,
		Extensions: opts.Config.Extensions,
		Debounce:   opts.Config.Dev.Debounce,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg:       opts.Config,
		logger:    logger,
		generator: gen.New(opts.Config),
		watcher:   watcher,
		reload:    NewReloadServer(),
	}, nil
}

// Start runs the watch loop and HTTP server until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	s.generator.OnPass(s.handlePass)

	// Initial pass so the generated files exist before the first change.
	s.handlePass(s.generator.Generate(ctx))

	s.watcher.OnChange(func(paths []string) {
		s.generator.Trigger(ctx)
	})

	watchErr := make(chan error, 1)
	go func() {
		watchErr <- s.watcher.Start(ctx)
	}()
	defer s.watcher.Close()

	addr := net.JoinHostPort(s.cfg.Dev.Host, strconv.Itoa(s.cfg.Dev.Port))
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.routes(),
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	s.logger.Info("watching for changes", "pages", s.cfg.PagesDir, "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.reload.Close()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-serveErr:
		return err
	case err := <-watchErr:
		return err
	}
}

// routes builds the dev server's HTTP mux.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/_routegen/reload", s.reload.HandleWebSocket)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	return r
}

// handlePass logs a pass result and notifies connected browsers.
func (s *Server) handlePass(res gen.PassResult) {
	for _, warning := range res.Warnings {
		s.logger.Warn(warning)
	}

	if res.Err != nil {
		s.lastFailed = true
		s.logger.Error("generation failed", "err", res.Err)
		s.reload.NotifyError(res.Err.Error())
		return
	}

	if s.lastFailed {
		s.lastFailed = false
		s.reload.ClearError()
	}

	s.logger.Info("generated routes",
		"routes", res.Routes,
		"paths", res.Paths,
		"duration", res.Duration.Round(time.Millisecond),
		"clients", s.reload.ClientCount(),
	)
	s.reload.NotifyReload()
}
