// Package server implements the hiveplot HTTP API.
//
// The API exposes the visualization pipeline over HTTP so layouts and
// artifacts can be computed by a shared service instead of on each client:
//
//	POST /api/v1/layout   compute a layout from a graph
//	POST /api/v1/render   render artifacts from a graph
//	GET  /api/v1/health   liveness probe
//
// Requests carry the graph and pipeline options as JSON. Responses are
// JSON except for single-format render requests, which return the raw
// artifact with its content type.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nilesh-iiita/hiveplot/pkg/pipeline"
)

// Server wraps the HTTP API around a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	http   *http.Server
}

// Config holds server settings.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxBodyBytes int64
}

// DefaultConfig returns the standard server settings.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		MaxBodyBytes: 8 << 20, // 8 MiB
	}
}

// New creates a server around the given runner.
func New(runner *pipeline.Runner, logger *log.Logger, cfg Config) *Server {
	s := &Server{
		runner: runner,
		logger: logger,
	}
	s.http = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.routes(cfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// routes builds the chi router with middleware and API endpoints.
func (s *Server) routes(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(maxBody(cfg.MaxBodyBytes))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Post("/layout", s.handleLayout)
		r.Post("/render", s.handleRender)
	})

	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}
