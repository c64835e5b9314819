/*
Package server exposes the word frequency analyzer over HTTP.

All analysis endpoints accept a JSON body via POST:

	POST /rest/word-count/highest-frequency   {"text": "..."}
	POST /rest/word-count/frequency-for-word  {"text": "...", "word": "..."}
	POST /rest/word-count/top-frequency       {"text": "...", "n": 3}

Successful responses:

	{"frequency": 3}
	{"word": "laurens", "frequency": 3}
	[{"word": "angular", "frequency": 2}, {"word": "java", "frequency": 2}]

Every failure is answered with the same envelope, carrying a fresh reference
that is also written to the log:

	{"reason": "Input text is null. Null texts cannot be analyzed.", "reference": "3f0e..."}

Validation failures, undecodable bodies and analyzer errors are client errors
(400), an oversized body is 413, anything else is 500.

GET /health reports liveness and GET /metrics serves Prometheus metrics when
enabled in the config.
*/
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/bastiangx/wordfreq/internal/logger"
	"github.com/bastiangx/wordfreq/internal/metrics"
	"github.com/bastiangx/wordfreq/pkg/analyzer"
	"github.com/bastiangx/wordfreq/pkg/config"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// Server is the HTTP front of a WordFrequencyAnalyzer.
type Server struct {
	analyzer analyzer.WordFrequencyAnalyzer
	cfg      config.ServerConfig
	metrics  *metrics.Metrics
	log      *log.Logger
	engine   *gin.Engine
}

// NewServer wires the routes and middleware. m and l may be nil: metrics are
// then skipped and a default "http" logger is used.
func NewServer(a analyzer.WordFrequencyAnalyzer, cfg config.ServerConfig, m *metrics.Metrics, l *log.Logger) *Server {
	if l == nil {
		l = logger.New("http")
	}

	s := &Server{
		analyzer: a,
		cfg:      cfg,
		metrics:  m,
		log:      l,
		engine:   gin.New(),
	}
	s.engine.Use(s.observe(), s.recovery(), limitBody(cfg.MaxBodyBytes))
	s.setupRoutes()
	return s
}

// Handler returns the http.Handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start listens on the configured address and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout(),
		WriteTimeout: s.cfg.WriteTimeout(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info("listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
