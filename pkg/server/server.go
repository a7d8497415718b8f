package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"warden-hq/warden/pkg/api/handlers"
	"warden-hq/warden/pkg/api/middleware"
	"warden-hq/warden/pkg/config"
	"warden-hq/warden/pkg/moderation"
	"warden-hq/warden/pkg/telemetry/health"
	"warden-hq/warden/pkg/telemetry/metrics"
)

// Options carries the collaborators the server wires into its routes.
type Options struct {
	// Engine is the moderation engine. Required.
	Engine *moderation.Engine

	// Recorder receives decisions for audit persistence. Optional.
	Recorder handlers.Recorder

	// Collector provides the metrics registry and recorders. Optional;
	// when nil the /metrics endpoint is not registered.
	Collector *metrics.Collector

	// Health provides liveness and readiness checks. Optional; when nil a
	// checker with no registered checks is used.
	Health *health.Checker

	// Version describes the build for the /version endpoint.
	Version health.VersionInfo

	// MaxBatchSize bounds batch requests; zero uses the default limit.
	MaxBatchSize int
}

// Server is the HTTP server for the moderation service.
type Server struct {
	config       *config.Config
	opts         Options
	httpServer   *http.Server
	shutdownChan chan struct{}
	shutdownOnce sync.Once
	mu           sync.RWMutex
	isRunning    bool
}

// New creates a moderation server from configuration and collaborators.
func New(cfg *config.Config, opts Options) *Server {
	if opts.Health == nil {
		opts.Health = health.New(0)
	}
	return &Server{
		config:       cfg,
		opts:         opts,
		shutdownChan: make(chan struct{}),
	}
}

// Start starts the HTTP server and blocks until shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	handler := s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:           s.config.Server.ListenAddress,
		Handler:        handler,
		ReadTimeout:    s.config.Server.ReadTimeout,
		WriteTimeout:   s.config.Server.WriteTimeout,
		IdleTimeout:    s.config.Server.IdleTimeout,
		MaxHeaderBytes: s.config.Server.MaxHeaderBytes,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting moderation server",
			"address", s.config.Server.ListenAddress,
		)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		slog.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	case <-s.shutdownChan:
		slog.Info("shutdown requested")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server, draining in-flight requests
// within the configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		if !s.isRunning {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		slog.Info("initiating graceful shutdown", "timeout", s.config.Server.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, s.config.Server.ShutdownTimeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				slog.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		slog.Info("moderation server stopped")
	})

	return shutdownErr
}

// setupRoutes configures HTTP routes and the middleware chain.
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	var mm *metrics.ModerationMetrics
	if s.opts.Collector != nil {
		mm = s.opts.Collector.Moderation()
	}

	flagHandler := handlers.NewFlagHandler(s.opts.Engine, s.opts.Recorder, mm)
	batchHandler := handlers.NewBatchFlagHandler(s.opts.Engine, s.opts.Recorder, mm, s.opts.MaxBatchSize)
	categoriesHandler := handlers.NewCategoriesHandler(s.opts.Engine.Catalog())

	mux.Handle("/v1/moderation/flag", flagHandler)
	mux.Handle("/v1/moderation/flag/batch", batchHandler)
	mux.Handle("/v1/moderation/categories", categoriesHandler)

	mux.Handle("/health", s.opts.Health.LivenessHandler())
	mux.Handle("/ready", s.opts.Health.ReadinessHandler())
	mux.Handle("/version", health.VersionHandler(s.opts.Version))

	if s.opts.Collector != nil && s.config.Telemetry.Metrics.Enabled {
		mux.Handle(s.config.Telemetry.Metrics.Path, s.opts.Collector.Handler())
	}

	// Everything else is a JSON 404.
	mux.Handle("/", handlers.NotFoundHandler())

	var handler http.Handler = mux
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.RecoveryMiddleware(handler)

	return handler
}

// IsRunning returns true if the server is running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// Handler returns the configured HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}
