// Package api provides the read-only HTTP surface for Slate Logic Core:
// health, the device catalogue, and the stored automation processes.
//
// The server follows the same lifecycle pattern as the other
// infrastructure components:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// There is no authentication: the API exposes nothing writable and is
// intended to sit on a trusted network or behind a reverse proxy.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/nerrad567/slate-logic-core/internal/automation"
	"github.com/nerrad567/slate-logic-core/internal/device"
	"github.com/nerrad567/slate-logic-core/internal/infrastructure/config"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight
// requests during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// Logger abstracts structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// HealthChecker reports the health of an infrastructure component.
// Satisfied by *mqtt.Client and *database.DB.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config      config.APIConfig
	Timeouts    ServerTimeouts
	Logger      Logger
	Registry    *device.Registry
	ProcessRepo automation.Repository
	MQTT        HealthChecker // optional
	Database    HealthChecker // optional
	Version     string
}

// ServerTimeouts carries resolved timeout durations for the listener.
type ServerTimeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
}

// Server is the HTTP API server.
type Server struct {
	cfg         config.APIConfig
	timeouts    ServerTimeouts
	logger      Logger
	registry    *device.Registry
	processRepo automation.Repository
	mqtt        HealthChecker
	database    HealthChecker
	version     string
	server      *http.Server
}

// New creates an API server. The server is not started until Start is
// called.
func New(deps Deps) (*Server, error) {
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.Registry == nil {
		return nil, fmt.Errorf("device registry is required")
	}
	if deps.ProcessRepo == nil {
		return nil, fmt.Errorf("process repository is required")
	}

	return &Server{
		cfg:         deps.Config,
		timeouts:    deps.Timeouts,
		logger:      deps.Logger,
		registry:    deps.Registry,
		processRepo: deps.ProcessRepo,
		mqtt:        deps.MQTT,
		database:    deps.Database,
		version:     deps.Version,
	}, nil
}

// Start launches the HTTP listener in a background goroutine. Stop with
// Close.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:           s.buildRouter(),
		ReadTimeout:       s.timeouts.Read,
		ReadHeaderTimeout: s.timeouts.Read,
		WriteTimeout:      s.timeouts.Write,
		IdleTimeout:       s.timeouts.Idle,
	}

	go func() {
		s.logger.Info("API server starting", "address", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Close gracefully shuts down the server, waiting for in-flight
// requests up to gracefulShutdownTimeout.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	s.logger.Info("API server stopped")
	return nil
}
