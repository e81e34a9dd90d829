// Package server runs method routers behind a path router backend with the
// standard layers, metrics, tracing and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/xraph/dispatch/config"
	"github.com/xraph/dispatch/extras"
	"github.com/xraph/dispatch/logger"
	"github.com/xraph/dispatch/middleware"
	"github.com/xraph/dispatch/observability"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/routing"
	"github.com/xraph/dispatch/service"
)

// Server mounts units on paths and serves them over HTTP.
type Server struct {
	cfg     config.Config
	log     logger.Logger
	backend extras.Backend
	health  *observability.Health
	tracing *observability.Tracing

	registry *prometheus.Registry
	metrics  *middleware.Metrics

	layers []service.Layer
	extra  []service.Layer
	banner io.Writer

	mu     sync.Mutex
	routes []string
	http   *http.Server
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger replaces the logger built from the configuration.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

// WithRegistry replaces the Prometheus registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// WithTracing replaces the tracing set up from the configuration.
func WithTracing(t *observability.Tracing) Option {
	return func(s *Server) { s.tracing = t }
}

// WithLayers appends layers inside the standard ones on every route.
func WithLayers(layers ...service.Layer) Option {
	return func(s *Server) { s.extra = append(s.extra, layers...) }
}

// WithBanner sets where the startup banner is printed. Nil disables it.
func WithBanner(w io.Writer) Option {
	return func(s *Server) { s.banner = w }
}

// New builds a server from cfg.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	backend, err := extras.NewBackend(cfg.Server.Backend)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		backend: backend,
		health:  observability.NewHealth(5 * time.Second),
		banner:  os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.log == nil {
		s.log, err = logger.NewLogger(cfg.Logging)
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
	}

	if s.tracing == nil {
		s.tracing, err = observability.NewTracing(ctx, cfg.Tracing)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Metrics.Enabled {
		if s.registry == nil {
			s.registry = observability.NewRegistry()
		}
		s.metrics, err = middleware.NewMetrics(middleware.MetricsConfig{
			Namespace:  cfg.Metrics.Namespace,
			Subsystem:  "http",
			Registerer: s.registry,
		})
		if err != nil {
			return nil, err
		}
		s.backend.Handle(cfg.Metrics.Path, observability.MetricsHandler(s.registry))
	}

	s.layers = s.standardLayers()
	s.Route("/health", routing.Get(s.health.Handler()))

	return s, nil
}

// standardLayers lists the layers every route gets, outermost first.
func (s *Server) standardLayers() []service.Layer {
	limits := s.cfg.Limits

	layers := []service.Layer{
		middleware.RequestID(),
		middleware.Tracing(s.tracing.Provider(), s.tracing.Propagator()),
		middleware.Logging(s.log),
	}
	if s.metrics != nil {
		layers = append(layers, s.metrics.Layer())
	}
	layers = append(layers, middleware.Recovery(s.log))
	if limits.MaxBodyBytes > 0 {
		layers = append(layers, middleware.BodyLimit(limits.MaxBodyBytes))
	}
	if limits.RatePerSecond > 0 {
		layers = append(layers, middleware.RateLimit(rate.Limit(limits.RatePerSecond), limits.Burst))
	}
	if limits.MaxInFlight > 0 {
		layers = append(layers, middleware.ConcurrencyLimit(limits.MaxInFlight))
	}
	if limits.RequestTimeout > 0 {
		layers = append(layers, middleware.Timeout(limits.RequestTimeout))
	}

	return append(layers, s.extra...)
}

// Route mounts unit on path behind the standard layers. Errors raised by
// the layers are rendered with response.FromError.
func (s *Server) Route(path string, unit service.Infallible) {
	svc := service.Apply(service.Lift(unit), s.layers...)
	handled := service.HandleError(svc, func(err error) response.IntoResponse {
		return response.FromError(err)
	})
	s.backend.Handle(path, service.ToHTTP(handled))

	s.mu.Lock()
	s.routes = append(s.routes, path)
	s.mu.Unlock()
}

// Health returns the health checks served on /health.
func (s *Server) Health() *observability.Health { return s.health }

// Logger returns the server logger.
func (s *Server) Logger() logger.Logger { return s.log }

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.backend }

// Routes lists the mounted paths in registration order.
func (s *Server) Routes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.routes...)
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.backend,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	s.mu.Lock()
	s.http = srv
	s.mu.Unlock()

	s.printBanner(ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.log.Info("shutdown signal received")
	}

	return s.shutdown()
}

func (s *Server) shutdown() error {
	timeout := s.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.log.Info("starting graceful shutdown", logger.Duration("timeout", timeout))

	if err := s.http.Shutdown(ctx); err != nil {
		s.log.Error("http server shutdown error", logger.Error(err))
	}
	if err := s.tracing.Shutdown(ctx); err != nil {
		s.log.Warn("tracer shutdown error", logger.Error(err))
	}
	_ = s.log.Sync()

	s.log.Info("graceful shutdown complete")
	return nil
}
