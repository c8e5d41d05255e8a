// Package server provides the HTTP server implementation.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vyrodovalexey/employee-api/internal/config"
	"github.com/vyrodovalexey/employee-api/internal/handler"
	"github.com/vyrodovalexey/employee-api/internal/metrics"
	"github.com/vyrodovalexey/employee-api/internal/middleware"
	"github.com/vyrodovalexey/employee-api/internal/store"
)

// Server represents the HTTP server.
type Server struct {
	httpServer    *http.Server
	router        *mux.Router
	handler       http.Handler
	config        *config.Config
	logger        *zap.Logger
	metrics       *metrics.Metrics
	gatherer      prometheus.Gatherer
	eventsHandler *handler.EventsHandler
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics records HTTP metrics into m and serves gatherer on /metrics.
// Without it a Server with metrics enabled registers its own registry.
func WithMetrics(m *metrics.Metrics, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = gatherer
	}
}

// New creates a new Server instance.
func New(cfg *config.Config, logger *zap.Logger, employeeStore store.Store, opts ...Option) *Server {
	s := &Server{
		router: mux.NewRouter(),
		config: cfg,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.MetricsEnabled && s.metrics == nil {
		reg := prometheus.NewRegistry()
		s.metrics = metrics.NewMetrics(reg)
		s.gatherer = reg
	}

	s.setupRoutes(employeeStore)
	s.setupMiddleware()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures the middleware chain.
// Recovery, request IDs, logging and CORS wrap the whole router so they also
// cover 404/405 responses and OPTIONS preflights, which mux answers without
// running router middleware. Metrics need the matched route, so they run inside.
func (s *Server) setupMiddleware() {
	allowedMethods := []string{
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowedHeaders := []string{
		"Content-Type",
		middleware.RequestIDHeader,
	}

	if s.metrics != nil {
		s.router.Use(mux.MiddlewareFunc(middleware.Metrics(s.metrics)))
	}

	s.handler = middleware.Chain(
		middleware.Recovery(s.logger),
		middleware.RequestID(),
		middleware.Logging(s.logger),
		middleware.CORS(s.config.CORSAllowedOrigins, allowedMethods, allowedHeaders),
	)(s.router)
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes(employeeStore store.Store) {
	opts := []handler.Option{handler.WithStrictValidation(s.config.StrictValidation)}

	// The feed route must precede /api/employees/{id}.
	if s.config.EventsEnabled {
		s.eventsHandler = handler.NewEventsHandler(s.logger)
		s.eventsHandler.RegisterRoutes(s.router)
		opts = append(opts, handler.WithNotifier(s.eventsHandler))
	}

	restHandler := handler.NewRESTHandler(employeeStore, s.logger, opts...)
	restHandler.RegisterRoutes(s.router)

	if s.metrics != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
}

// setupHTTPServer configures the HTTP server.
func (s *Server) setupHTTPServer() {
	s.httpServer = &http.Server{
		Addr:              s.config.Address(),
		Handler:           s.handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("starting server",
		zap.String("address", s.config.Address()),
		zap.Bool("metrics_enabled", s.metrics != nil),
		zap.Bool("events_enabled", s.eventsHandler != nil),
		zap.Bool("strict_validation", s.config.StrictValidation),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server listen and serve: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	// Feed connections are hijacked and not tracked by http.Server.
	if s.eventsHandler != nil {
		s.eventsHandler.CloseAllConnections()
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}
