package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/davidbz/shreegen/internal/config"
	"github.com/davidbz/shreegen/internal/http/middleware"
	"github.com/davidbz/shreegen/internal/observability"
)

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	adminToken  string
	handler     *Handler
	admin       *AdminHandler
	gatherer    prometheus.Gatherer
	middlewares middleware.Middleware

	mu  sync.Mutex
	srv *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(
	cfg *config.ServerConfig,
	adminCfg *config.AdminConfig,
	handler *Handler,
	admin *AdminHandler,
	gatherer prometheus.Gatherer,
	middlewares middleware.Middleware,
) *Server {
	return &Server{
		config:      *cfg,
		adminToken:  adminCfg.Token,
		handler:     handler,
		admin:       admin,
		gatherer:    gatherer,
		middlewares: middlewares,
	}
}

// Routes builds the routed handler with the middleware chain applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/v1/completions", s.handler.HandleCompletion)
	mux.HandleFunc("GET /health", s.handler.HandleHealth)
	if s.gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	// Admin routes exist only when a token is configured.
	if s.adminToken != "" && s.admin != nil {
		s.admin.Register(mux, middleware.AdminAuth(s.adminToken))
	}

	return s.middlewares(mux)
}

// Start listens on the configured port and serves until Shutdown.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.config.Port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %d: %w", s.config.Port, err)
	}
	return s.Serve(listener)
}

// Serve accepts connections on listener until Shutdown.
func (s *Server) Serve(listener net.Listener) error {
	srv := &http.Server{
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()

	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server",
		observability.String("addr", listener.Addr().String()),
		observability.Bool("admin_enabled", s.adminToken != ""))

	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
