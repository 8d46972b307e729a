// Package rest exposes the social network over HTTP/JSON.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/ecosocial/internal/logging"
	"github.com/dmitrijs2005/ecosocial/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/oops"
)

type Server struct {
	address         string
	network         *services.SocialNetwork
	logger          logging.Logger
	registry        *prometheus.Registry
	metrics         *Metrics
	handler         http.Handler
	shutdownTimeout time.Duration
}

func NewServer(a string, n *services.SocialNetwork, l logging.Logger, shutdownTimeout time.Duration) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	s := &Server{
		address:         a,
		network:         n,
		logger:          l.With("module", "rest_server"),
		registry:        registry,
		metrics:         NewMetrics(registry),
		shutdownTimeout: shutdownTimeout,
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, s.instrument(pattern, h))
	}

	handle("GET /{$}", s.handleIndex)
	handle("POST /users", s.handleRegisterUser)
	handle("GET /users", s.handleListUsers)
	handle("POST /posts", s.handleCreatePost)
	handle("GET /feed", s.handleFeed)
	handle("POST /events", s.handleCreateEvent)
	handle("GET /events", s.handleListEvents)
	handle("POST /auth/login", s.handleLogin)
	handle("POST /auth/logout", s.handleLogout)

	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return s.withRequestID(s.withAccessLog(s.withRecovery(mux)))
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return oops.Code("LISTEN_FAILED").With("address", s.address).Wrap(err)
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis. When ctx is cancelled in-flight requests
// get up to the shutdown timeout to finish.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting REST server", "address", lis.Addr().String())
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping REST server...")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return oops.With("operation", "shutdown_rest_server").Wrap(err)
	}
	return <-errCh
}
