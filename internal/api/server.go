// Package api is the HTTP surface of the builder dashboard service.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/vikions/opipolix-builder-dashboard/pkg/config"
	"github.com/vikions/opipolix-builder-dashboard/pkg/logger"
)

// Server wraps the http.Server serving the dashboard API.
type Server struct {
	httpServer *http.Server
	logger     logger.Interface
}

// NewServer wires the routes and middleware chain.
func NewServer(cfg config.AppConfig, statsHandler *StatsHandler, logger logger.Interface) *Server {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/stats", statsHandler.GetStats)

	var handler http.Handler = mux
	handler = CORS(handler)
	handler = RequestID(handler)
	handler = HealthCheck{}.Handler(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", logger.NewField("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
