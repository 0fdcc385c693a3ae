// Package api exposes a small diagnostics endpoint while a stress run is
// in flight: health, orchestrator state, and Prometheus metrics. It is
// optional; the CLI only starts it when a listen address is configured.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calebmor/gauntlet/internal/orchestrator"
)

const (
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Server wraps the chi router serving run diagnostics.
type Server struct {
	router *chi.Mux
	orch   *orchestrator.Orchestrator
	logger *slog.Logger
	addr   string
}

// NewServer creates and configures the diagnostics server.
func NewServer(addr string, orch *orchestrator.Orchestrator, logger *slog.Logger) *Server {
	srv := &Server{
		router: chi.NewRouter(),
		orch:   orch,
		logger: logger,
		addr:   addr,
	}

	srv.router.Use(middleware.Recoverer)
	srv.router.Use(srv.loggingMiddleware)

	srv.router.Get("/healthz", srv.handleHealthz)
	srv.router.Get("/v1/state", srv.handleState)
	srv.router.Handle("/metrics", promhttp.Handler())

	return srv
}

// Router returns the chi router, for tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Serve runs the listener until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("diagnostics listening", "addr", s.addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("diagnostics server: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("diagnostics shutdown: %w", err)
	}
	return nil
}

type healthResponse struct {
	Status string `json:"status"`
}

type stateResponse struct {
	State string `json:"state"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, healthResponse{Status: "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, stateResponse{State: string(s.orch.State())})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// loggingMiddleware logs each request using the structured logger.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
