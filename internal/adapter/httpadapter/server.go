// Package httpadapter exposes the harm report over HTTP alongside the
// service's health and metrics endpoints.
package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/storm-harm-report/internal/chart"
	"github.com/couchcryptid/storm-harm-report/internal/domain"
	"github.com/couchcryptid/storm-harm-report/internal/report"
)

// Server exposes health, readiness, metrics, and report endpoints.
type Server struct {
	httpServer *http.Server
	store      *report.Store
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics,
// /api/report, and /charts routes. Report routes serve 503 until the
// store holds a built report.
func NewServer(addr string, store *report.Store, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:  store,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /api/report/{field}", s.handleReportField)
	mux.HandleFunc("GET /charts/harm", s.handleChart(chart.RenderHumanHarm))
	mux.HandleFunc("GET /charts/damage", s.handleChart(chart.RenderEconomicHarm))

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleReport(w http.ResponseWriter, _ *http.Request) {
	rep, ok := s.store.Get()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "report not built yet"})
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleReportField(w http.ResponseWriter, r *http.Request) {
	rep, ok := s.store.Get()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "report not built yet"})
		return
	}

	field := domain.HarmField(r.PathValue("field"))
	list, ok := rep.List(field)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown field " + string(field)})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleChart(render func(w io.Writer, rep *report.Report) error) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		rep, ok := s.store.Get()
		if !ok {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "report not built yet"})
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := render(w, rep); err != nil {
			s.logger.Error("chart render failed", "error", err)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
