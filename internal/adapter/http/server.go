// Package http exposes the dataset query surface as a JSON API, alongside
// the usual health, readiness, and metrics endpoints. It renders nothing:
// charting and navigation belong to whatever presentation layer consumes it.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/siasalabs/election-data-service/internal/domain"
	"github.com/siasalabs/election-data-service/internal/observability"
)

// Dataset is the query surface the server exposes. *dataset.Store satisfies it.
type Dataset interface {
	Elections() []domain.Election
	Election(year int) (domain.Election, error)
	Counties() []domain.County
	County(name string) (domain.County, error)
	CountiesByRegion(region string) ([]domain.County, error)
	Regions() []domain.RegionTrend
	Prediction(name string) (domain.CountyPrediction, error)
	Predictions() []domain.CountyPrediction
	NationalSummary() domain.NationalSummary
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server serves the query API over HTTP.
type Server struct {
	httpServer *http.Server
	data       Dataset
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates the HTTP server with all query and operational routes.
func NewServer(addr string, data Dataset, ready ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		data:    data,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/elections", s.handleElections)
	mux.HandleFunc("GET /api/elections/{year}", s.handleElection)
	mux.HandleFunc("GET /api/regions", s.handleRegions)
	mux.HandleFunc("GET /api/regions/{region}/counties", s.handleRegionCounties)
	mux.HandleFunc("GET /api/counties", s.handleCounties)
	mux.HandleFunc("GET /api/counties/{name}", s.handleCounty)
	mux.HandleFunc("GET /api/counties/{name}/prediction", s.handlePrediction)
	mux.HandleFunc("GET /api/predictions", s.handlePredictions)
	mux.HandleFunc("GET /api/summary", s.handleSummary)

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

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func (s *Server) handleElections(w http.ResponseWriter, _ *http.Request) {
	s.metrics.Queries.WithLabelValues("election", "ok").Inc()
	writeJSON(w, http.StatusOK, s.data.Elections())
}

func (s *Server) handleElection(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		s.respondError(w, "election", &domain.NotFoundError{Entity: "election", Key: r.PathValue("year")})
		return
	}
	e, err := s.data.Election(year)
	if err != nil {
		s.respondError(w, "election", err)
		return
	}
	s.metrics.Queries.WithLabelValues("election", "ok").Inc()
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleRegions(w http.ResponseWriter, _ *http.Request) {
	s.metrics.Queries.WithLabelValues("region", "ok").Inc()
	writeJSON(w, http.StatusOK, s.data.Regions())
}

func (s *Server) handleRegionCounties(w http.ResponseWriter, r *http.Request) {
	counties, err := s.data.CountiesByRegion(r.PathValue("region"))
	if err != nil {
		s.respondError(w, "region", err)
		return
	}
	s.metrics.Queries.WithLabelValues("region", "ok").Inc()
	writeJSON(w, http.StatusOK, counties)
}

func (s *Server) handleCounties(w http.ResponseWriter, _ *http.Request) {
	s.metrics.Queries.WithLabelValues("county", "ok").Inc()
	writeJSON(w, http.StatusOK, s.data.Counties())
}

// countyResponse augments a county with its derived analysis fields.
type countyResponse struct {
	domain.County
	Swing     *domain.SwingTier `json:"swing_potential,omitempty"`
	VoteShift *domain.VoteShift `json:"vote_shift,omitempty"`
}

func (s *Server) handleCounty(w http.ResponseWriter, r *http.Request) {
	c, err := s.data.County(r.PathValue("name"))
	if err != nil {
		s.respondError(w, "county", err)
		return
	}
	resp := countyResponse{County: c}
	if tier, ok := c.Swing(); ok {
		resp.Swing = &tier
	}
	if shift, ok := c.Shift(); ok {
		resp.VoteShift = &shift
	}
	s.metrics.Queries.WithLabelValues("county", "ok").Inc()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePrediction(w http.ResponseWriter, r *http.Request) {
	p, err := s.data.Prediction(r.PathValue("name"))
	if err != nil {
		s.respondError(w, "prediction", err)
		return
	}
	s.metrics.Queries.WithLabelValues("prediction", "ok").Inc()
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePredictions(w http.ResponseWriter, _ *http.Request) {
	s.metrics.Queries.WithLabelValues("prediction", "ok").Inc()
	writeJSON(w, http.StatusOK, s.data.Predictions())
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	s.metrics.Queries.WithLabelValues("summary", "ok").Inc()
	writeJSON(w, http.StatusOK, s.data.NationalSummary())
}

// respondError maps typed not-found errors to 404 with entity context;
// anything else is a 500.
func (s *Server) respondError(w http.ResponseWriter, entity string, err error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		s.metrics.Queries.WithLabelValues(entity, "not_found").Inc()
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error":  nf.Error(),
			"entity": nf.Entity,
			"key":    nf.Key,
		})
		return
	}
	s.metrics.Queries.WithLabelValues(entity, "error").Inc()
	s.logger.Error("query failed", "entity", entity, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
