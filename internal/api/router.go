// Package api exposes the kline service over HTTP: JSON or Markdown
// kline/indicator queries, keyword search, and a websocket stream of
// refreshing intraday indicator points.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/liekkasfc/real-time-stock-mcp-service/internal/kline"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/logger"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/markethours"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/metrics"
	"github.com/liekkasfc/real-time-stock-mcp-service/internal/store/redis"
)

// Server holds the HTTP handler dependencies.
type Server struct {
	svc            *kline.Service
	cache          *redis.Cache // optional response cache; nil disables it
	met            *metrics.Metrics
	log            *slog.Logger
	streamInterval time.Duration
}

// NewServer builds the API server. cache may be nil.
func NewServer(svc *kline.Service, cache *redis.Cache, met *metrics.Metrics, log *slog.Logger, streamInterval time.Duration) *Server {
	if streamInterval <= 0 {
		streamInterval = 15 * time.Second
	}
	return &Server{svc: svc, cache: cache, met: met, log: log, streamInterval: streamInterval}
}

// Router sets up the HTTP routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
			"market": markethours.StatusString(time.Now()),
		})
	})
	mux.HandleFunc("/api/v1/kline", s.handleKline)
	mux.HandleFunc("/api/v1/indicators", s.handleIndicators)
	mux.HandleFunc("/api/v1/quote", s.handleQuote)
	mux.HandleFunc("/api/v1/search", s.handleSearch)
	mux.HandleFunc("/api/v1/stream", s.handleStream)

	return s.withTrace(mux)
}

// withTrace attaches a trace ID to every request context so handler
// logs can be correlated.
func (s *Server) withTrace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Request-Id")
		if traceID == "" {
			traceID = logger.NewTraceID()
		}
		next.ServeHTTP(w, r.WithContext(logger.WithTraceID(r.Context(), traceID)))
	})
}
