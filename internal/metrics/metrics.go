// Package metrics exposes Prometheus instrumentation for the kline
// service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	FetchesTotal  *prometheus.CounterVec // labels: outcome=ok|no_data|error
	QuotesTotal   *prometheus.CounterVec // labels: outcome=ok|error
	BarsAssembled prometheus.Counter
	ComputeDur    prometheus.Histogram
	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
	StaleServes   prometheus.Counter
	StreamClients prometheus.Gauge
	RequestsTotal *prometheus.CounterVec // labels: endpoint, status
}

// New registers the service metrics on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the service metrics on reg. Tests pass a fresh
// prometheus.NewRegistry so packages can each build their own set.
func NewWith(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FetchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockmcp_upstream_fetches_total",
			Help: "Upstream kline fetches by outcome",
		}, []string{"outcome"}),
		QuotesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockmcp_spot_quotes_total",
			Help: "Real-time quote fetches by outcome",
		}, []string{"outcome"}),
		BarsAssembled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockmcp_bars_assembled_total",
			Help: "Bars parsed and assembled into series",
		}),
		ComputeDur: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stockmcp_indicator_compute_duration_seconds",
			Help:    "Indicator engine compute latency per series",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockmcp_response_cache_hits_total",
			Help: "Rendered responses served from the response cache",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockmcp_response_cache_misses_total",
			Help: "Response cache misses",
		}),
		StaleServes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockmcp_stale_serves_total",
			Help: "Requests answered from the local bar store after an upstream failure",
		}),
		StreamClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stockmcp_stream_clients",
			Help: "Connected websocket stream clients",
		}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockmcp_http_requests_total",
			Help: "HTTP API requests by endpoint and status",
		}, []string{"endpoint", "status"}),
	}

	reg.MustRegister(
		m.FetchesTotal,
		m.QuotesTotal,
		m.BarsAssembled,
		m.ComputeDur,
		m.CacheHits,
		m.CacheMisses,
		m.StaleServes,
		m.StreamClients,
		m.RequestsTotal,
	)
	return m
}

// Serve starts the /metrics endpoint on addr. Blocks.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, mux)
}
