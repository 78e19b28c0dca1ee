package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path"},
	)

	// ProviderQueries counts travel-time queries by outcome (ok, no_route, error)
	ProviderQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "travel_time_queries_total", Help: "Travel-time provider queries by outcome."},
		[]string{"outcome"},
	)
	// ProviderLatency tracks provider latency in seconds
	ProviderLatency = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "travel_time_query_duration_seconds", Help: "Travel-time provider query latency.", Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}},
	)
	// Optimizations counts optimization requests by result (ok, input_error, error)
	Optimizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "route_optimizations_total", Help: "Route optimization requests by result."},
		[]string{"result"},
	)
)

var regOnce sync.Once

// RegisterDefault registers the service collectors once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(ProviderQueries)
		Registry.MustRegister(ProviderLatency)
		Registry.MustRegister(Optimizations)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// Handler exposes Registry in the Prometheus text format.
func Handler() http.Handler {
	RegisterDefault()
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
