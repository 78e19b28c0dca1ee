package api

import (
	"net/http"
	"traffic-route-service/internal/api/handlers"
	"traffic-route-service/internal/platform/metrics"
	"traffic-route-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// recorder may be nil when no run log is configured.
func NewRouter(provider ports.TravelTimeProvider, recorder ports.RunRecorder, opts handlers.OptimizeOptions) http.Handler {
	metrics.RegisterDefault()

	mux := http.NewServeMux()

	optimizeHandler := &handlers.OptimizeHandler{
		Provider: provider,
		Recorder: recorder,
		Options:  opts,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/optimize_route", optimizeHandler.Optimize)

	return requestIDMiddleware(loggingMiddleware(mux))
}
