package traveltime

import (
	"context"
	"time"
	"traffic-route-service/internal/platform/metrics"
	"traffic-route-service/internal/platform/obs"
	"traffic-route-service/internal/ports"
)

// Instrumented records provider outcomes and latency.
type Instrumented struct {
	next ports.TravelTimeProvider
}

func NewInstrumented(next ports.TravelTimeProvider) *Instrumented {
	return &Instrumented{next: next}
}

func (i *Instrumented) Query(
	ctx context.Context,
	origin string,
	destination string,
	departAt time.Time,
) (est ports.TravelEstimate, err error) {
	defer obs.Time(ctx, "traveltime.Query")(&err)

	start := time.Now()
	est, err = i.next.Query(ctx, origin, destination, departAt)
	metrics.ProviderLatency.Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		metrics.ProviderQueries.WithLabelValues("error").Inc()
	case !est.Found:
		metrics.ProviderQueries.WithLabelValues("no_route").Inc()
	default:
		metrics.ProviderQueries.WithLabelValues("ok").Inc()
	}

	return est, err
}
