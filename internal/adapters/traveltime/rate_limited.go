package traveltime

import (
	"context"
	"fmt"
	"time"
	"traffic-route-service/internal/ports"

	"golang.org/x/time/rate"
)

// RateLimited throttles calls to the wrapped provider. Waiting honours ctx, so a
// request deadline turns pending queries into failures instead of blocking.
type RateLimited struct {
	next    ports.TravelTimeProvider
	limiter *rate.Limiter
}

// NewRateLimited allows perSecond queries with the given burst. A non-positive
// perSecond disables throttling.
func NewRateLimited(next ports.TravelTimeProvider, perSecond float64, burst int) *RateLimited {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{next: next, limiter: rate.NewLimiter(limit, burst)}
}

func (r *RateLimited) Query(
	ctx context.Context,
	origin string,
	destination string,
	departAt time.Time,
) (ports.TravelEstimate, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return ports.TravelEstimate{}, fmt.Errorf("rate limit wait: %w", err)
	}
	return r.next.Query(ctx, origin, destination, departAt)
}
