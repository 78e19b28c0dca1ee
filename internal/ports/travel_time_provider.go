package ports

import (
	"context"
	"time"
)

// A provider-reported duration, in seconds and as display text (e.g. "12 mins").
type Duration struct {
	Seconds int
	Text    string
}

// Result of a single travel-time query.
//
// Found is false when the provider answered but knows no route between the two
// locations. That outcome is not an error.
type TravelEstimate struct {
	Found     bool
	InTraffic Duration
	Baseline  Duration
}

// HasTraffic reports whether traffic changes the leg duration.
func (e TravelEstimate) HasTraffic() bool {
	return e.InTraffic.Seconds != e.Baseline.Seconds
}

// Contract for retrieving a traffic-aware travel time between two locations.
type TravelTimeProvider interface {
	// Estimate the trip from origin to destination when leaving at departAt.
	// A non-nil error means the query itself failed.
	Query(ctx context.Context, origin, destination string, departAt time.Time) (TravelEstimate, error)
}
