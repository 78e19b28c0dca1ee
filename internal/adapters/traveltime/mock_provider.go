package traveltime

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
	"traffic-route-service/internal/ports"
)

// MockPair configures one origin -> destination answer.
// BaselineSeconds defaults to Seconds; Hour, when set, limits the pair to
// departures at that hour and takes precedence over an hour-less pair.
type MockPair struct {
	From, To        string
	Seconds         int
	BaselineSeconds int
	NoRoute         bool
	Err             error
	Hour            *int
}

// MockQuery records one call made to MockProvider.
type MockQuery struct {
	Origin, Destination string
	DepartAt            time.Time
}

// MockProvider is a deterministic in-memory TravelTimeProvider for tests and
// local runs. Pairs that were not configured fail like a provider error.
type MockProvider struct {
	m map[string]MockPair

	mu    sync.Mutex
	calls []MockQuery
}

func NewMockProvider(pairs []MockPair) *MockProvider {
	m := make(map[string]MockPair, len(pairs))
	for _, p := range pairs {
		m[mockKey(p.From, p.To, p.Hour)] = p
	}
	return &MockProvider{m: m}
}

// Hour is a helper for MockPair.Hour.
func Hour(h int) *int { return &h }

func mockKey(from, to string, hour *int) string {
	if hour == nil {
		return from + "|" + to
	}
	return from + "|" + to + "|" + strconv.Itoa(*hour)
}

func (p *MockProvider) Query(
	ctx context.Context,
	origin string,
	destination string,
	departAt time.Time,
) (ports.TravelEstimate, error) {
	p.mu.Lock()
	p.calls = append(p.calls, MockQuery{Origin: origin, Destination: destination, DepartAt: departAt})
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return ports.TravelEstimate{}, err
	}

	h := departAt.Hour()
	pair, ok := p.m[mockKey(origin, destination, &h)]
	if !ok {
		pair, ok = p.m[mockKey(origin, destination, nil)]
	}
	if !ok {
		return ports.TravelEstimate{}, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}

	if pair.Err != nil {
		return ports.TravelEstimate{}, pair.Err
	}
	if pair.NoRoute {
		return ports.TravelEstimate{Found: false}, nil
	}

	baseline := pair.BaselineSeconds
	if baseline == 0 {
		baseline = pair.Seconds
	}

	return ports.TravelEstimate{
		Found:     true,
		InTraffic: ports.Duration{Seconds: pair.Seconds, Text: minutesText(pair.Seconds)},
		Baseline:  ports.Duration{Seconds: baseline, Text: minutesText(baseline)},
	}, nil
}

// Calls returns a copy of the queries received so far.
func (p *MockProvider) Calls() []MockQuery {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]MockQuery, len(p.calls))
	copy(out, p.calls)
	return out
}

// minutesText mimics the provider's short display text ("1 min", "12 mins").
func minutesText(seconds int) string {
	m := (seconds + 30) / 60
	if m == 1 {
		return "1 min"
	}
	return fmt.Sprintf("%d mins", m)
}
