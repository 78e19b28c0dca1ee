package services

import (
	"context"
	"time"
	"traffic-route-service/internal/domain"
	"traffic-route-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// Scheduler produces the departure times to evaluate and drives one matrix
// build per slot.
type Scheduler struct {
	// Hours of day evaluated for tomorrow, in output order.
	Hours []int
	// Location used to compute "tomorrow"; nil means time.Local.
	Location *time.Location
	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
	// Workers bounds concurrent provider queries per slot.
	Workers int
}

// Slots returns one departure per configured hour on the next calendar day,
// with minutes, seconds and nanoseconds zeroed.
func (s Scheduler) Slots() []time.Time {
	loc := s.Location
	if loc == nil {
		loc = time.Local
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	tomorrow := now().In(loc).AddDate(0, 0, 1)

	slots := make([]time.Time, 0, len(s.Hours))
	for _, h := range s.Hours {
		slots = append(slots, time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), h, 0, 0, 0, loc))
	}
	return slots
}

// BuildSlots builds the matrices of every slot concurrently and returns them in
// slot order. A slot whose queries mostly failed is kept in degraded form.
func (s Scheduler) BuildSlots(
	ctx context.Context,
	provider ports.TravelTimeProvider,
	locations []string,
) ([]domain.TimeSlotResult, MatrixStats, error) {
	slots := s.Slots()

	results := make([]domain.TimeSlotResult, len(slots))
	stats := make([]MatrixStats, len(slots))

	var g errgroup.Group
	for i, departAt := range slots {
		g.Go(func() error {
			r, st, err := BuildMatrix(ctx, provider, locations, departAt, s.Workers)
			if err != nil {
				return err
			}
			results[i] = r
			stats[i] = st
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, MatrixStats{}, err
	}

	var total MatrixStats
	for _, st := range stats {
		total.add(st)
	}

	return results, total, nil
}
