package services

import (
	"context"
	"log"
	"sync/atomic"
	"time"
	"traffic-route-service/internal/domain"
	"traffic-route-service/internal/platform/obs"
	"traffic-route-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// Counts of provider queries issued while building matrices.
type MatrixStats struct {
	Queried int
	NoRoute int
	Failed  int
}

func (s *MatrixStats) add(o MatrixStats) {
	s.Queried += o.Queried
	s.NoRoute += o.NoRoute
	s.Failed += o.Failed
}

// BuildMatrix queries every ordered pair of locations for one departure time.
//
// Cells are issued in row-major order and at most workers queries run at
// once; each goroutine owns exactly one cell, so no locking is needed. The
// result is always fully populated: per-cell failures are absorbed as
// unreachable entries. The error is reserved for programming faults.
func BuildMatrix(
	ctx context.Context,
	provider ports.TravelTimeProvider,
	locations []string,
	departAt time.Time,
	workers int,
) (_ domain.TimeSlotResult, _ MatrixStats, err error) {
	defer obs.Time(ctx, "matrix.Build "+departAt.Format(domain.StartTimeLayout))(&err)

	if provider == nil {
		return domain.TimeSlotResult{}, MatrixStats{}, errNilProvider
	}
	if workers < 1 {
		workers = 1
	}

	n := len(locations)
	durations := make([][]domain.Cost, n)
	details := make([][]domain.LegDetail, n)
	for i := range durations {
		durations[i] = make([]domain.Cost, n)
		details[i] = make([]domain.LegDetail, n)
	}

	var queried, noRoute, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(workers)

	for i, origin := range locations {
		for j, destination := range locations {
			if i == j {
				durations[i][j] = domain.Seconds(0)
				details[i][j] = domain.NoTravelDetail()
				continue
			}

			g.Go(func() error {
				cost, detail, outcome := QueryLeg(ctx, provider, origin, destination, departAt)
				durations[i][j] = cost
				details[i][j] = detail

				queried.Add(1)
				switch outcome {
				case LegNoRoute:
					log.Printf("req_id=%s no route from %q to %q at %s", obs.RequestID(ctx), origin, destination, departAt.Format(time.RFC3339))
					noRoute.Add(1)
				case LegFailed:
					log.Printf("req_id=%s query failed from %q to %q at %s: %s", obs.RequestID(ctx), origin, destination, departAt.Format(time.RFC3339), detail.Traffic)
					failed.Add(1)
				}
				return nil
			})
		}
	}

	// Cell goroutines never return an error.
	_ = g.Wait()

	stats := MatrixStats{
		Queried: int(queried.Load()),
		NoRoute: int(noRoute.Load()),
		Failed:  int(failed.Load()),
	}

	return domain.TimeSlotResult{
		DepartAt:  departAt,
		Durations: durations,
		Details:   details,
	}, stats, nil
}
