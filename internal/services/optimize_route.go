package services

import (
	"context"
	"fmt"
	"log"
	"time"
	"traffic-route-service/internal/domain"
	"traffic-route-service/internal/platform/obs"
	"traffic-route-service/internal/ports"

	"github.com/google/uuid"
)

type OptimizeRouteRequest struct {
	Locations      []string
	Scheduler      Scheduler
	CandidateHours []int
	// Zero means no limit.
	MaxLocations int
	// Zero disables the overall deadline.
	RequestTimeout time.Duration
}

// OptimizeRoute evaluates every time slot and returns one proposal per
// candidate start hour.
//
// Only input validation and unexpected faults are returned as errors; missing
// routes and provider failures degrade individual legs instead. The recorder
// is optional and its failures are logged, not returned.
func OptimizeRoute(
	ctx context.Context,
	req OptimizeRouteRequest,
	provider ports.TravelTimeProvider,
	recorder ports.RunRecorder,
) (_ []*domain.RouteProposal, err error) {
	defer obs.Time(ctx, "optimize.Route")(&err)

	if len(req.Locations) == 0 {
		return nil, &InputError{Err: ErrNoLocations}
	}
	if req.MaxLocations > 0 && len(req.Locations) > req.MaxLocations {
		return nil, &InputError{
			Err:    ErrTooManyLocations,
			Detail: fmt.Sprintf("got %d, limit is %d", len(req.Locations), req.MaxLocations),
		}
	}
	if provider == nil {
		return nil, fmt.Errorf("optimize route: %w", errNilProvider)
	}

	started := time.Now()

	buildCtx := ctx
	if req.RequestTimeout > 0 {
		var cancel context.CancelFunc
		buildCtx, cancel = context.WithTimeout(ctx, req.RequestTimeout)
		defer cancel()
	}

	slots, stats, err := req.Scheduler.BuildSlots(buildCtx, provider, req.Locations)
	if err != nil {
		return nil, fmt.Errorf("optimize route: build slots: %w", err)
	}

	proposals, err := CompareRoutes(req.Locations, slots, req.CandidateHours)
	if err != nil {
		return nil, fmt.Errorf("optimize route: %w", err)
	}

	log.Printf(
		"req_id=%s optimize route: locations=%d slots=%d queried=%d no_route=%d failed=%d",
		obs.RequestID(ctx), len(req.Locations), len(slots), stats.Queried, stats.NoRoute, stats.Failed,
	)

	if recorder != nil {
		recordRun(ctx, recorder, domain.RunSummary{
			RunID:         uuid.NewString(),
			RequestID:     obs.RequestID(ctx),
			RequestedAt:   started.UTC(),
			LocationCount: len(req.Locations),
			SlotCount:     len(slots),
			QueriedCells:  stats.Queried,
			NoRouteCells:  stats.NoRoute,
			FailedCells:   stats.Failed,
			ElapsedMillis: time.Since(started).Milliseconds(),
		})
	}

	return proposals, nil
}

// recordRun writes the audit record even if the request context is already done.
func recordRun(ctx context.Context, recorder ports.RunRecorder, run domain.RunSummary) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := recorder.RecordRun(ctx, run); err != nil {
		log.Printf("req_id=%s run log write failed: %v", run.RequestID, err)
	}
}
