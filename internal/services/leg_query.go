package services

import (
	"context"
	"time"
	"traffic-route-service/internal/domain"
	"traffic-route-service/internal/ports"
)

// LegOutcome classifies a single provider query.
type LegOutcome int

const (
	LegOK LegOutcome = iota
	LegNoRoute
	LegFailed
)

// QueryLeg asks the provider for one origin -> destination estimate and maps
// the answer into a matrix cell. It never fails: a missing route or a provider
// error becomes the unreachable sentinel with a descriptive detail.
func QueryLeg(
	ctx context.Context,
	provider ports.TravelTimeProvider,
	origin string,
	destination string,
	departAt time.Time,
) (domain.Cost, domain.LegDetail, LegOutcome) {
	// Cells still pending when the request deadline fires are not queried.
	if err := ctx.Err(); err != nil {
		return domain.Unreachable, domain.ErrorDetail(err.Error()), LegFailed
	}

	est, err := provider.Query(ctx, origin, destination, departAt)
	if err != nil {
		return domain.Unreachable, domain.ErrorDetail(err.Error()), LegFailed
	}

	if !est.Found {
		return domain.Unreachable, domain.NoRouteDetail(), LegNoRoute
	}

	traffic := domain.TrafficNormal
	if est.HasTraffic() {
		traffic = domain.TrafficHeavy
	}

	detail := domain.LegDetail{
		Duration:       est.InTraffic.Text,
		NormalDuration: est.Baseline.Text,
		Traffic:        traffic,
	}

	return domain.Seconds(est.InTraffic.Seconds), detail, LegOK
}
