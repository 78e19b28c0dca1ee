package services

import (
	"fmt"
	"log"
	"traffic-route-service/internal/domain"
)

// CompareRoutes builds one proposal per candidate start hour, in candidate order,
// reusing the precomputed slot matrices.
//
// A candidate hour is matched against the first slot departing at that hour.
// When no slot matches, the first slot is used and the proposal is marked with
// SlotFallback so callers can tell the substitution happened.
func CompareRoutes(
	locations []string,
	slots []domain.TimeSlotResult,
	candidateHours []int,
) ([]*domain.RouteProposal, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("compare routes: %w", errNoTimeSlots)
	}
	if len(candidateHours) == 0 {
		return nil, fmt.Errorf("compare routes: %w", errNoCandidateHours)
	}

	proposals := make([]*domain.RouteProposal, 0, len(candidateHours))
	for _, hour := range candidateHours {
		idx, ok := slotIndexForHour(slots, hour)
		if !ok {
			log.Printf(
				"compare routes: no slot at hour %d, falling back to %s",
				hour, slots[0].DepartAt.Format(domain.StartTimeLayout),
			)
			idx = 0
		}

		p, err := NearestNeighborTour(locations, slots[idx])
		if err != nil {
			return nil, fmt.Errorf("compare routes: hour %d: %w", hour, err)
		}

		p.RequestedHour = hour
		p.SlotFallback = !ok
		proposals = append(proposals, p)
	}

	return proposals, nil
}

func slotIndexForHour(slots []domain.TimeSlotResult, hour int) (int, bool) {
	for i, s := range slots {
		if s.DepartAt.Hour() == hour {
			return i, true
		}
	}
	return 0, false
}
