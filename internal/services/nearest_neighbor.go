package services

import (
	"errors"
	"fmt"
	"traffic-route-service/internal/domain"
)

// Build a visiting order with a greedy nearest-unvisited-next heuristic.
//
// The tour always starts at locations[0]. Each step moves to the unvisited
// location with the smallest duration from the current one; ties go to the
// lowest index, and reachable legs always beat unreachable ones. When only
// unreachable locations remain the cheapest (lowest index) is still taken so
// the proposal stays complete and is flagged as unreachable.
//
// It does not attempt global optimization and must stay sequential.
func NearestNeighborTour(locations []string, slot domain.TimeSlotResult) (*domain.RouteProposal, error) {
	n := len(locations)
	if n == 0 {
		return nil, errors.New("nearest neighbor tour: locations must not be empty")
	}
	if err := slot.Validate(n); err != nil {
		return nil, fmt.Errorf("nearest neighbor tour: %w", err)
	}

	visited := make([]bool, n)
	visited[0] = true
	current := 0

	order := make([]int, 1, n)
	legs := make([]domain.Leg, 0, n-1)
	totalSeconds := 0
	unreachable := false

	for step := 1; step < n; step++ {
		best := -1
		for x := 0; x < n; x++ {
			if visited[x] {
				continue
			}
			// Strict comparison keeps the lowest index on ties.
			if best == -1 || slot.Durations[current][x].Less(slot.Durations[current][best]) {
				best = x
			}
		}

		cost := slot.Durations[current][best]
		if cost.Unreachable {
			unreachable = true
		} else {
			totalSeconds += cost.Seconds
		}

		legs = append(legs, domain.Leg{
			From:   locations[current],
			To:     locations[best],
			Cost:   cost,
			Detail: slot.Details[current][best],
		})

		visited[best] = true
		order = append(order, best)
		current = best
	}

	route := make([]string, 0, n)
	for _, idx := range order {
		route = append(route, locations[idx])
	}

	return &domain.RouteProposal{
		StartTime:    slot.DepartAt,
		Order:        order,
		Route:        route,
		Legs:         legs,
		TotalSeconds: totalSeconds,
		Unreachable:  unreachable,
	}, nil
}
