package services

import (
	"math/rand"
	"reflect"
	"testing"
	"time"
	"traffic-route-service/internal/domain"
)

// slotFromSeconds builds a slot from a seconds matrix; negative entries are unreachable.
func slotFromSeconds(departAt time.Time, seconds [][]int) domain.TimeSlotResult {
	n := len(seconds)
	slot := domain.TimeSlotResult{
		DepartAt:  departAt,
		Durations: make([][]domain.Cost, n),
		Details:   make([][]domain.LegDetail, n),
	}
	for i := range seconds {
		slot.Durations[i] = make([]domain.Cost, n)
		slot.Details[i] = make([]domain.LegDetail, n)
		for j, s := range seconds[i] {
			switch {
			case i == j:
				slot.Details[i][j] = domain.NoTravelDetail()
			case s < 0:
				slot.Durations[i][j] = domain.Unreachable
				slot.Details[i][j] = domain.NoRouteDetail()
			default:
				slot.Durations[i][j] = domain.Seconds(s)
				slot.Details[i][j] = domain.LegDetail{Duration: "x", NormalDuration: "x", Traffic: domain.TrafficNormal}
			}
		}
	}
	return slot
}

func TestNearestNeighborTour(t *testing.T) {
	locations := []string{"HUB", "A", "B", "C"}
	slot := slotFromSeconds(testDepart, [][]int{
		{0, 300, 600, 450},
		{300, 0, 240, 210},
		{600, 240, 0, 270},
		{450, 210, 270, 0},
	})

	p, err := NearestNeighborTour(locations, slot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(p.Route, []string{"HUB", "A", "C", "B"}) {
		t.Fatalf("route = %v, want [HUB A C B]", p.Route)
	}
	if !reflect.DeepEqual(p.Order, []int{0, 1, 3, 2}) {
		t.Fatalf("order = %v, want [0 1 3 2]", p.Order)
	}
	if p.TotalSeconds != 780 {
		t.Fatalf("duration = %d, want 780", p.TotalSeconds)
	}
	if p.TotalMinutes() != 13 {
		t.Fatalf("minutes = %d, want 13", p.TotalMinutes())
	}
	if len(p.Legs) != 3 || p.Legs[1].From != "A" || p.Legs[1].To != "C" {
		t.Fatalf("legs = %+v", p.Legs)
	}
	if !p.StartTime.Equal(testDepart) {
		t.Fatalf("start time = %v, want %v", p.StartTime, testDepart)
	}
}

func TestNearestNeighborTourTieBreaksByLowestIndex(t *testing.T) {
	locations := []string{"S", "X", "Y", "Z"}
	slot := slotFromSeconds(testDepart, [][]int{
		{0, 500, 100, 100},
		{100, 0, 100, 100},
		{100, 100, 0, 100},
		{100, 100, 100, 0},
	})

	p, err := NearestNeighborTour(locations, slot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(p.Order, []int{0, 2, 1, 3}) {
		t.Fatalf("order = %v, want [0 2 1 3]", p.Order)
	}
}

func TestNearestNeighborTourPrefersReachable(t *testing.T) {
	locations := []string{"A", "B", "C"}
	slot := slotFromSeconds(testDepart, [][]int{
		{0, -1, 5000},
		{10, 0, 10},
		{10, 10, 0},
	})

	p, err := NearestNeighborTour(locations, slot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(p.Order, []int{0, 2, 1}) {
		t.Fatalf("order = %v, want [0 2 1]", p.Order)
	}
	if p.Unreachable {
		t.Fatalf("tour should be fully reachable")
	}
}

func TestNearestNeighborTourSelectsUnreachableLast(t *testing.T) {
	locations := []string{"A", "B", "C"}
	slot := slotFromSeconds(testDepart, [][]int{
		{0, 300, -1},
		{300, 0, -1},
		{-1, -1, 0},
	})

	p, err := NearestNeighborTour(locations, slot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(p.Route, []string{"A", "B", "C"}) {
		t.Fatalf("route = %v, want [A B C]", p.Route)
	}
	if !p.Unreachable {
		t.Fatalf("expected proposal to be marked unreachable")
	}
	if !p.Legs[1].Cost.Unreachable || p.Legs[1].Detail.Traffic != domain.TrafficNoRoute {
		t.Fatalf("last leg = %+v, want no route", p.Legs[1])
	}
	if p.TotalSeconds != 300 {
		t.Fatalf("reachable seconds = %d, want 300", p.TotalSeconds)
	}
	if got := p.DisplayTotal(); got != "N/A" {
		t.Fatalf("display total = %q, want N/A", got)
	}
}

func TestNearestNeighborTourSmallInputs(t *testing.T) {
	single, err := NearestNeighborTour([]string{"Home"}, slotFromSeconds(testDepart, [][]int{{0}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(single.Legs) != 0 || single.TotalSeconds != 0 || !reflect.DeepEqual(single.Route, []string{"Home"}) {
		t.Fatalf("single = %+v", single)
	}

	pair, err := NearestNeighborTour([]string{"A", "B"}, slotFromSeconds(testDepart, [][]int{{0, 600}, {600, 0}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pair.Legs) != 1 || pair.DisplayTotal() != "10 minutes" {
		t.Fatalf("pair = %+v", pair)
	}

	if _, err := NearestNeighborTour(nil, domain.TimeSlotResult{}); err == nil {
		t.Fatalf("expected error for empty locations")
	}
}

func TestNearestNeighborTourRejectsShapeMismatch(t *testing.T) {
	slot := slotFromSeconds(testDepart, [][]int{{0, 1}, {1, 0}})
	if _, err := NearestNeighborTour([]string{"A", "B", "C"}, slot); err == nil {
		t.Fatalf("expected error for 2x2 matrix with 3 locations")
	}
}

func TestNearestNeighborTourProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.Intn(7)
		locations := make([]string, n)
		seconds := make([][]int, n)
		for i := 0; i < n; i++ {
			locations[i] = string(rune('A' + i))
			seconds[i] = make([]int, n)
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				// Small range forces ties; occasional unreachable cells.
				if rng.Intn(10) == 0 {
					seconds[i][j] = -1
				} else {
					seconds[i][j] = 60 * rng.Intn(5)
				}
			}
		}
		slot := slotFromSeconds(testDepart, seconds)

		p, err := NearestNeighborTour(locations, slot)
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", trial, err)
		}

		if len(p.Order) != n || p.Order[0] != 0 {
			t.Fatalf("trial %d: order = %v", trial, p.Order)
		}
		seen := make([]bool, n)
		for _, idx := range p.Order {
			if seen[idx] {
				t.Fatalf("trial %d: duplicate index %d in %v", trial, idx, p.Order)
			}
			seen[idx] = true
		}
		if len(p.Legs) != n-1 {
			t.Fatalf("trial %d: legs = %d, want %d", trial, len(p.Legs), n-1)
		}

		sum := 0
		unreachable := false
		for _, leg := range p.Legs {
			if leg.Cost.Unreachable {
				unreachable = true
				continue
			}
			sum += leg.Cost.Seconds
		}
		if p.TotalMinutes() != sum/60 || p.Unreachable != unreachable {
			t.Fatalf("trial %d: total = %d min (unreachable=%v), legs sum to %ds (unreachable=%v)",
				trial, p.TotalMinutes(), p.Unreachable, sum, unreachable)
		}

		again, err := NearestNeighborTour(locations, slot)
		if err != nil {
			t.Fatalf("trial %d: unexpected error: %v", trial, err)
		}
		if !reflect.DeepEqual(p, again) {
			t.Fatalf("trial %d: tour is not deterministic", trial)
		}
	}
}
