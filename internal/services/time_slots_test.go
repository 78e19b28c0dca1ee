package services

import (
	"context"
	"testing"
	"time"
	"traffic-route-service/internal/adapters/traveltime"
)

func fixedNow() time.Time {
	return time.Date(2026, 10, 15, 22, 47, 13, 500, time.UTC)
}

func TestSchedulerSlotsAreTomorrow(t *testing.T) {
	s := Scheduler{Hours: []int{9, 12, 15, 17, 19}, Location: time.UTC, Now: fixedNow}

	slots := s.Slots()
	if len(slots) != 5 {
		t.Fatalf("slots = %d, want 5", len(slots))
	}

	for i, h := range s.Hours {
		want := time.Date(2026, 10, 16, h, 0, 0, 0, time.UTC)
		if !slots[i].Equal(want) {
			t.Fatalf("slot %d = %v, want %v", i, slots[i], want)
		}
	}
}

func TestSchedulerSlotsCrossMonthEnd(t *testing.T) {
	s := Scheduler{
		Hours:    []int{9},
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2026, 12, 31, 8, 0, 0, 0, time.UTC) },
	}

	want := time.Date(2027, 1, 1, 9, 0, 0, 0, time.UTC)
	if got := s.Slots()[0]; !got.Equal(want) {
		t.Fatalf("slot = %v, want %v", got, want)
	}
}

func TestSchedulerBuildSlotsKeepsOrder(t *testing.T) {
	locations := []string{"A", "B"}
	provider := traveltime.NewMockProvider([]traveltime.MockPair{
		{From: "A", To: "B", Seconds: 600},
		{From: "B", To: "A", Seconds: 600},
		{From: "A", To: "B", Seconds: 1500, BaselineSeconds: 600, Hour: traveltime.Hour(17)},
	})

	s := Scheduler{Hours: []int{9, 17, 12}, Location: time.UTC, Now: fixedNow, Workers: 2}
	results, stats, err := s.BuildSlots(context.Background(), provider, locations)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	for i, h := range []int{9, 17, 12} {
		if results[i].DepartAt.Hour() != h {
			t.Fatalf("result %d hour = %d, want %d", i, results[i].DepartAt.Hour(), h)
		}
	}

	if got := results[1].Durations[0][1].Seconds; got != 1500 {
		t.Fatalf("17:00 A->B = %d, want 1500", got)
	}
	if got := results[0].Durations[0][1].Seconds; got != 600 {
		t.Fatalf("09:00 A->B = %d, want 600", got)
	}
	if stats.Queried != 6 {
		t.Fatalf("queried = %d, want 6", stats.Queried)
	}
}
