package domain

import (
	"testing"
	"time"
)

func TestTimeSlotResultValidate(t *testing.T) {
	slot := TimeSlotResult{
		DepartAt: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC),
		Durations: [][]Cost{
			{Seconds(0), Seconds(60)},
			{Unreachable, Seconds(0)},
		},
		Details: [][]LegDetail{
			{NoTravelDetail(), {Duration: "1 min", Traffic: TrafficNormal}},
			{NoRouteDetail(), NoTravelDetail()},
		},
	}

	if err := slot.Validate(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := slot.Validate(3); err == nil {
		t.Fatalf("expected dimension error")
	}

	slot.Details[1] = slot.Details[1][:1]
	if err := slot.Validate(2); err == nil {
		t.Fatalf("expected ragged detail row error")
	}
}
