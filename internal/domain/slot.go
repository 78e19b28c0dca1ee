package domain

import (
	"fmt"
	"time"
)

// Duration and detail matrices evaluated for one departure time.
// Both matrices are N x N for N locations and are read-only once built.
type TimeSlotResult struct {
	DepartAt  time.Time
	Durations [][]Cost
	Details   [][]LegDetail
}

// Validate checks that both matrices are n x n with a zero diagonal.
func (r TimeSlotResult) Validate(n int) error {
	if len(r.Durations) != n || len(r.Details) != n {
		return fmt.Errorf(
			"time slot %s: matrix has %d rows and %d detail rows, want %d",
			r.DepartAt.Format(time.RFC3339), len(r.Durations), len(r.Details), n,
		)
	}

	for i := 0; i < n; i++ {
		if len(r.Durations[i]) != n || len(r.Details[i]) != n {
			return fmt.Errorf(
				"time slot %s: row %d has %d cells and %d details, want %d",
				r.DepartAt.Format(time.RFC3339), i, len(r.Durations[i]), len(r.Details[i]), n,
			)
		}
		if r.Durations[i][i] != (Cost{}) {
			return fmt.Errorf("time slot %s: diagonal cell %d is not zero", r.DepartAt.Format(time.RFC3339), i)
		}
	}

	return nil
}
