package domain

import "time"

// Audit record of one optimization request. It carries counters only;
// route proposals are never persisted.
type RunSummary struct {
	RunID         string
	RequestID     string
	RequestedAt   time.Time
	LocationCount int
	SlotCount     int
	QueriedCells  int
	NoRouteCells  int
	FailedCells   int
	ElapsedMillis int64
}
