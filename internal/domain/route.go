package domain

import (
	"fmt"
	"time"
)

// Display layout for proposal start times, e.g. "09:00 AM".
const StartTimeLayout = "03:04 PM"

// A single step of a RouteProposal.
type Leg struct {
	From   string
	To     string
	Cost   Cost
	Detail LegDetail
}

// Represents one candidate visiting order for a given start time.
// Order holds location indices (always starting at 0) and Route the matching
// location identifiers. Legs has exactly len(Order)-1 entries.
//
// SlotFallback is set when no evaluated slot matched RequestedHour and the
// first slot was used instead.
type RouteProposal struct {
	StartTime     time.Time
	RequestedHour int
	SlotFallback  bool
	Order         []int
	Route         []string
	Legs          []Leg
	TotalSeconds  int
	Unreachable   bool
}

// TotalMinutes truncates the total duration to whole minutes.
func (p *RouteProposal) TotalMinutes() int {
	return p.TotalSeconds / 60
}

// DisplayStartTime formats StartTime for clients.
func (p *RouteProposal) DisplayStartTime() string {
	return p.StartTime.Format(StartTimeLayout)
}

// DisplayTotal renders the total as "<N> minutes", or "N/A" when any leg is unreachable.
func (p *RouteProposal) DisplayTotal() string {
	if p.Unreachable {
		return "N/A"
	}
	return fmt.Sprintf("%d minutes", p.TotalMinutes())
}
