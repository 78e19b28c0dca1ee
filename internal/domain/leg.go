package domain

// Traffic labels attached to LegDetail.
const (
	TrafficNone    = "No traffic"
	TrafficNormal  = "Normal"
	TrafficHeavy   = "Heavy"
	TrafficNoRoute = "No route found"
)

// Human-readable description of one origin -> destination cell.
// NormalDuration is empty for the diagonal and for failed cells.
type LegDetail struct {
	Duration       string
	NormalDuration string
	Traffic        string
}

// Detail used for every diagonal cell.
func NoTravelDetail() LegDetail {
	return LegDetail{Duration: "0 min", Traffic: TrafficNone}
}

// Detail used when the provider reports that no route exists.
func NoRouteDetail() LegDetail {
	return LegDetail{Duration: "N/A", Traffic: TrafficNoRoute}
}

// Detail used when the provider query failed; the message is kept for observability.
func ErrorDetail(msg string) LegDetail {
	return LegDetail{Duration: "Error", Traffic: "Error: " + msg}
}
