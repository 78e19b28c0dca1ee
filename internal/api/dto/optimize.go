package dto

type OptimizeRouteRequest struct {
	Locations []string `json:"locations"`
}

type LegDetailResponse struct {
	Duration       string `json:"duration"`
	NormalDuration string `json:"normal_duration,omitempty"`
	Traffic        string `json:"traffic"`
}

type LegResponse struct {
	From    string            `json:"from"`
	To      string            `json:"to"`
	Details LegDetailResponse `json:"details"`
}

type RouteResponse struct {
	StartTime     string        `json:"start_time"`
	TotalDuration string        `json:"total_duration"`
	Route         []string      `json:"route"`
	LegDetails    []LegResponse `json:"leg_details"`
	SlotFallback  bool          `json:"slot_fallback,omitempty"`
}

type OptimizeRouteResponse struct {
	Routes []RouteResponse `json:"routes"`
}
