package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"
	"traffic-route-service/internal/api/dto"
	"traffic-route-service/internal/domain"
	"traffic-route-service/internal/platform/metrics"
	"traffic-route-service/internal/platform/obs"
	"traffic-route-service/internal/ports"
	"traffic-route-service/internal/services"
)

// Settings applied to every optimization request.
type OptimizeOptions struct {
	SlotHours      []int
	CandidateHours []int
	MaxLocations   int
	Workers        int
	RequestTimeout time.Duration
	Location       *time.Location
	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

type OptimizeHandler struct {
	Provider ports.TravelTimeProvider
	Recorder ports.RunRecorder
	Options  OptimizeOptions
}

// Optimize evaluates tomorrow's traffic for the posted locations and returns
// one visiting order per candidate start time.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		metrics.Optimizations.WithLabelValues("input_error").Inc()
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		metrics.Optimizations.WithLabelValues("input_error").Inc()
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	log.Printf("req_id=%s optimize request: locations=%q", obs.RequestID(r.Context()), req.Locations)

	svcReq := services.OptimizeRouteRequest{
		Locations: req.Locations,
		Scheduler: services.Scheduler{
			Hours:    h.Options.SlotHours,
			Location: h.Options.Location,
			Now:      h.Options.Now,
			Workers:  h.Options.Workers,
		},
		CandidateHours: h.Options.CandidateHours,
		MaxLocations:   h.Options.MaxLocations,
		RequestTimeout: h.Options.RequestTimeout,
	}

	proposals, err := services.OptimizeRoute(r.Context(), svcReq, h.Provider, h.Recorder)
	if err != nil {
		var inputErr *services.InputError
		if errors.As(err, &inputErr) {
			metrics.Optimizations.WithLabelValues("input_error").Inc()
			msg := inputErr.Error()
			if errors.Is(err, services.ErrNoLocations) {
				msg = "No locations provided"
			}
			writeError(w, r, http.StatusBadRequest, msg)
			return
		}

		metrics.Optimizations.WithLabelValues("error").Inc()
		log.Printf("req_id=%s optimize route failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.Optimizations.WithLabelValues("ok").Inc()
	writeJSON(w, r, http.StatusOK, toResponse(proposals))
}

func toResponse(proposals []*domain.RouteProposal) dto.OptimizeRouteResponse {
	res := dto.OptimizeRouteResponse{Routes: make([]dto.RouteResponse, 0, len(proposals))}
	for _, p := range proposals {
		legs := make([]dto.LegResponse, 0, len(p.Legs))
		for _, l := range p.Legs {
			legs = append(legs, dto.LegResponse{
				From: l.From,
				To:   l.To,
				Details: dto.LegDetailResponse{
					Duration:       l.Detail.Duration,
					NormalDuration: l.Detail.NormalDuration,
					Traffic:        l.Detail.Traffic,
				},
			})
		}

		res.Routes = append(res.Routes, dto.RouteResponse{
			StartTime:     p.DisplayStartTime(),
			TotalDuration: p.DisplayTotal(),
			Route:         p.Route,
			LegDetails:    legs,
			SlotFallback:  p.SlotFallback,
		})
	}
	return res
}
