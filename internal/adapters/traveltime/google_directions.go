package traveltime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"traffic-route-service/internal/ports"
)

// GoogleDirectionsProvider implements TravelTimeProvider using the Google Maps
// Directions API with the "best_guess" traffic model.
//
// The provider is safe for concurrent use.
type GoogleDirectionsProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewGoogleDirectionsProvider(apiKey, baseURL string, timeout time.Duration) (*GoogleDirectionsProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("google directions api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &GoogleDirectionsProvider{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

type textValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Legs []struct {
			Duration          textValue  `json:"duration"`
			DurationInTraffic *textValue `json:"duration_in_traffic"`
		} `json:"legs"`
	} `json:"routes"`
}

// Query asks for directions leaving at departAt and reports the first leg of the first route.
func (g *GoogleDirectionsProvider) Query(
	ctx context.Context,
	origin string,
	destination string,
	departAt time.Time,
) (ports.TravelEstimate, error) {
	if origin == "" || destination == "" {
		return ports.TravelEstimate{}, errors.New("google directions: origin and destination must be non-empty")
	}

	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("departure_time", strconv.FormatInt(departAt.Unix(), 10))
	q.Set("traffic_model", "best_guess")
	q.Set("key", g.apiKey)

	req, err := g.newRequest(ctx, g.baseURL+"/maps/api/directions/json?"+q.Encode())
	if err != nil {
		return ports.TravelEstimate{}, fmt.Errorf("google directions: %w", err)
	}

	resp, err := g.do(req)
	if err != nil {
		return ports.TravelEstimate{}, fmt.Errorf("google directions request: %w", err)
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.TravelEstimate{}, fmt.Errorf("decode directions response: %w", err)
	}

	switch decoded.Status {
	case "OK":
	case "ZERO_RESULTS":
		return ports.TravelEstimate{Found: false}, nil
	default:
		if decoded.ErrorMessage != "" {
			return ports.TravelEstimate{}, fmt.Errorf("google directions status %s: %s", decoded.Status, decoded.ErrorMessage)
		}
		return ports.TravelEstimate{}, fmt.Errorf("google directions status %s", decoded.Status)
	}

	if len(decoded.Routes) == 0 || len(decoded.Routes[0].Legs) == 0 {
		return ports.TravelEstimate{Found: false}, nil
	}

	leg := decoded.Routes[0].Legs[0]
	baseline := ports.Duration{Seconds: leg.Duration.Value, Text: leg.Duration.Text}

	// Traffic data is only returned for driving requests with a departure time.
	inTraffic := baseline
	if leg.DurationInTraffic != nil {
		inTraffic = ports.Duration{Seconds: leg.DurationInTraffic.Value, Text: leg.DurationInTraffic.Text}
	}

	return ports.TravelEstimate{
		Found:     true,
		InTraffic: inTraffic,
		Baseline:  baseline,
	}, nil
}
