package services

import (
	"errors"
	"fmt"
)

var (
	ErrNoLocations      = errors.New("no locations provided")
	ErrTooManyLocations = errors.New("too many locations")
	errNilProvider      = errors.New("travel time provider must be non-nil")
	errNoTimeSlots      = errors.New("no time slots evaluated")
	errNoCandidateHours = errors.New("no candidate start hours configured")
)

// InputError reports a request that was rejected before any provider call.
type InputError struct {
	Err    error
	Detail string
}

func (e *InputError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Detail)
}

func (e *InputError) Unwrap() error { return e.Err }
