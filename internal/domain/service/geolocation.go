package service

import (
	"context"
	"time"
)

// GeolocationErrorKind classifies why a device position could not be obtained.
type GeolocationErrorKind string

const (
	// GeolocationPermissionDenied means the user refused the position prompt.
	GeolocationPermissionDenied GeolocationErrorKind = "permission_denied"
	// GeolocationUnavailable means no position source could produce a fix.
	GeolocationUnavailable GeolocationErrorKind = "position_unavailable"
	// GeolocationTimeout means no fix arrived within the bounded wait.
	GeolocationTimeout GeolocationErrorKind = "timeout"
)

// GeolocationError is the typed failure of a position request. Callers degrade
// to rating order on any kind; the kind only drives the user-facing banner.
type GeolocationError struct {
	Kind GeolocationErrorKind
}

func (e *GeolocationError) Error() string {
	return "geolocation failed: " + string(e.Kind)
}

// Position is a device fix. ObservedAt lets callers honor the cached-position
// tolerance without re-querying the device.
type Position struct {
	Latitude   float64
	Longitude  float64
	Accuracy   float64 // Meters; zero when unknown.
	ObservedAt time.Time
}

// Geolocation defines the contract of the device positioning capability.
// It is an external collaborator: implementations here only stub or relay it.
type Geolocation interface {
	// CurrentPosition returns the current device position or a *GeolocationError.
	CurrentPosition(ctx context.Context) (*Position, error)
}
