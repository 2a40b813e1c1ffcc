// Package entity contains the core business objects of the project.
package entity

import "github.com/paulmach/orb"

// UserLocation is the ephemeral position of the browsing device. It is never
// persisted; it only parameterizes distance ranking.
type UserLocation struct {
	Latitude  float64
	Longitude float64
	Accuracy  *float64 // Meters, nil when the device reports none.
}

// Point returns the location as an orb.Point (longitude first, per orb convention).
func (l UserLocation) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}
