// Package geo provides the pure geographic helpers behind distance ranking:
// great-circle distance and human-readable distance formatting.
package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

const earthRadiusKm = 6371.0

// DistanceKm calculates the great circle distance between two points in
// kilometers using the haversine formula. It is symmetric and returns zero
// for equal points. Coordinates are not validated here; see IsValid.
func DistanceKm(a, b orb.Point) float64 {
	lat1Rad := a.Lat() * math.Pi / 180
	lng1Rad := a.Lon() * math.Pi / 180
	lat2Rad := b.Lat() * math.Pi / 180
	lng2Rad := b.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// FormatDistance formats a distance in kilometers into a short label:
// meters below one kilometer ("400m"), otherwise kilometers with one decimal
// ("1.3km"). Rounding is half away from zero.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}

	return fmt.Sprintf("%.1fkm", math.Round(km*10)/10)
}

// IsValid checks if a point is within valid geographic bounds (Earth).
func IsValid(p orb.Point) bool {
	if math.IsNaN(p.Lat()) || math.IsNaN(p.Lon()) ||
		math.IsInf(p.Lat(), 0) || math.IsInf(p.Lon(), 0) {
		return false
	}

	return p.Lat() >= -90 && p.Lat() <= 90 &&
		p.Lon() >= -180 && p.Lon() <= 180
}
