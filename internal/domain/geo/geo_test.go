package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_ZeroForEqualPoints(t *testing.T) {
	t.Parallel()

	points := []orb.Point{
		{0, 0},
		{9.1859, 45.4654},   // Milano, Piazza del Duomo
		{-180, -90},
		{13.3615, 38.1157},  // Palermo
	}

	for _, p := range points {
		assert.Zero(t, DistanceKm(p, p))
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	t.Parallel()

	a := orb.Point{9.1859, 45.4654}  // Milano
	b := orb.Point{12.4964, 41.9028} // Roma

	assert.Equal(t, DistanceKm(a, b), DistanceKm(b, a))
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		a, b       orb.Point
		expectedKm float64
		toleranceKm float64
	}{
		{
			name:        "Milano Duomo to Arco della Pace",
			a:           orb.Point{9.1859, 45.4654},
			b:           orb.Point{9.1756, 45.4723},
			expectedKm:  1.1,
			toleranceKm: 0.2,
		},
		{
			name:        "Milano to Roma",
			a:           orb.Point{9.1859, 45.4654},
			b:           orb.Point{12.4964, 41.9028},
			expectedKm:  477,
			toleranceKm: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DistanceKm(tt.a, tt.b)
			assert.InDelta(t, tt.expectedKm, got, tt.toleranceKm)
		})
	}
}

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		km       float64
		expected string
	}{
		{name: "meters", km: 0.4, expected: "400m"},
		{name: "meters rounded", km: 0.4449, expected: "445m"},
		{name: "just under a kilometer", km: 0.9996, expected: "1000m"},
		{name: "exactly one kilometer", km: 1.0, expected: "1.0km"},
		{name: "half rounds away from zero", km: 1.25, expected: "1.3km"},
		{name: "kilometers", km: 12.34, expected: "12.3km"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDistance(tt.km); got != tt.expected {
				t.Fatalf("FormatDistance(%v) = %s, want %s", tt.km, got, tt.expected)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValid(orb.Point{9.1859, 45.4654}))
	assert.True(t, IsValid(orb.Point{-180, -90}))
	assert.False(t, IsValid(orb.Point{181, 0}))
	assert.False(t, IsValid(orb.Point{0, 91}))
}
