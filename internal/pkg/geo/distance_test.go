package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Coordinate
		expected  float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         Coordinate{Latitude: -6.175392, Longitude: 106.827153},
			b:         Coordinate{Latitude: -6.175392, Longitude: 106.827153},
			expected:  0,
			tolerance: 1e-9,
		},
		{
			name:      "one degree of longitude at the equator",
			a:         Coordinate{Latitude: 0, Longitude: 0},
			b:         Coordinate{Latitude: 0, Longitude: 1},
			expected:  111194.926,
			tolerance: 0.01,
		},
		{
			name:      "Monas to Bundaran HI",
			a:         Coordinate{Latitude: -6.175392, Longitude: 106.827153},
			b:         Coordinate{Latitude: -6.193125, Longitude: 106.821810},
			expected:  2058.38,
			tolerance: 0.5,
		},
		{
			name:      "first two points of the canonical polyline",
			a:         Coordinate{Latitude: 38.5, Longitude: -120.2},
			b:         Coordinate{Latitude: 40.7, Longitude: -120.95},
			expected:  252924.44,
			tolerance: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), tt.tolerance)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Coordinate{Latitude: -6.175392, Longitude: 106.827153}
	b := Coordinate{Latitude: -6.914744, Longitude: 107.609810}

	assert.Equal(t, Distance(a, b), Distance(b, a))
}
