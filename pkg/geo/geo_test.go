package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Distance(-6.2088, 106.8456, -6.2088, 106.8456))
}

func TestDistanceSymmetric(t *testing.T) {
	d1 := Distance(48.8566, 2.3522, 51.5074, -0.1278)
	d2 := Distance(51.5074, -0.1278, 48.8566, 2.3522)
	assert.Equal(t, d1, d2)
}

func TestDistanceKnownPairs(t *testing.T) {
	tests := []struct {
		name       string
		lat1, lon1 float64
		lat2, lon2 float64
		expectedKm float64
	}{
		{"Paris to London", 48.8566, 2.3522, 51.5074, -0.1278, 343.5},
		{"Jakarta to Bandung", -6.2088, 106.8456, -6.9175, 107.6191, 116.0},
		{"across the equator", -1.0, 103.0, 1.0, 103.0, 222.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expectedKm, got, 3.0)
		})
	}
}
