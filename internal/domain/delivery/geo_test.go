// internal/domain/delivery/geo_test.go
package delivery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineSamePointIsZero(t *testing.T) {
	points := []Coordinates{
		{Lat: 0, Lon: 0},
		{Lat: 14.5776, Lon: 120.9944},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 89.9, Lon: -179.9},
	}
	for _, p := range points {
		assert.InDelta(t, 0, Haversine(p.Lat, p.Lon, p.Lat, p.Lon), 1e-9)
	}
}

func TestHaversineKnownDistances(t *testing.T) {
	// Nashville (BNA) to Los Angeles (LAX), a standard haversine
	// reference pair, scaled to an Earth radius of 6371 km.
	got := Haversine(36.12, -86.67, 33.94, -118.40)
	assert.InDelta(t, 2886.44, got, 0.1)

	// Manila City Hall to the café's fixed coordinates: roughly two
	// kilometers apart.
	got = Haversine(14.5776, 120.9944, 14.5896, 120.9817)
	assert.Less(t, got, 2.5)
	assert.Greater(t, got, 0.5)
}

func TestHaversineIsSymmetric(t *testing.T) {
	ab := Haversine(14.5776, 120.9944, 14.6760, 121.0437)
	ba := Haversine(14.6760, 121.0437, 14.5776, 120.9944)
	assert.InDelta(t, ab, ba, 1e-9)
}
