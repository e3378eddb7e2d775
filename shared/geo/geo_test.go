package geo_test

import (
	"handy/shared/geo"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmZero(t *testing.T) {
	assert.Zero(t, geo.DistanceKm(12.9716, 77.5946, 12.9716, 77.5946))
}

func TestDistanceKmKnownPoints(t *testing.T) {
	// Bengaluru city center to the airport, roughly 32 km as the crow flies.
	dist := geo.DistanceKm(12.9716, 77.5946, 13.1986, 77.7066)

	assert.InDelta(t, 28.0, dist, 3.0)
}

func TestDistanceKmSymmetry(t *testing.T) {
	there := geo.DistanceKm(28.6139, 77.2090, 19.0760, 72.8777)
	back := geo.DistanceKm(19.0760, 72.8777, 28.6139, 77.2090)

	assert.InDelta(t, there, back, 0.0001)

	// Delhi to Mumbai is on the order of 1150 km.
	assert.InDelta(t, 1150, there, 50)
}
