package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceSameLocationIsZero(t *testing.T) {
	est := NewDefaultEstimator()

	for _, name := range []string{"Paris", "Lyon", "Marseille", "Bordeaux", "Lille"} {
		assert.InDelta(t, 0, est.Distance(name, name), 0.0001, name)
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	est := NewDefaultEstimator()

	cities := []string{"Paris", "Lyon", "Marseille", "Bordeaux", "Lille"}
	for _, a := range cities {
		for _, b := range cities {
			assert.InDelta(t, est.Distance(a, b), est.Distance(b, a), 0.0001)
		}
	}
}

func TestDistanceKnownPairs(t *testing.T) {
	est := NewDefaultEstimator()

	// Paris-Lyon is roughly 390 km as the crow flies.
	d := est.Distance("Paris", "Lyon")
	assert.Greater(t, d, 350.0)
	assert.Less(t, d, 430.0)

	// Lille-Marseille crosses most of the country.
	d = est.Distance("Lille", "Marseille")
	assert.Greater(t, d, 800.0)
}

func TestDistanceUnknownLocationReturnsSentinel(t *testing.T) {
	est := NewDefaultEstimator()

	assert.Equal(t, DefaultSentinelKm, est.Distance("Paris", "Atlantis"))
	assert.Equal(t, DefaultSentinelKm, est.Distance("Atlantis", "Lyon"))
	assert.Equal(t, DefaultSentinelKm, est.Distance("Atlantis", "Mu"))
}

func TestDistanceNormalizesNames(t *testing.T) {
	est := NewDefaultEstimator()

	assert.InDelta(t, 0, est.Distance("  lyon ", "Lyon"), 0.0001)
	assert.True(t, est.Known("PARIS"))
	assert.False(t, est.Known("Atlantis"))
}

func TestNewEstimatorCustomTableAndSentinel(t *testing.T) {
	est := NewEstimator(map[string]Coordinates{
		"Equator Zero": {Lat: 0, Lng: 0},
		"One East":     {Lat: 0, Lng: 1},
	}, 42)

	// One degree of longitude at the equator is ~111 km.
	d := est.Distance("Equator Zero", "One East")
	assert.InDelta(t, 111.19, d, 0.5)

	assert.Equal(t, 42.0, est.Distance("Equator Zero", "nowhere"))
	assert.Equal(t, 42.0, est.SentinelKm())
}
