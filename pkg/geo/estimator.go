// Package geo estimates great-circle distances between named locations.
package geo

import (
	"math"

	"github.com/Ramsey-B/fern/pkg/normalizers"
)

// earthRadiusKm is the Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// DefaultSentinelKm is the distance reported when either location name is
// unknown. Unmapped locations are treated as "far" rather than failing.
const DefaultSentinelKm = 500.0

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DefaultLocations returns the coordinate table the platform ships with.
func DefaultLocations() map[string]Coordinates {
	return map[string]Coordinates{
		"Paris":     {Lat: 48.8566, Lng: 2.3522},
		"Lyon":      {Lat: 45.7578, Lng: 4.8320},
		"Marseille": {Lat: 43.2965, Lng: 5.3698},
		"Bordeaux":  {Lat: 44.8378, Lng: -0.5792},
		"Lille":     {Lat: 50.6292, Lng: 3.0573},
	}
}

// Estimator resolves location names to coordinates and computes distances.
// The location table is injected so callers can test with arbitrary datasets.
// Estimator is read-only after construction and safe for concurrent use.
type Estimator struct {
	locations  map[string]Coordinates
	sentinelKm float64
}

// NewEstimator creates an Estimator over the given location table. Names are
// normalized on both insert and lookup. A sentinelKm <= 0 falls back to
// DefaultSentinelKm.
func NewEstimator(locations map[string]Coordinates, sentinelKm float64) *Estimator {
	if sentinelKm <= 0 {
		sentinelKm = DefaultSentinelKm
	}

	normalized := make(map[string]Coordinates, len(locations))
	for name, coords := range locations {
		normalized[normalizers.Location(name)] = coords
	}

	return &Estimator{
		locations:  normalized,
		sentinelKm: sentinelKm,
	}
}

// NewDefaultEstimator creates an Estimator over DefaultLocations.
func NewDefaultEstimator() *Estimator {
	return NewEstimator(DefaultLocations(), DefaultSentinelKm)
}

// SentinelKm returns the distance reported for unknown locations.
func (e *Estimator) SentinelKm() float64 {
	return e.sentinelKm
}

// Known reports whether the location name resolves to coordinates.
func (e *Estimator) Known(name string) bool {
	_, ok := e.locations[normalizers.Location(name)]
	return ok
}

// Distance returns the great-circle distance in kilometers between two named
// locations. If either name is absent from the table it returns the sentinel
// distance. Always returns a finite number; never fails.
func (e *Estimator) Distance(a, b string) float64 {
	from, okA := e.locations[normalizers.Location(a)]
	to, okB := e.locations[normalizers.Location(b)]
	if !okA || !okB {
		return e.sentinelKm
	}

	return haversine(from, to)
}

// haversine computes the great-circle distance between two coordinates.
func haversine(from, to Coordinates) float64 {
	dLat := radians(to.Lat - from.Lat)
	dLng := radians(to.Lng - from.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(from.Lat))*math.Cos(radians(to.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
