// Package geo provides great-circle distance math for ranking pharmacies
// by proximity to a buyer.
package geo

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// Coordinate is a latitude/longitude pair in degrees. Immutable by
// convention: it is always passed and stored by value.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceKm returns the haversine distance between a and b in kilometers.
// It is symmetric and returns 0 for identical coordinates. Callers are
// responsible for supplying valid latitude/longitude ranges.
func DistanceKm(a, b Coordinate) float64 {
	latDelta := toRadians(b.Latitude - a.Latitude)
	lonDelta := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(latDelta/2)*math.Sin(latDelta/2) +
		math.Cos(toRadians(a.Latitude))*math.Cos(toRadians(b.Latitude))*
			math.Sin(lonDelta/2)*math.Sin(lonDelta/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
