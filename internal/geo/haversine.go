// Package geo provides great-circle distance math for check-in proximity
// validation. It is pure and does no I/O.
package geo

import "math"

const earthRadiusKm = 6371.0

type Point struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the haversine great-circle distance between two points in
// kilometers.
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	deltaLat := toRadians(b.Latitude - a.Latitude)
	deltaLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// WithinRange reports whether the two points are at most maxKm apart.
func WithinRange(a, b Point, maxKm float64) bool {
	return Distance(a, b) <= maxKm
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
