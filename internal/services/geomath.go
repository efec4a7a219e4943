package services

import (
	"math"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

// Mean Earth radius in kilometers (spherical approximation).
const earthRadiusKm = 6371

// DistanceKm computes the great-circle distance between two coordinates
// using the haversine formula.
//
// Inputs are assumed to be valid coordinates; callers validate ranges before
// invoking. NaN inputs propagate to a NaN result rather than failing, matching
// numeric-library convention. Symmetric within floating-point tolerance, and
// zero for identical points.
func DistanceKm(a, b domain.Coordinate) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Midpoint returns the flat average of two coordinates. Acceptable at city
// scale; not valid near the poles or across the antimeridian.
func Midpoint(a, b domain.Coordinate) domain.Coordinate {
	return domain.Coordinate{
		Lat: (a.Lat + b.Lat) / 2,
		Lon: (a.Lon + b.Lon) / 2,
	}
}
