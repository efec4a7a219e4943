package services

import (
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

// The closest cooling point to a reference coordinate.
type NearestResult struct {
	Point      domain.CoolingPoint
	DistanceKm float64
}

// NearestPoint returns the candidate closest to user by great-circle distance.
//
// Ties are broken by input order: the first point achieving the minimum wins.
// This keeps selection stable and reproducible. Returns domain.ErrEmptyInput
// when called with zero candidates; that is a contract violation upstream,
// not a runtime condition to retry.
func NearestPoint(user domain.Coordinate, points []domain.CoolingPoint) (NearestResult, error) {
	if len(points) == 0 {
		return NearestResult{}, domain.ErrEmptyInput
	}

	best := points[0]
	minDist := DistanceKm(user, points[0].Location)

	for _, p := range points[1:] {
		d := DistanceKm(user, p.Location)
		// Strict comparison preserves the first-wins tie-break.
		if d < minDist {
			minDist = d
			best = p
		}
	}

	return NearestResult{Point: best, DistanceKm: minDist}, nil
}
