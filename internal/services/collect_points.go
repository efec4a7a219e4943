package services

import (
	"context"
	"fmt"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/ports"
)

const (
	// Per-anchor fetch limits. Endpoints get more candidates than the midpoint:
	// points close to where the user starts or finishes matter more than points
	// merely "on the way".
	nearEndpointLimit = 3
	nearMidpointLimit = 2

	// Upper bound on points per route.
	maxRoutePoints = 8
)

// CollectCoolingPoints gathers candidate cooling points around the start, end,
// and midpoint of a route.
//
// Results are concatenated in that anchor order, deduplicated by ID keeping
// the first occurrence, and capped at maxRoutePoints while preserving the
// relative order of first appearance. Repository failures abort collection;
// "nothing nearby" is an empty slice, not an error.
func CollectCoolingPoints(
	ctx context.Context,
	start, end domain.Coordinate,
	repo ports.CoolingPointRepository,
) ([]domain.CoolingPoint, error) {
	anchors := []struct {
		name  string
		at    domain.Coordinate
		limit int
	}{
		{"start", start, nearEndpointLimit},
		{"end", end, nearEndpointLimit},
		{"midpoint", Midpoint(start, end), nearMidpointLimit},
	}

	seen := make(map[string]struct{}, maxRoutePoints)
	collected := make([]domain.CoolingPoint, 0, maxRoutePoints)

	for _, a := range anchors {
		points, err := repo.NearbyPoints(ctx, a.at, a.limit)
		if err != nil {
			return nil, fmt.Errorf("collect cooling points: fetch near %s: %w", a.name, err)
		}

		for _, p := range points {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			collected = append(collected, p)
		}
	}

	if len(collected) > maxRoutePoints {
		collected = collected[:maxRoutePoints]
	}

	return collected, nil
}
