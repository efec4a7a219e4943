package ports

import (
	"context"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

// Port: a boundary for retrieving CoolingPoint entities from a data source.
type CoolingPointRepository interface {
	// NearbyPoints returns at most limit points sorted by increasing distance
	// from the given coordinate. "No points found" is an empty slice, never an
	// error; errors signal genuine transport or storage failures.
	NearbyPoints(ctx context.Context, at domain.Coordinate, limit int) ([]domain.CoolingPoint, error)

	// ListPoints returns every known cooling point.
	ListPoints(ctx context.Context) ([]domain.CoolingPoint, error)
}
