package ports

import (
	"context"
	"time"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

// Default retention for cached forecasts. Current-conditions data goes stale
// quickly; anything older is worse than a fresh lookup.
const DefaultForecastTTL = 10 * time.Minute

// Optional cache for forecast snapshots keyed by coordinate.
type ForecastCache interface {
	// Get returns the cached snapshot for a coordinate, or (nil, nil) on a miss.
	Get(ctx context.Context, at domain.Coordinate) (*domain.ForecastSnapshot, error)

	// Put stores a snapshot for a coordinate.
	Put(ctx context.Context, at domain.Coordinate, f *domain.ForecastSnapshot) error
}
