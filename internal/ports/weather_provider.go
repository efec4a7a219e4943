package ports

import (
	"context"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

// Contract for looking up current weather conditions at a coordinate.
type WeatherProvider interface {
	// Forecast returns the conditions at a coordinate, or (nil, nil) when the
	// provider has no data for it. A non-nil error means the lookup itself
	// failed; callers decide whether that degrades to "no data".
	Forecast(ctx context.Context, at domain.Coordinate) (*domain.ForecastSnapshot, error)
}
