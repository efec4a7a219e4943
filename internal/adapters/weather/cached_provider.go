package weather

import (
	"context"
	"log"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/ports"
)

// CachedProvider decorates a WeatherProvider with a read-through cache.
//
// Cache failures never fail a lookup: a broken cache degrades to calling the
// inner provider, and write failures are only logged.
type CachedProvider struct {
	Inner ports.WeatherProvider
	Cache ports.ForecastCache
}

func NewCachedProvider(inner ports.WeatherProvider, cache ports.ForecastCache) *CachedProvider {
	return &CachedProvider{Inner: inner, Cache: cache}
}

func (c *CachedProvider) Forecast(
	ctx context.Context,
	at domain.Coordinate,
) (*domain.ForecastSnapshot, error) {
	if cached, err := c.Cache.Get(ctx, at); err != nil {
		log.Printf("forecast cache read failed: lat=%.4f lon=%.4f err=%v", at.Lat, at.Lon, err)
	} else if cached != nil {
		return cached, nil
	}

	f, err := c.Inner.Forecast(ctx, at)
	if err != nil {
		return nil, err
	}

	if f != nil {
		if err := c.Cache.Put(ctx, at, f); err != nil {
			log.Printf("forecast cache write failed: lat=%.4f lon=%.4f err=%v", at.Lat, at.Lon, err)
		}
	}

	return f, nil
}
