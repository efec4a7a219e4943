package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/ports"
)

// RedisForecastCache is a Redis-backed cache for forecast snapshots.
//
// Keys are coordinates rounded to four decimals (roughly 11 m at the
// equator), so nearby lookups within one route share entries. Entries expire
// after the configured TTL; current-conditions data is only useful fresh.
type RedisForecastCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisForecastCache(client *redis.Client, ttl time.Duration) *RedisForecastCache {
	if ttl <= 0 {
		ttl = ports.DefaultForecastTTL
	}
	return &RedisForecastCache{Client: client, TTL: ttl}
}

func forecastKey(at domain.Coordinate) string {
	return fmt.Sprintf("forecast:%.4f:%.4f", at.Lat, at.Lon)
}

// Get returns the cached snapshot for a coordinate, or (nil, nil) on a miss.
func (c *RedisForecastCache) Get(
	ctx context.Context,
	at domain.Coordinate,
) (*domain.ForecastSnapshot, error) {
	if c.Client == nil {
		return nil, errors.New("forecast cache: client is nil")
	}

	raw, err := c.Client.Get(ctx, forecastKey(at)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get forecast cache: %w", err)
	}

	var f domain.ForecastSnapshot
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("get forecast cache: decode entry: %w", err)
	}

	return &f, nil
}

// Put stores a snapshot for a coordinate with the cache TTL.
func (c *RedisForecastCache) Put(
	ctx context.Context,
	at domain.Coordinate,
	f *domain.ForecastSnapshot,
) error {
	if c.Client == nil {
		return errors.New("forecast cache: client is nil")
	}
	if f == nil {
		return errors.New("put forecast cache: snapshot is nil")
	}

	raw, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("put forecast cache: encode entry: %w", err)
	}

	if err := c.Client.Set(ctx, forecastKey(at), raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put forecast cache: %w", err)
	}

	return nil
}
