package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

func testCache(t *testing.T) *RedisForecastCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisForecastCache(client, time.Minute)
}

func TestForecastCacheRoundTrip(t *testing.T) {
	c := testCache(t)
	at := domain.Coordinate{Lat: -23.5505, Lon: -46.6333}

	snapshot := &domain.ForecastSnapshot{
		TemperatureC: 31.5,
		HumidityPct:  40,
		UVIndex:      7,
		WindKmh:      12,
		Condition:    "Clear",
		Alerts:       []string{"High temperature - seek cooling points nearby"},
	}

	require.NoError(t, c.Put(context.Background(), at, snapshot))

	got, err := c.Get(context.Background(), at)
	require.NoError(t, err)
	require.Equal(t, snapshot, got)
}

func TestForecastCacheMissReturnsNil(t *testing.T) {
	c := testCache(t)

	got, err := c.Get(context.Background(), domain.Coordinate{Lat: 1, Lon: 2})
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestForecastCacheKeySharedByNearbyCoordinates(t *testing.T) {
	c := testCache(t)

	// Coordinates equal at four-decimal precision share one entry.
	a := domain.Coordinate{Lat: -23.55051, Lon: -46.63329}
	b := domain.Coordinate{Lat: -23.55049, Lon: -46.63331}

	require.NoError(t, c.Put(context.Background(), a, &domain.ForecastSnapshot{TemperatureC: 30}))

	got, err := c.Get(context.Background(), b)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 30.0, got.TemperatureC)
}
