package weather

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

type memoryCache struct {
	mu      sync.Mutex
	entries map[domain.Coordinate]*domain.ForecastSnapshot
	getErr  error
}

func (m *memoryCache) Get(ctx context.Context, at domain.Coordinate) (*domain.ForecastSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.entries[at], nil
}

func (m *memoryCache) Put(ctx context.Context, at domain.Coordinate, f *domain.ForecastSnapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = make(map[domain.Coordinate]*domain.ForecastSnapshot)
	}
	m.entries[at] = f
	return nil
}

func TestCachedProviderReadsThrough(t *testing.T) {
	inner := &MockWeatherProvider{Snapshot: &domain.ForecastSnapshot{TemperatureC: 28}}
	c := &memoryCache{}
	p := NewCachedProvider(inner, c)

	at := domain.Coordinate{Lat: -23.5505, Lon: -46.6333}

	f, err := p.Forecast(context.Background(), at)
	require.NoError(t, err)
	require.NotNil(t, f)
	require.Equal(t, 1, inner.Calls())

	// Second lookup is served from the cache.
	f, err = p.Forecast(context.Background(), at)
	require.NoError(t, err)
	require.NotNil(t, f)
	require.Equal(t, 1, inner.Calls())
}

func TestCachedProviderDegradesOnCacheFailure(t *testing.T) {
	inner := &MockWeatherProvider{Snapshot: &domain.ForecastSnapshot{TemperatureC: 28}}
	c := &memoryCache{getErr: errors.New("cache down")}
	p := NewCachedProvider(inner, c)

	f, err := p.Forecast(context.Background(), domain.Coordinate{Lat: 1, Lon: 2})
	require.NoError(t, err, "a broken cache must not fail the lookup")
	require.NotNil(t, f)
	require.Equal(t, 1, inner.Calls())
}
