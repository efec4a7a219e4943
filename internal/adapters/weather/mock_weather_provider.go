package weather

import (
	"context"
	"sync/atomic"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

// MockWeatherProvider returns a fixed snapshot (or error) for every lookup
// and counts calls, for deterministic engine tests.
type MockWeatherProvider struct {
	Snapshot *domain.ForecastSnapshot
	Err      error

	calls atomic.Int64
}

func (m *MockWeatherProvider) Forecast(
	ctx context.Context,
	at domain.Coordinate,
) (*domain.ForecastSnapshot, error) {
	m.calls.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Snapshot == nil {
		return nil, nil
	}
	// Copy so callers can never alias the configured snapshot.
	cp := *m.Snapshot
	return &cp, nil
}

func (m *MockWeatherProvider) Calls() int { return int(m.calls.Load()) }
