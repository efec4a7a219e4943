package repositories

import (
	"context"
	"sync"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

// One recorded NearbyPoints invocation.
type FetchCall struct {
	At    domain.Coordinate
	Limit int
}

// MockPointRepository serves scripted responses and records every call, for
// deterministic service tests.
type MockPointRepository struct {
	// Fetch produces the response for each NearbyPoints call. When nil, Points
	// (truncated to the limit) is returned instead.
	Fetch  func(at domain.Coordinate, limit int) ([]domain.CoolingPoint, error)
	Points []domain.CoolingPoint
	Err    error

	mu    sync.Mutex
	calls []FetchCall
}

func (m *MockPointRepository) NearbyPoints(
	ctx context.Context,
	at domain.Coordinate,
	limit int,
) ([]domain.CoolingPoint, error) {
	m.mu.Lock()
	m.calls = append(m.calls, FetchCall{At: at, Limit: limit})
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Fetch != nil {
		return m.Fetch(at, limit)
	}

	points := m.Points
	if len(points) > limit {
		points = points[:limit]
	}
	out := make([]domain.CoolingPoint, len(points))
	copy(out, points)
	return out, nil
}

func (m *MockPointRepository) ListPoints(ctx context.Context) ([]domain.CoolingPoint, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.CoolingPoint, len(m.Points))
	copy(out, m.Points)
	return out, nil
}

// Calls returns a copy of the recorded NearbyPoints invocations.
func (m *MockPointRepository) Calls() []FetchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]FetchCall, len(m.calls))
	copy(out, m.calls)
	return out
}
