package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

const forecastBody = `{
	"current": {
		"temperature_2m": 33.4,
		"relative_humidity_2m": 28,
		"wind_speed_10m": 22.5,
		"weather_code": 1
	},
	"hourly": {
		"uv_index": [0,0,0,0,0,0,1,2,4,6,7.5,8,9,9,8,7,5,3,1,0,0,0,0,0]
	}
}`

func testProvider(t *testing.T, handler http.HandlerFunc, hour int) *OpenMeteoProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewOpenMeteoProvider("UTC")
	p.baseURL = srv.URL
	p.now = func() time.Time {
		return time.Date(2026, 1, 15, hour, 0, 0, 0, time.UTC)
	}
	return p
}

func TestForecastNormalizesResponse(t *testing.T) {
	var gotQuery atomic.Value
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query().Encode())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastBody))
	}, 13)

	f, err := p.Forecast(context.Background(), domain.Coordinate{Lat: -23.5505, Lon: -46.6333})
	require.NoError(t, err)
	require.NotNil(t, f)

	require.Equal(t, 33.4, f.TemperatureC)
	require.Equal(t, 28.0, f.HumidityPct)
	require.Equal(t, 22.5, f.WindKmh)
	require.Equal(t, 9.0, f.UVIndex, "UV must come from the current hour of the hourly series")
	require.Equal(t, "Clear", f.Condition)

	// Derived boundary alerts: hot, windy, dry, and strong UV all trigger.
	require.Len(t, f.Alerts, 4)

	q := gotQuery.Load().(string)
	require.Contains(t, q, "latitude=-23.5505")
	require.Contains(t, q, "longitude=-46.6333")
}

func TestForecastUVDefaultsWhenSeriesShort(t *testing.T) {
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":20,"relative_humidity_2m":60,"wind_speed_10m":5,"weather_code":60},"hourly":{"uv_index":[]}}`))
	}, 13)

	f, err := p.Forecast(context.Background(), domain.Coordinate{Lat: 0, Lon: 0})
	require.NoError(t, err)
	require.Equal(t, 0.0, f.UVIndex)
	require.Equal(t, "Rain", f.Condition)
	require.Empty(t, f.Alerts)
}

func TestForecastRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int64
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(forecastBody))
	}, 13)

	f, err := p.Forecast(context.Background(), domain.Coordinate{Lat: 0, Lon: 0})
	require.NoError(t, err)
	require.NotNil(t, f)
	require.EqualValues(t, 2, calls.Load())
}

func TestForecastClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int64
	p := testProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}, 13)

	_, err := p.Forecast(context.Background(), domain.Coordinate{Lat: 0, Lon: 0})
	require.Error(t, err)
	require.EqualValues(t, 1, calls.Load())
}
