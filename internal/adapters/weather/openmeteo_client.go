package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/platform/obs"
)

// OpenMeteoProvider implements WeatherProvider using the Open-Meteo forecast
// API (no API key required).
//
// It coordinates:
//   - Current-conditions and hourly-UV retrieval in one request
//   - Weather-code to condition label mapping
//   - Derived advisory alert strings
//   - External API calls with retry/backoff
//
// All normalization to the strongly-typed ForecastSnapshot happens here, at
// the collaborator boundary. The provider is safe for concurrent use.
type OpenMeteoProvider struct {
	session  *http.Client
	baseURL  string
	timezone string
	now      func() time.Time
}

func NewOpenMeteoProvider(timezone string) *OpenMeteoProvider {
	if timezone == "" {
		timezone = "America/Sao_Paulo"
	}
	return &OpenMeteoProvider{
		session:  &http.Client{Timeout: 10 * time.Second},
		baseURL:  "https://api.open-meteo.com/v1/forecast",
		timezone: timezone,
		now:      time.Now,
	}
}

type openMeteoResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
	Hourly struct {
		UVIndex []float64 `json:"uv_index"`
	} `json:"hourly"`
}

// Forecast fetches current conditions at a coordinate.
func (o *OpenMeteoProvider) Forecast(
	ctx context.Context,
	at domain.Coordinate,
) (_ *domain.ForecastSnapshot, err error) {
	defer obs.Time(ctx, "openmeteo.Forecast")(&err)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return o.newForecastRequest(ctx, at)
	})
	if err != nil {
		return nil, fmt.Errorf("open-meteo forecast lat=%.4f lon=%.4f: %w", at.Lat, at.Lon, err)
	}
	defer resp.Body.Close()

	var decoded openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode open-meteo response: %w", err)
	}

	// The hourly UV series covers the current day; pick the current hour,
	// defaulting to zero when the series is short.
	uv := 0.0
	if hour := o.now().Hour(); hour < len(decoded.Hourly.UVIndex) {
		uv = decoded.Hourly.UVIndex[hour]
	}

	snapshot := &domain.ForecastSnapshot{
		TemperatureC: decoded.Current.Temperature,
		HumidityPct:  decoded.Current.Humidity,
		UVIndex:      uv,
		WindKmh:      decoded.Current.WindSpeed,
		Condition:    conditionForWeatherCode(decoded.Current.WeatherCode),
	}
	snapshot.Alerts = buildAlerts(snapshot)

	return snapshot, nil
}

func (o *OpenMeteoProvider) newForecastRequest(
	ctx context.Context,
	at domain.Coordinate,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("latitude", fmt.Sprintf("%.4f", at.Lat))
	q.Set("longitude", fmt.Sprintf("%.4f", at.Lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,weather_code")
	q.Set("hourly", "uv_index")
	q.Set("timezone", o.timezone)
	q.Set("forecast_days", "1")
	req.URL.RawQuery = q.Encode()

	return req, nil
}

// conditionForWeatherCode maps WMO weather interpretation codes to a coarse
// display label. Code brackets follow the Open-Meteo documentation.
func conditionForWeatherCode(code int) string {
	switch {
	case code <= 3:
		return "Clear"
	case code <= 48:
		return "Cloudy"
	case code <= 67:
		return "Rain"
	case code <= 77:
		return "Snow"
	case code <= 82:
		return "Showers"
	default:
		return "Thunderstorm"
	}
}

// buildAlerts derives advisory strings from threshold checks on the snapshot.
func buildAlerts(f *domain.ForecastSnapshot) []string {
	alerts := make([]string, 0, 4)
	if f.TemperatureC > 30 {
		alerts = append(alerts, "High temperature - seek cooling points nearby")
	}
	if f.WindKmh > 20 {
		alerts = append(alerts, "Strong winds - watch out for loose objects")
	}
	if f.HumidityPct < 30 {
		alerts = append(alerts, "Very low humidity - hydrate frequently")
	}
	if f.UVIndex > 6 {
		alerts = append(alerts, "High UV index - use sunscreen")
	}
	return alerts
}
