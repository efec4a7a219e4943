package services

import (
	"testing"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

func forecast(temp, humidity, uv float64) *domain.ForecastSnapshot {
	return &domain.ForecastSnapshot{
		TemperatureC: temp,
		HumidityPct:  humidity,
		UVIndex:      uv,
	}
}

func TestClassifyThermalRiskAbsentForecast(t *testing.T) {
	// Missing weather must never classify as low.
	if got := ClassifyThermalRisk(nil); got != domain.RiskMedium {
		t.Fatalf("ClassifyThermalRisk(nil) = %v, want medium", got)
	}
}

func TestClassifyThermalRiskLevels(t *testing.T) {
	tests := []struct {
		name     string
		forecast *domain.ForecastSnapshot
		want     domain.ThermalRisk
	}{
		{"mild day", forecast(20, 60, 2), domain.RiskLow},
		{"warm but humid", forecast(26, 70, 3), domain.RiskLow},
		{"hot and dry", forecast(31, 45, 3), domain.RiskMedium},
		{"hot with strong sun", forecast(35, 30, 9), domain.RiskHigh},
		{"extreme heat", forecast(36, 25, 9), domain.RiskHigh},
		{"dry and sunny only", forecast(20, 25, 9), domain.RiskMedium},
	}

	for _, tt := range tests {
		if got := ClassifyThermalRisk(tt.forecast); got != tt.want {
			t.Errorf("%s: ClassifyThermalRisk = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClassifyThermalRiskMonotonicInTemperature(t *testing.T) {
	prev := domain.RiskLow
	for _, temp := range []float64{20, 26, 31, 36, 45} {
		got := ClassifyThermalRisk(forecast(temp, 60, 3))
		if got < prev {
			t.Fatalf("risk decreased from %v to %v when temperature rose to %v", prev, got, temp)
		}
		prev = got
	}
}

func TestClassifyThermalRiskMonotonicInUV(t *testing.T) {
	prev := domain.RiskLow
	for _, uv := range []float64{2, 5, 7, 9, 12} {
		got := ClassifyThermalRisk(forecast(28, 60, uv))
		if got < prev {
			t.Fatalf("risk decreased from %v to %v when UV rose to %v", prev, got, uv)
		}
		prev = got
	}
}

func TestClassifyThermalRiskMonotonicInHumidity(t *testing.T) {
	// Drier air means higher thermal stress.
	prev := domain.RiskLow
	for _, humidity := range []float64{80, 55, 45, 29, 10} {
		got := ClassifyThermalRisk(forecast(28, humidity, 3))
		if got < prev {
			t.Fatalf("risk decreased from %v to %v when humidity fell to %v", prev, got, humidity)
		}
		prev = got
	}
}
