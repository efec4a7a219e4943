package services

import (
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

// Score contributions. Each factor uses its highest matching bracket only;
// brackets are exclusive lower (temperature, UV) or upper (humidity) bounds.
const (
	tempExtremeC  = 35
	tempHighC     = 30
	tempElevatedC = 25

	uvExtreme = 8
	uvHigh    = 6

	humidityVeryDryPct = 30
	humidityDryPct     = 50

	riskHighScore   = 5
	riskMediumScore = 3
)

// ClassifyThermalRisk maps a forecast to a risk level via additive thresholds.
//
// A nil forecast (weather lookup failed upstream) classifies as medium: the
// policy never underestimates risk by defaulting to low. The scheme is
// monotonic in each input, so raising temperature or UV, or lowering humidity,
// can never lower the resulting risk.
func ClassifyThermalRisk(f *domain.ForecastSnapshot) domain.ThermalRisk {
	if f == nil {
		return domain.RiskMedium
	}

	score := 0

	switch {
	case f.TemperatureC > tempExtremeC:
		score += 3
	case f.TemperatureC > tempHighC:
		score += 2
	case f.TemperatureC > tempElevatedC:
		score += 1
	}

	switch {
	case f.UVIndex > uvExtreme:
		score += 2
	case f.UVIndex > uvHigh:
		score += 1
	}

	// Low humidity increases thermal stress (faster dehydration).
	switch {
	case f.HumidityPct < humidityVeryDryPct:
		score += 2
	case f.HumidityPct < humidityDryPct:
		score += 1
	}

	switch {
	case score >= riskHighScore:
		return domain.RiskHigh
	case score >= riskMediumScore:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}
