package domain

// ThermalRisk is a coarse ordinal classification of heat-related hazard.
// The integer ordering (low < medium < high) is relied on by monotonicity
// checks; always derived from a ForecastSnapshot, never stored.
type ThermalRisk int

const (
	RiskLow ThermalRisk = iota
	RiskMedium
	RiskHigh
)

func (r ThermalRisk) String() string {
	switch r {
	case RiskHigh:
		return "high"
	case RiskMedium:
		return "medium"
	default:
		return "low"
	}
}
