package domain

// Forecasts gathered for a planned route. Any field may be nil when the
// corresponding lookup failed; downstream logic degrades gracefully.
type RouteWeather struct {
	Start    *ForecastSnapshot
	End      *ForecastSnapshot
	Midpoint *ForecastSnapshot
}

// Represents the outcome of one route calculation.
// An OptimizedRoute is immutable planning data: cooling points are
// deduplicated by ID and capped, recommendations are ordered advisory
// strings, and the duration is a walking-pace estimate over the
// straight-line distance, not a routing-engine result.
type OptimizedRoute struct {
	Start                    Coordinate
	End                      Coordinate
	CoolingPoints            []CoolingPoint
	Weather                  RouteWeather
	Recommendations          []string
	EstimatedDurationMinutes int
	ThermalRisk              ThermalRisk
}
