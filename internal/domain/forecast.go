package domain

// Weather conditions at a single coordinate at fetch time.
// Produced once per lookup and never mutated afterwards; a nil
// *ForecastSnapshot means the lookup yielded no data.
type ForecastSnapshot struct {
	TemperatureC float64
	HumidityPct  float64
	UVIndex      float64
	WindKmh      float64
	Condition    string
	Alerts       []string
}
