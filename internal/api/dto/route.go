package dto

import "github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"

type PlanRouteRequest struct {
	StartLat *float64 `json:"start_lat"`
	StartLon *float64 `json:"start_lon"`
	EndLat   *float64 `json:"end_lat"`
	EndLon   *float64 `json:"end_lon"`
}

type ForecastResponse struct {
	TemperatureC float64  `json:"temperature_c"`
	HumidityPct  float64  `json:"humidity_pct"`
	UVIndex      float64  `json:"uv_index"`
	WindKmh      float64  `json:"wind_kmh"`
	Condition    string   `json:"condition"`
	Alerts       []string `json:"alerts"`
}

type RouteWeatherResponse struct {
	Start    *ForecastResponse `json:"start"`
	End      *ForecastResponse `json:"end"`
	Midpoint *ForecastResponse `json:"midpoint"`
}

type RouteResponse struct {
	StartLat                 float64              `json:"start_lat"`
	StartLon                 float64              `json:"start_lon"`
	EndLat                   float64              `json:"end_lat"`
	EndLon                   float64              `json:"end_lon"`
	CoolingPoints            []PointResponse      `json:"cooling_points"`
	Weather                  RouteWeatherResponse `json:"weather"`
	Recommendations          []string             `json:"recommendations"`
	EstimatedDurationMinutes int                  `json:"estimated_duration_minutes"`
	ThermalRisk              string               `json:"thermal_risk"`
}

func fromForecast(f *domain.ForecastSnapshot) *ForecastResponse {
	if f == nil {
		return nil
	}
	return &ForecastResponse{
		TemperatureC: f.TemperatureC,
		HumidityPct:  f.HumidityPct,
		UVIndex:      f.UVIndex,
		WindKmh:      f.WindKmh,
		Condition:    f.Condition,
		Alerts:       f.Alerts,
	}
}

func FromRoute(r *domain.OptimizedRoute) RouteResponse {
	points := make([]PointResponse, 0, len(r.CoolingPoints))
	for _, p := range r.CoolingPoints {
		points = append(points, FromPoint(p))
	}

	return RouteResponse{
		StartLat:      r.Start.Lat,
		StartLon:      r.Start.Lon,
		EndLat:        r.End.Lat,
		EndLon:        r.End.Lon,
		CoolingPoints: points,
		Weather: RouteWeatherResponse{
			Start:    fromForecast(r.Weather.Start),
			End:      fromForecast(r.Weather.End),
			Midpoint: fromForecast(r.Weather.Midpoint),
		},
		Recommendations:          r.Recommendations,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
		ThermalRisk:              r.ThermalRisk.String(),
	}
}
