package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/ports"
)

// Walking-pace duration heuristic: minutes per straight-line kilometer.
// A product constant, not a verified physical model, hence configurable.
const defaultMinutesPerKm = 5.0

// How many candidates to consider when picking a single best cooling point.
const bestPointSearchLimit = 20

// Hours of day (inclusive) during which travel is discouraged on hot days.
const (
	hotWindowStartHour = 10
	hotWindowEndHour   = 16
)

// Wind speed above which the loose-objects warning is issued.
const windStrongKmh = 15

// Trip length above which rest stops are suggested.
const longTripMinutes = 30

// Tunable engine parameters. Zero values select the defaults.
type RouteEngineConfig struct {
	// MinutesPerKm overrides the walking-pace duration heuristic.
	MinutesPerKm float64
	// Now supplies the local time used for the travel-window advisory.
	Now func() time.Time
}

// RouteEngine plans heat-safe routes between two coordinates.
//
// It orchestrates weather lookups, cooling-point collection, thermal risk
// classification, and recommendation generation. Engines hold no mutable
// state across calls: every invocation reads fresh inputs and returns a
// fresh, immutable result, so one engine is safe for concurrent use.
type RouteEngine struct {
	weather      ports.WeatherProvider
	points       ports.CoolingPointRepository
	minutesPerKm float64
	now          func() time.Time
}

func NewRouteEngine(
	weather ports.WeatherProvider,
	points ports.CoolingPointRepository,
	cfg RouteEngineConfig,
) *RouteEngine {
	e := &RouteEngine{
		weather:      weather,
		points:       points,
		minutesPerKm: cfg.MinutesPerKm,
		now:          cfg.Now,
	}
	if e.minutesPerKm <= 0 {
		e.minutesPerKm = defaultMinutesPerKm
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// CalculateRoute produces an OptimizedRoute between start and end.
//
// Coordinates are validated before any collaborator is invoked. The three
// weather lookups (start, end, midpoint) run concurrently with point
// collection; an individual weather failure degrades that endpoint to an
// absent forecast and the calculation proceeds. A point repository failure
// aborts the whole calculation with a RouteCalculationError, since cooling
// points are a required part of the result.
func (e *RouteEngine) CalculateRoute(
	ctx context.Context,
	start, end domain.Coordinate,
) (*domain.OptimizedRoute, error) {
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("calculate route: start: %w", err)
	}
	if err := end.Validate(); err != nil {
		return nil, fmt.Errorf("calculate route: end: %w", err)
	}

	mid := Midpoint(start, end)

	var (
		wg                    sync.WaitGroup
		startWx, endWx, midWx *domain.ForecastSnapshot
	)

	// Each lookup writes to its own slot; no lock is needed because the
	// goroutines share nothing and are joined before the slots are read.
	fetch := func(name string, at domain.Coordinate, dst **domain.ForecastSnapshot) {
		defer wg.Done()
		f, err := e.weather.Forecast(ctx, at)
		if err != nil {
			log.Printf("weather lookup degraded to absent: target=%s lat=%.4f lon=%.4f err=%v",
				name, at.Lat, at.Lon, err)
			return
		}
		*dst = f
	}

	wg.Add(3)
	go fetch("start", start, &startWx)
	go fetch("end", end, &endWx)
	go fetch("midpoint", mid, &midWx)

	points, collectErr := CollectCoolingPoints(ctx, start, end, e.points)

	wg.Wait()

	if collectErr != nil {
		return nil, &domain.RouteCalculationError{Cause: collectErr}
	}

	durationMin := int(math.Round(DistanceKm(start, end) * e.minutesPerKm))
	risk := ClassifyThermalRisk(midWx)

	return &domain.OptimizedRoute{
		Start:         start,
		End:           end,
		CoolingPoints: points,
		Weather: domain.RouteWeather{
			Start:    startWx,
			End:      endWx,
			Midpoint: midWx,
		},
		Recommendations:          buildRecommendations(midWx, points, risk, durationMin, e.now().Hour()),
		EstimatedDurationMinutes: durationMin,
		ThermalRisk:              risk,
	}, nil
}

// BestCoolingPoint returns the closest cooling point to the user, optionally
// restricted to a single kind. An empty kind matches everything. Returns
// (nil, nil) when nothing matches; that is an expected outcome, not a failure.
func (e *RouteEngine) BestCoolingPoint(
	ctx context.Context,
	user domain.Coordinate,
	kind domain.PointKind,
) (*NearestResult, error) {
	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("best cooling point: %w", err)
	}

	points, err := e.points.NearbyPoints(ctx, user, bestPointSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("best cooling point: fetch nearby: %w", err)
	}

	candidates := points
	if kind != "" {
		candidates = make([]domain.CoolingPoint, 0, len(points))
		for _, p := range points {
			if p.Kind == kind {
				candidates = append(candidates, p)
			}
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	res, err := NearestPoint(user, candidates)
	if err != nil {
		return nil, fmt.Errorf("best cooling point: %w", err)
	}
	return &res, nil
}

// buildRecommendations assembles the advisory list for a route. The append
// order is a contract: risk precautions, forecast-specific warnings
// (temperature, UV, wind), trip length, per-kind point availability, then the
// hot-hours travel window.
func buildRecommendations(
	forecast *domain.ForecastSnapshot,
	points []domain.CoolingPoint,
	risk domain.ThermalRisk,
	durationMin int,
	localHour int,
) []string {
	recs := make([]string, 0, 8)

	switch risk {
	case domain.RiskHigh:
		recs = append(recs,
			"High thermal risk - consider postponing your trip",
			"Carry plenty of water and sunscreen",
		)
	case domain.RiskMedium:
		recs = append(recs,
			"Moderate thermal risk - take precautions",
			"Stay hydrated along the way",
		)
	}

	if forecast != nil {
		if forecast.TemperatureC > tempHighC {
			recs = append(recs, "High temperature - wear light clothing")
		}
		if forecast.UVIndex > uvHigh {
			recs = append(recs, "High UV index - avoid direct sun exposure")
		}
		if forecast.WindKmh > windStrongKmh {
			recs = append(recs, "Strong winds - watch out for loose objects")
		}
	}

	if durationMin > longTripMinutes {
		recs = append(recs, fmt.Sprintf("Long trip (%d min) - plan rest stops", durationMin))
	}

	var parks, fountains, shelters int
	for _, p := range points {
		switch p.Kind {
		case domain.KindPark:
			parks++
		case domain.KindFountain:
			fountains++
		case domain.KindShelter:
			shelters++
		}
	}
	if parks > 0 {
		recs = append(recs, fmt.Sprintf("%d park(s) available along the route", parks))
	}
	if fountains > 0 {
		recs = append(recs, fmt.Sprintf("%d water fountain(s) along the route", fountains))
	}
	if shelters > 0 {
		recs = append(recs, fmt.Sprintf("%d cooled shelter(s) along the route", shelters))
	}

	if localHour >= hotWindowStartHour && localHour <= hotWindowEndHour {
		recs = append(recs, "Consider traveling before 10:00 or after 16:00")
	}

	return recs
}
