package repositories

import (
	"context"
	"sort"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

// StaticPointRepository serves a fixed in-memory point set. It backs local
// runs and demos when neither a database nor Overpass is configured.
type StaticPointRepository struct {
	points []domain.CoolingPoint
}

// NewStaticPointRepository copies the given points; nil selects the built-in
// São Paulo demo set.
func NewStaticPointRepository(points []domain.CoolingPoint) *StaticPointRepository {
	if points == nil {
		points = defaultPoints
	}
	cp := make([]domain.CoolingPoint, len(points))
	copy(cp, points)
	return &StaticPointRepository{points: cp}
}

func (s *StaticPointRepository) NearbyPoints(
	ctx context.Context,
	at domain.Coordinate,
	limit int,
) ([]domain.CoolingPoint, error) {
	if limit <= 0 {
		return []domain.CoolingPoint{}, nil
	}

	ranked := make([]domain.CoolingPoint, len(s.points))
	copy(ranked, s.points)

	// Squared coordinate deltas order the same as distance at city scale;
	// ID is the deterministic secondary key.
	sqDelta := func(p domain.CoolingPoint) float64 {
		dLat := p.Location.Lat - at.Lat
		dLon := p.Location.Lon - at.Lon
		return dLat*dLat + dLon*dLon
	}
	sort.Slice(ranked, func(i, j int) bool {
		di, dj := sqDelta(ranked[i]), sqDelta(ranked[j])
		if di != dj {
			return di < dj
		}
		return ranked[i].ID < ranked[j].ID
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (s *StaticPointRepository) ListPoints(ctx context.Context) ([]domain.CoolingPoint, error) {
	cp := make([]domain.CoolingPoint, len(s.points))
	copy(cp, s.points)
	return cp, nil
}

// Demo cooling points across central São Paulo.
var defaultPoints = []domain.CoolingPoint{
	{
		ID:             "1",
		Name:           "Ibirapuera Park",
		Kind:           domain.KindPark,
		Location:       domain.Coordinate{Lat: -23.5874, Lon: -46.6576},
		Description:    "Wooded area with shade and benches for resting.",
		OperatingHours: "05:00 - 22:00",
		City:           "São Paulo",
		Region:         "SP",
	},
	{
		ID:             "2",
		Name:           "Monumental Park Fountain",
		Kind:           domain.KindFountain,
		Location:       domain.Coordinate{Lat: -23.5505, Lon: -46.6333},
		Description:    "Free drinking water available around the clock.",
		OperatingHours: "24h",
		City:           "São Paulo",
		Region:         "SP",
	},
	{
		ID:             "3",
		Name:           "Downtown Covered Shelter",
		Kind:           domain.KindShelter,
		Location:       domain.Coordinate{Lat: -23.5610, Lon: -46.6600},
		Description:    "Air-conditioned shelter open to the public.",
		OperatingHours: "08:00 - 18:00",
		City:           "São Paulo",
		Region:         "SP",
	},
	{
		ID:             "4",
		Name:           "Luz Park",
		Kind:           domain.KindPark,
		Location:       domain.Coordinate{Lat: -23.5355, Lon: -46.6388},
		Description:    "Historic park with shaded areas and gardens.",
		OperatingHours: "06:00 - 18:00",
		City:           "São Paulo",
		Region:         "SP",
	},
	{
		ID:             "5",
		Name:           "República Square Fountain",
		Kind:           domain.KindFountain,
		Location:       domain.Coordinate{Lat: -23.5432, Lon: -46.6414},
		Description:    "Ornamental fountain with public drinking taps.",
		OperatingHours: "24h",
		City:           "São Paulo",
		Region:         "SP",
	},
	{
		ID:             "6",
		Name:           "Sé Cathedral Shelter",
		Kind:           domain.KindShelter,
		Location:       domain.Coordinate{Lat: -23.5507, Lon: -46.6344},
		Description:    "Covered arcade with seating near the cathedral.",
		OperatingHours: "07:00 - 19:00",
		City:           "São Paulo",
		Region:         "SP",
	},
}
