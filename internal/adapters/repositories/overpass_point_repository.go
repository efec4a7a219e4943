package repositories

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/serjvanilla/go-overpass"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

// OverpassPointRepository discovers cooling points from OpenStreetMap via the
// Overpass API: parks, drinking fountains, and public shelters around a
// coordinate. It needs no curated dataset, at the cost of Overpass latency
// and rate limits; production deployments should prefer a database fed by a
// periodic import.
type OverpassPointRepository struct {
	client overpass.Client

	// Search radius in meters for NearbyPoints, and the area served by
	// ListPoints (centered on Home).
	RadiusM int
	Home    domain.Coordinate
}

func NewOverpassPointRepository(endpoint string, home domain.Coordinate) *OverpassPointRepository {
	httpClient := &http.Client{Timeout: 30 * time.Second}
	return &OverpassPointRepository{
		client:  overpass.NewWithSettings(endpoint, 2, httpClient),
		RadiusM: 3000,
		Home:    home,
	}
}

func (r *OverpassPointRepository) NearbyPoints(
	ctx context.Context,
	at domain.Coordinate,
	limit int,
) ([]domain.CoolingPoint, error) {
	if limit <= 0 {
		return []domain.CoolingPoint{}, nil
	}

	points, err := r.query(ctx, at, r.RadiusM)
	if err != nil {
		return nil, fmt.Errorf("nearby points: %w", err)
	}

	rankByDelta(points, at)
	if len(points) > limit {
		points = points[:limit]
	}
	return points, nil
}

// ListPoints returns every cooling point within the served area around Home.
// Overpass has no notion of "all points", so the area bound stands in for it.
func (r *OverpassPointRepository) ListPoints(ctx context.Context) ([]domain.CoolingPoint, error) {
	points, err := r.query(ctx, r.Home, r.RadiusM)
	if err != nil {
		return nil, fmt.Errorf("list points: %w", err)
	}

	sort.Slice(points, func(i, j int) bool { return points[i].ID < points[j].ID })
	return points, nil
}

func (r *OverpassPointRepository) query(
	ctx context.Context,
	at domain.Coordinate,
	radiusM int,
) ([]domain.CoolingPoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	around := fmt.Sprintf("around:%d,%.6f,%.6f", radiusM, at.Lat, at.Lon)
	q := fmt.Sprintf(`
	[out:json];
	(
		node["leisure"="park"](%[1]s);
		node["amenity"="drinking_water"](%[1]s);
		node["amenity"="fountain"](%[1]s);
		node["amenity"="shelter"](%[1]s);
	);
	out body;
	`, around)

	result, err := r.client.Query(q)
	if err != nil {
		return nil, fmt.Errorf("overpass query failed: %w", err)
	}

	points := make([]domain.CoolingPoint, 0, len(result.Nodes))
	for _, node := range result.Nodes {
		kind := kindForTags(node.Tags)
		name := node.Tags["name"]
		if name == "" {
			name = kind.Label()
		}

		points = append(points, domain.CoolingPoint{
			ID:             fmt.Sprintf("osm:%d", node.ID),
			Name:           name,
			Kind:           kind,
			Location:       domain.Coordinate{Lat: node.Lat, Lon: node.Lon},
			Description:    node.Tags["description"],
			OperatingHours: node.Tags["opening_hours"],
			City:           node.Tags["addr:city"],
			Region:         node.Tags["addr:state"],
		})
	}

	return points, nil
}

func kindForTags(tags map[string]string) domain.PointKind {
	switch {
	case tags["leisure"] == "park":
		return domain.KindPark
	case tags["amenity"] == "drinking_water" || tags["amenity"] == "fountain":
		return domain.KindFountain
	case tags["amenity"] == "shelter":
		return domain.KindShelter
	default:
		return domain.PointKind(tags["amenity"])
	}
}

// rankByDelta orders points by squared coordinate delta from at, with ID as
// the deterministic tie-break (Overpass results arrive in map order).
func rankByDelta(points []domain.CoolingPoint, at domain.Coordinate) {
	sqDelta := func(p domain.CoolingPoint) float64 {
		dLat := p.Location.Lat - at.Lat
		dLon := p.Location.Lon - at.Lon
		return dLat*dLat + dLon*dLon
	}
	sort.Slice(points, func(i, j int) bool {
		di, dj := sqDelta(points[i]), sqDelta(points[j])
		if di != dj {
			return di < dj
		}
		return points[i].ID < points[j].ID
	})
}
