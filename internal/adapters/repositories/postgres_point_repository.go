package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/platform/obs"
)

// Postgres-backed implementation of the CoolingPointRepository port.
type PostgresPointRepository struct{ DB *sql.DB }

func NewPostgresPointRepository(db *sql.DB) *PostgresPointRepository {
	return &PostgresPointRepository{DB: db}
}

// NearbyPoints returns up to limit points ordered by increasing distance.
//
// Ordering uses squared coordinate deltas, a monotonic stand-in for distance
// at city scale that keeps the query index-friendly. Exact great-circle
// ranking is done in the service layer where it matters.
func (s *PostgresPointRepository) NearbyPoints(
	ctx context.Context,
	at domain.Coordinate,
	limit int,
) (_ []domain.CoolingPoint, err error) {
	defer obs.Time(ctx, "points.repo.NearbyPoints")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres point repository: DB is nil")
	}
	if limit <= 0 {
		return []domain.CoolingPoint{}, nil
	}

	q := `
	SELECT id, name, kind, latitude, longitude, description, operating_hours, city, region
	FROM cooling_points
	ORDER BY (latitude - $1) * (latitude - $1) + (longitude - $2) * (longitude - $2), id
	LIMIT $3;
	`

	rows, err := s.DB.QueryContext(ctx, q, at.Lat, at.Lon, limit)
	if err != nil {
		return nil, fmt.Errorf("nearby points: query cooling_points table: %w", err)
	}
	defer rows.Close()

	return scanPoints(rows)
}

// ListPoints returns all cooling points stored in the database.
func (s *PostgresPointRepository) ListPoints(ctx context.Context) (_ []domain.CoolingPoint, err error) {
	defer obs.Time(ctx, "points.repo.ListPoints")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres point repository: DB is nil")
	}

	q := `
	SELECT id, name, kind, latitude, longitude, description, operating_hours, city, region
	FROM cooling_points
	ORDER BY id;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list points: query cooling_points table: %w", err)
	}
	defer rows.Close()

	return scanPoints(rows)
}

func scanPoints(rows *sql.Rows) ([]domain.CoolingPoint, error) {
	points := make([]domain.CoolingPoint, 0, 16)
	for rows.Next() {
		var p domain.CoolingPoint
		var kind string
		if err := rows.Scan(
			&p.ID, &p.Name, &kind,
			&p.Location.Lat, &p.Location.Lon,
			&p.Description, &p.OperatingHours, &p.City, &p.Region,
		); err != nil {
			return nil, fmt.Errorf("scan cooling point row: %w", err)
		}
		p.Kind = domain.PointKind(kind)
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("cooling point row iteration: %w", err)
	}

	return points, nil
}
