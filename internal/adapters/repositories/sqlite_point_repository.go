package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Reinaldocouto/urban-heat-safe-zones/internal/domain"
)

// SQLite-backed implementation of the CoolingPointRepository port, used for
// local runs without a Postgres instance.
type SqlitePointRepository struct{ DB *sql.DB }

func NewSqlitePointRepository(db *sql.DB) *SqlitePointRepository {
	return &SqlitePointRepository{DB: db}
}

// NearbyPoints returns up to limit points ordered by increasing distance.
// Same squared-delta ordering as the Postgres variant.
func (s *SqlitePointRepository) NearbyPoints(
	ctx context.Context,
	at domain.Coordinate,
	limit int,
) ([]domain.CoolingPoint, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite point repository: DB is nil")
	}
	if limit <= 0 {
		return []domain.CoolingPoint{}, nil
	}

	q := `
	SELECT id, name, kind, latitude, longitude, description, operating_hours, city, region
	FROM cooling_points
	ORDER BY (latitude - ?) * (latitude - ?) + (longitude - ?) * (longitude - ?), id
	LIMIT ?;
	`

	rows, err := s.DB.QueryContext(ctx, q, at.Lat, at.Lat, at.Lon, at.Lon, limit)
	if err != nil {
		return nil, fmt.Errorf("nearby points: query cooling_points table: %w", err)
	}
	defer rows.Close()

	return scanPoints(rows)
}

// ListPoints returns all cooling points stored in the database.
func (s *SqlitePointRepository) ListPoints(ctx context.Context) ([]domain.CoolingPoint, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite point repository: DB is nil")
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
