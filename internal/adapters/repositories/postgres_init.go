package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS cooling_points (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		operating_hours TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		region TEXT NOT NULL DEFAULT ''
	);
	`

	if _, err := db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("init schema: create cooling_points: %w", err)
	}

	return nil
}

// Populate the Postgres database with cooling point data from a JSON file.
func SeedPostgresFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	seeds, err := loadSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed points: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO cooling_points (
		id, name, kind, latitude, longitude, description, operating_hours, city, region
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		kind = EXCLUDED.kind,
		latitude = EXCLUDED.latitude,
		longitude = EXCLUDED.longitude,
		description = EXCLUDED.description,
		operating_hours = EXCLUDED.operating_hours,
		city = EXCLUDED.city,
		region = EXCLUDED.region;
	`)
	if err != nil {
		return fmt.Errorf("seed points: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range seeds {
		if _, err := stmt.ExecContext(ctx,
			p.ID, p.Name, p.Kind, p.Latitude, p.Longitude,
			p.Description, p.OperatingHours, p.City, p.Region,
		); err != nil {
			return fmt.Errorf("seed points: insert id=%q: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed points: commit tx: %w", err)
	}

	return nil
}
