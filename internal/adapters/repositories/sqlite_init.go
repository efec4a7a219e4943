package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS cooling_points (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		latitude REAL NOT NULL,
		longitude REAL NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		operating_hours TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		region TEXT NOT NULL DEFAULT ''
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create cooling_points: %w", err)
	}

	return nil
}

type PointSeed struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Kind           string  `json:"kind"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Description    string  `json:"description"`
	OperatingHours string  `json:"operating_hours"`
	City           string  `json:"city"`
	Region         string  `json:"region"`
}

func loadSeeds(jsonPath string) ([]PointSeed, error) {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed points: read %q: %w", jsonPath, err)
	}

	var data []PointSeed
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("seed points: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.ID) == "" {
			return nil, fmt.Errorf("seed points: item at index %d: id cannot be empty", i+1)
		}
		if strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("seed points: item %q: name cannot be empty", item.ID)
		}
	}

	return data, nil
}

// Populate the SQLite database with cooling point data from a JSON file.
func SeedSqliteFromJSON(db *sql.DB, jsonPath string) error {
	seeds, err := loadSeeds(jsonPath)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed points: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO cooling_points (
		id, name, kind, latitude, longitude, description, operating_hours, city, region
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed points: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range seeds {
		if _, err := stmt.Exec(
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
