package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/gazetteer"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		name TEXT PRIMARY KEY,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	createRoutePlansQuery := `
	CREATE TABLE IF NOT EXISTS route_plans (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		stops TEXT NOT NULL,
		distance_km REAL NOT NULL,
		time_minutes REAL NOT NULL,
		total_cost REAL NOT NULL,
		unresolved_count INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_plans_created_at
	ON route_plans(created_at);
	`

	statements := []string{
		createPlacesQuery,
		createRoutePlansQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Read and validate place seeds from a JSON array of {name, lat, lon}.
func ReadPlaceSeeds(jsonPath string) ([]gazetteer.Place, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data []gazetteer.Place
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("seed places: parse json: %w", err)
	}

	rows := make([]gazetteer.Place, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("seed places: item at index %d: name cannot be empty", i+1)
		}

		c := domain.Coordinates{Lat: item.Lat, Lon: item.Lon}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("seed places: place %q: %w", name, err)
		}
		rows = append(rows, gazetteer.Place{Name: name, Lat: item.Lat, Lon: item.Lon})
	}

	return rows, nil
}

// Populate the SQLite places table from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	rows, err := ReadPlaceSeeds(jsonPath)
	if err != nil {
		return err
	}
	return NewSqlitePlaceRepository(db).PutPlaces(context.Background(), rows)
}
