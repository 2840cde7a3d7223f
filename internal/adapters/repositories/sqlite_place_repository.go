package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-optimization-service/internal/gazetteer"
	"route-optimization-service/internal/platform/obs"
	"strings"
)

// SQLite-backed store of extra gazetteer places.
type SqlitePlaceRepository struct{ DB *sql.DB }

func NewSqlitePlaceRepository(db *sql.DB) *SqlitePlaceRepository {
	return &SqlitePlaceRepository{DB: db}
}

// Return all stored places ordered by name.
func (s *SqlitePlaceRepository) ListPlaces(ctx context.Context) (_ []gazetteer.Place, err error) {
	defer obs.Time(ctx, "places.sqlite.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
	}

	query := `
	SELECT
		name,
		lat,
		lon
	FROM places
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	places := make([]gazetteer.Place, 0, 32)
	for rows.Next() {
		var p gazetteer.Place
		if err := rows.Scan(&p.Name, &p.Lat, &p.Lon); err != nil {
			return nil, fmt.Errorf("list places: scan row: %w", err)
		}
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}

// Insert or replace places keyed by name.
func (s *SqlitePlaceRepository) PutPlaces(ctx context.Context, places []gazetteer.Place) error {
	if s.DB == nil {
		return errors.New("sqlite place repository: DB is nil")
	}

	if len(places) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("put places: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT OR REPLACE INTO places (name, lat, lon)
	VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("put places: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range places {
		if strings.TrimSpace(p.Name) == "" {
			return errors.New("put places: empty place name")
		}

		if _, err := stmt.ExecContext(ctx, p.Name, p.Lat, p.Lon); err != nil {
			return fmt.Errorf("put places name=%q: %w", p.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("put places commit: %w", err)
	}

	return nil
}
