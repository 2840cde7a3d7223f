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

// SQLPlaceRepository is a Postgres-backed store of extra gazetteer places.
type SQLPlaceRepository struct {
	DB *sql.DB
}

func NewSQLPlaceRepository(db *sql.DB) *SQLPlaceRepository {
	return &SQLPlaceRepository{DB: db}
}

func (s *SQLPlaceRepository) ListPlaces(ctx context.Context) (_ []gazetteer.Place, err error) {
	defer obs.Time(ctx, "places.sql.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("sql place repository: db is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT name, lat, lon FROM places ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	out := make([]gazetteer.Place, 0, 32)
	for rows.Next() {
		var p gazetteer.Place
		if err := rows.Scan(&p.Name, &p.Lat, &p.Lon); err != nil {
			return nil, fmt.Errorf("list places: scan rows: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return out, nil
}

// Upsert places keyed by name.
func (s *SQLPlaceRepository) PutPlaces(ctx context.Context, places []gazetteer.Place) error {
	if s.DB == nil {
		return errors.New("sql place repository: db is nil")
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
	INSERT INTO places (name, lat, lon)
	VALUES ($1, $2, $3)
	ON CONFLICT (name) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon;
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
