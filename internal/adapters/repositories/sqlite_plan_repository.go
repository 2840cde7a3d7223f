package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
	"time"
)

// Fixed-width so created_at sorts chronologically as TEXT.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite-backed implementation of the PlanRepository port.
type SqlitePlanRepository struct{ DB *sql.DB }

func NewSqlitePlanRepository(db *sql.DB) *SqlitePlanRepository {
	return &SqlitePlanRepository{DB: db}
}

// Store a plan summary.
func (s *SqlitePlanRepository) SavePlan(ctx context.Context, rec domain.PlanRecord) (err error) {
	defer obs.Time(ctx, "plans.sqlite.SavePlan")(&err)

	if s.DB == nil {
		return errors.New("sqlite plan repository: DB is nil")
	}

	stops, err := json.Marshal(rec.Stops)
	if err != nil {
		return fmt.Errorf("save plan: encode stops: %w", err)
	}

	query := `
	INSERT INTO route_plans (
		id,
		kind,
		stops,
		distance_km,
		time_minutes,
		total_cost,
		unresolved_count,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = s.DB.ExecContext(ctx, query,
		rec.ID,
		string(rec.Kind),
		string(stops),
		rec.DistanceKm,
		rec.TimeMinutes,
		rec.TotalCost,
		rec.UnresolvedCount,
		rec.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return fmt.Errorf("save plan id=%s: insert route_plans: %w", rec.ID, err)
	}

	return nil
}

// Return the most recent plans, newest first.
func (s *SqlitePlanRepository) ListPlans(ctx context.Context, limit int) (_ []domain.PlanRecord, err error) {
	defer obs.Time(ctx, "plans.sqlite.ListPlans")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite plan repository: DB is nil")
	}
	if limit <= 0 {
		return []domain.PlanRecord{}, nil
	}

	query := `
	SELECT
		id,
		kind,
		stops,
		distance_km,
		time_minutes,
		total_cost,
		unresolved_count,
		created_at
	FROM route_plans
	ORDER BY created_at DESC, id
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list plans: query route_plans table: %w", err)
	}
	defer rows.Close()

	plans := make([]domain.PlanRecord, 0, limit)
	for rows.Next() {
		var rec domain.PlanRecord
		var kind, stops, createdAt string
		err := rows.Scan(
			&rec.ID,
			&kind,
			&stops,
			&rec.DistanceKm,
			&rec.TimeMinutes,
			&rec.TotalCost,
			&rec.UnresolvedCount,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list plans: scan row: %w", err)
		}

		rec.Kind = domain.PlanKind(kind)
		if err := json.Unmarshal([]byte(stops), &rec.Stops); err != nil {
			return nil, fmt.Errorf("list plans: decode stops id=%s: %w", rec.ID, err)
		}
		if rec.CreatedAt, err = time.Parse(sqliteTimeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("list plans: parse created_at id=%s: %w", rec.ID, err)
		}

		plans = append(plans, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: row iteration: %w", err)
	}

	return plans, nil
}
