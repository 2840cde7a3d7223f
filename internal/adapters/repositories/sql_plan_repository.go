package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
)

// SQLPlanRepository is a Postgres-backed implementation of the
// PlanRepository port.
type SQLPlanRepository struct {
	DB *sql.DB
}

func NewSQLPlanRepository(db *sql.DB) *SQLPlanRepository {
	return &SQLPlanRepository{DB: db}
}

func (s *SQLPlanRepository) SavePlan(ctx context.Context, rec domain.PlanRecord) (err error) {
	defer obs.Time(ctx, "plans.sql.SavePlan")(&err)

	if s.DB == nil {
		return errors.New("sql plan repository: db is nil")
	}

	stops, err := json.Marshal(rec.Stops)
	if err != nil {
		return fmt.Errorf("save plan: encode stops: %w", err)
	}

	q := `
	INSERT INTO route_plans (
		id, kind, stops, distance_km, time_minutes, total_cost, unresolved_count, created_at
	)
	VALUES ($1, $2, $3::jsonb, $4, $5, $6, $7, $8);
	`
	_, err = s.DB.ExecContext(ctx, q,
		rec.ID,
		string(rec.Kind),
		string(stops),
		rec.DistanceKm,
		rec.TimeMinutes,
		rec.TotalCost,
		rec.UnresolvedCount,
		rec.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("save plan id=%s: insert route_plans: %w", rec.ID, err)
	}

	return nil
}

func (s *SQLPlanRepository) ListPlans(ctx context.Context, limit int) (_ []domain.PlanRecord, err error) {
	defer obs.Time(ctx, "plans.sql.ListPlans")(&err)

	if s.DB == nil {
		return nil, errors.New("sql plan repository: db is nil")
	}
	if limit <= 0 {
		return []domain.PlanRecord{}, nil
	}

	q := `
	SELECT id, kind, stops::text, distance_km, time_minutes, total_cost, unresolved_count, created_at
	FROM route_plans
	ORDER BY created_at DESC, id
	LIMIT $1;
	`

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list plans: query route_plans table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.PlanRecord, 0, limit)
	for rows.Next() {
		var rec domain.PlanRecord
		var kind, stops string
		if err := rows.Scan(
			&rec.ID,
			&kind,
			&stops,
			&rec.DistanceKm,
			&rec.TimeMinutes,
			&rec.TotalCost,
			&rec.UnresolvedCount,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list plans: scan rows: %w", err)
		}

		rec.Kind = domain.PlanKind(kind)
		if err := json.Unmarshal([]byte(stops), &rec.Stops); err != nil {
			return nil, fmt.Errorf("list plans: decode stops id=%s: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: row iteration: %w", err)
	}

	return out, nil
}
