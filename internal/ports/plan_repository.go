package ports

import (
	"context"
	"route-optimization-service/internal/domain"
)

// Port: a boundary for keeping the history of computed route plans.
type PlanRepository interface {
	// Store a computed plan summary.
	SavePlan(ctx context.Context, rec domain.PlanRecord) error
	// Return the most recent plans, newest first.
	ListPlans(ctx context.Context, limit int) ([]domain.PlanRecord, error)
}
