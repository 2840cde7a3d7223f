package domain

import "time"

type PlanKind string

const (
	PlanKindSingle    PlanKind = "single"
	PlanKindMultiStop PlanKind = "multi_stop"
)

// PlanRecord is the history entry kept by the HTTP layer for a computed route.
type PlanRecord struct {
	ID              string
	Kind            PlanKind
	Stops           []string
	DistanceKm      float64
	TimeMinutes     float64
	TotalCost       float64
	UnresolvedCount int
	CreatedAt       time.Time
}

// NewPlanRecord summarises a route plan for persistence.
func NewPlanRecord(id string, kind PlanKind, plan RoutePlan, at time.Time) PlanRecord {
	return PlanRecord{
		ID:              id,
		Kind:            kind,
		Stops:           plan.StopNames(),
		DistanceKm:      plan.Totals.DistanceKm,
		TimeMinutes:     plan.Totals.TimeMinutes,
		TotalCost:       plan.Totals.TotalCost(),
		UnresolvedCount: len(plan.UnresolvedStops()),
		CreatedAt:       at,
	}
}
