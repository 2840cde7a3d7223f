package ports

import (
	"context"
	"time"
)

const EventRoutePlanned = "route.planned"

// PlanEvent announces a newly computed route plan to interested consumers.
type PlanEvent struct {
	Type       string    `json:"type"`
	PlanID     string    `json:"plan_id"`
	Kind       string    `json:"kind"`
	Stops      []string  `json:"stops"`
	DistanceKm float64   `json:"distance_km"`
	TotalCost  float64   `json:"total_cost"`
	At         time.Time `json:"at"`
}

// Contract for announcing plan events.
type EventPublisher interface {
	Publish(ctx context.Context, evt PlanEvent) error
}

// Contract for receiving plan events. The returned cancel func releases the
// subscription and closes the channel.
type EventSubscriber interface {
	Subscribe(ctx context.Context) (<-chan PlanEvent, func(), error)
}
