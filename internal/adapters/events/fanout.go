package events

import (
	"context"
	"errors"
	"route-optimization-service/internal/ports"
)

// Fanout publishes every event to all of its publishers, attempting each one
// even when an earlier one fails.
type Fanout []ports.EventPublisher

func (f Fanout) Publish(ctx context.Context, evt ports.PlanEvent) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, evt); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
