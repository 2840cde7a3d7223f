package ports

import (
	"context"
	"route-optimization-service/internal/gazetteer"
)

// Port: a data source of additional gazetteer places.
type PlaceSource interface {
	ListPlaces(ctx context.Context) ([]gazetteer.Place, error)
}
