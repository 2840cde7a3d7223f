package ports

import "route-optimization-service/internal/domain"

// Contract for turning a free-text location into coordinates.
// Implementations must not fail: unknown names come back unresolved.
type Geocoder interface {
	Resolve(name string) (domain.NamedLocation, bool)
}
