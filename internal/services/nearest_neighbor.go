package services

import (
	"math"
	"route-optimization-service/internal/domain"
)

// DistanceFunc returns the travel distance in kilometers between two locations.
type DistanceFunc func(from, to domain.NamedLocation) float64

// Order stops using a greedy nearest-neighbor walk from stops[0].
//
// The walk minimizes the immediate leg distance at each step and never
// returns to the start. It does not attempt global optimization; the result
// is a permutation of indices with index 0 first.
func NearestNeighborOrder(stops []domain.NamedLocation, distance DistanceFunc) []int {
	if len(stops) == 0 {
		return []int{}
	}

	remaining := make(map[int]struct{}, len(stops)-1)
	for i := 1; i < len(stops); i++ {
		remaining[i] = struct{}{}
	}

	order := make([]int, 0, len(stops))
	order = append(order, 0)
	current := 0

	for len(remaining) > 0 {
		best := -1
		minDistance := math.Inf(1)

		// Select next stop by minimum leg distance (greedy step).
		for i := range remaining {
			d := distance(stops[current], stops[i])
			// Tie-breaker ensures deterministic ordering when distances are equal.
			if d < minDistance || (d == minDistance && (best == -1 || i < best)) {
				minDistance = d
				best = i
			}
		}

		order = append(order, best)
		delete(remaining, best)
		current = best
	}

	return order
}
