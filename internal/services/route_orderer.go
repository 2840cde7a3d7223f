package services

import (
	"math"
	"route-optimization-service/internal/domain"
)

type OrderStrategy string

const (
	StrategyExact           OrderStrategy = "exact"
	StrategyNearestNeighbor OrderStrategy = "nearest_neighbor"
)

// Exhaustive search is bounded to 3! permutations; larger inputs switch to
// the nearest-neighbor heuristic.
const maxExactStops = 3

// OrderStops returns a visiting order for stops as a permutation of indices,
// with stops[0] fixed as the start. The path is open: there is no return leg.
func OrderStops(stops []domain.NamedLocation, distance DistanceFunc) ([]int, OrderStrategy, error) {
	if len(stops) < 2 {
		return nil, "", domain.ErrInsufficientStops
	}

	if len(stops)-1 <= maxExactStops {
		return ExactOrder(stops, distance), StrategyExact, nil
	}
	return NearestNeighborOrder(stops, distance), StrategyNearestNeighbor, nil
}

// ExactOrder enumerates every ordering of stops[1:] in lexicographic index
// order and keeps the first one with the minimum path distance.
func ExactOrder(stops []domain.NamedLocation, distance DistanceFunc) []int {
	n := len(stops)
	best := make([]int, n)
	for i := range best {
		best[i] = i
	}
	if n <= 2 {
		return best
	}

	bestDistance := math.Inf(1)
	perm := make([]int, 1, n)
	used := make([]bool, n)
	used[0] = true

	var walk func()
	walk = func() {
		if len(perm) == n {
			if d := PathDistance(stops, perm, distance); d < bestDistance {
				bestDistance = d
				copy(best, perm)
			}
			return
		}
		for i := 1; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			perm = append(perm, i)
			walk()
			perm = perm[:len(perm)-1]
			used[i] = false
		}
	}
	walk()

	return best
}

// PathDistance sums leg distances along order.
func PathDistance(stops []domain.NamedLocation, order []int, distance DistanceFunc) float64 {
	total := 0.0
	for i := 0; i+1 < len(order); i++ {
		total += distance(stops[order[i]], stops[order[i+1]])
	}
	return total
}
