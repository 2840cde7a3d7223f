package services

import (
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/geo"
)

// Toll bands are half-open: [0,50) free, [50,200) and [200,inf) per-km rates.
const (
	tollFreeBelowKm    = 50.0
	tollLongHaulFromKm = 200.0
	tollRateShortPerKm = 0.5
	tollRateLongPerKm  = 0.8
)

// CostModel prices individual legs of a route.
type CostModel struct {
	DriverHourlyRate   float64
	FallbackDistanceKm float64
}

// DistanceKm is the great-circle distance between two locations, except that
// a leg whose both ends are unresolved gets FallbackDistanceKm.
func (m CostModel) DistanceKm(from, to domain.NamedLocation) float64 {
	if !from.Resolved && !to.Resolved {
		return m.FallbackDistanceKm
	}
	return geo.HaversineKm(from.Coords, to.Coords)
}

// Segment computes distance, time and per-leg costs for from->to.
func (m CostModel) Segment(
	from domain.NamedLocation,
	to domain.NamedLocation,
	speedKmh float64,
	vehicle domain.VehicleProfile,
) domain.RouteSegment {
	d := m.DistanceKm(from, to)

	return domain.RouteSegment{
		From:        from,
		To:          to,
		DistanceKm:  d,
		TimeMinutes: d / speedKmh * 60,
		FuelCost:    d / vehicle.MileageKmPerLiter * vehicle.FuelPricePerLiter,
		TollCost:    TollCost(d),
	}
}

// DriverCost is the wage for driving distanceKm at speedKmh.
func (m CostModel) DriverCost(distanceKm, speedKmh float64) float64 {
	return distanceKm / speedKmh * m.DriverHourlyRate
}

// Totals aggregates segments into route-level metrics.
func (m CostModel) Totals(
	segments []domain.RouteSegment,
	speedKmh float64,
	vehicle domain.VehicleProfile,
) domain.RouteTotals {
	var t domain.RouteTotals
	for _, s := range segments {
		t.DistanceKm += s.DistanceKm
		t.TimeMinutes += s.TimeMinutes
		t.FuelCost += s.FuelCost
		t.TollCost += s.TollCost
	}

	t.DriverCost = m.DriverCost(t.DistanceKm, speedKmh)
	t.FuelNeededLiters = t.DistanceKm / vehicle.MileageKmPerLiter

	return t
}

// TollCost is a non-decreasing step function of segment distance.
func TollCost(distanceKm float64) float64 {
	switch {
	case distanceKm < tollFreeBelowKm:
		return 0
	case distanceKm < tollLongHaulFromKm:
		return distanceKm * tollRateShortPerKm
	default:
		return distanceKm * tollRateLongPerKm
	}
}
