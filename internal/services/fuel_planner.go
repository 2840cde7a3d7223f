package services

import (
	"fmt"
	"math"
	"route-optimization-service/internal/domain"
)

// Trips longer than this also get a rest advisory.
const overnightRestDistanceKm = 500.0

var fuelEfficiencyTips = []string{
	"Maintain steady speed (60-80 km/h for optimal mileage)",
	"Avoid aggressive acceleration and braking",
	"Keep tires properly inflated",
	"Remove unnecessary weight from vehicle",
	"Plan route to avoid heavy traffic areas",
}

// PlanFuel derives fuel needs, refuelling stops and advice for a route.
//
// Stops are placed at even intervals so that no stretch exceeds one tank;
// a route that fits in a single tank needs none.
func PlanFuel(totalDistanceKm float64, vehicle domain.VehicleProfile) (domain.FuelPlan, error) {
	if math.IsNaN(totalDistanceKm) || math.IsInf(totalDistanceKm, 0) || totalDistanceKm < 0 {
		return domain.FuelPlan{}, &domain.InvalidConstraintError{
			Field:  "total_distance_km",
			Reason: fmt.Sprintf("must be a non-negative number, got %v", totalDistanceKm),
		}
	}
	if err := vehicle.Validate(); err != nil {
		return domain.FuelPlan{}, fmt.Errorf("plan fuel: %w", err)
	}

	liters := totalDistanceKm / vehicle.MileageKmPerLiter
	cost := liters * vehicle.FuelPricePerLiter

	stopCount := int(math.Ceil(liters/vehicle.TankCapacityLiters)) - 1
	if stopCount < 0 {
		stopCount = 0
	}

	stops := make([]domain.FuelStop, 0, stopCount)
	if stopCount > 0 {
		interval := totalDistanceKm / float64(stopCount+1)
		for i := 1; i <= stopCount; i++ {
			stops = append(stops, domain.FuelStop{Number: i, DistanceKm: interval * float64(i)})
		}
	}

	tips := make([]string, 0, len(fuelEfficiencyTips)+1)
	tips = append(tips, fuelEfficiencyTips...)
	if totalDistanceKm > overnightRestDistanceKm {
		tips = append(tips, "Consider overnight rest to avoid driver fatigue")
	}

	costPerKm := 0.0
	if totalDistanceKm > 0 {
		costPerKm = cost / totalDistanceKm
	}

	return domain.FuelPlan{
		TotalDistanceKm:  totalDistanceKm,
		FuelNeededLiters: liters,
		FuelCost:         cost,
		CostPerKm:        costPerKm,
		StopCount:        stopCount,
		Stops:            stops,
		Tips:             tips,
		Vehicle:          vehicle,
	}, nil
}
