package services

import (
	"errors"
	"math"
	"route-optimization-service/internal/domain"
	"testing"
)

func TestPlanFuelSingleTank(t *testing.T) {
	vehicle := domain.VehicleProfile{MileageKmPerLiter: 12, FuelPricePerLiter: 102.5, TankCapacityLiters: 60}

	plan, err := PlanFuel(450, vehicle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.FuelNeededLiters != 37.5 {
		t.Errorf("liters = %v, want 37.5", plan.FuelNeededLiters)
	}
	if plan.FuelCost != 3843.75 {
		t.Errorf("cost = %v, want 3843.75", plan.FuelCost)
	}
	if !approx(plan.CostPerKm, 8.541666, 1e-5) {
		t.Errorf("cost per km = %v", plan.CostPerKm)
	}
	if plan.StopCount != 0 || len(plan.Stops) != 0 {
		t.Errorf("stops = %d (%v), want none", plan.StopCount, plan.Stops)
	}
	if len(plan.Tips) != 5 {
		t.Errorf("tips = %d, want 5", len(plan.Tips))
	}
}

func TestPlanFuelExactTankNeedsNoStop(t *testing.T) {
	vehicle := domain.VehicleProfile{MileageKmPerLiter: 12, FuelPricePerLiter: 100, TankCapacityLiters: 50}

	plan, err := PlanFuel(600, vehicle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.StopCount != 0 {
		t.Errorf("stops = %d, want 0 when fuel needed equals tank", plan.StopCount)
	}
}

func TestPlanFuelEvenlySpacedStops(t *testing.T) {
	vehicle := domain.VehicleProfile{MileageKmPerLiter: 12, FuelPricePerLiter: 100, TankCapacityLiters: 50}

	plan, err := PlanFuel(1300, vehicle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if plan.StopCount != 2 || len(plan.Stops) != 2 {
		t.Fatalf("stops = %d (%v), want 2", plan.StopCount, plan.Stops)
	}
	interval := 1300.0 / 3
	for i, s := range plan.Stops {
		if s.Number != i+1 {
			t.Errorf("stop %d number = %d", i, s.Number)
		}
		if !approx(s.DistanceKm, interval*float64(i+1), 1e-9) {
			t.Errorf("stop %d at %v km, want %v", i, s.DistanceKm, interval*float64(i+1))
		}
	}

	if len(plan.Tips) != 6 || plan.Tips[5] != "Consider overnight rest to avoid driver fatigue" {
		t.Errorf("long-route tips = %v", plan.Tips)
	}
}

func TestPlanFuelZeroDistance(t *testing.T) {
	vehicle := domain.VehicleProfile{MileageKmPerLiter: 12, FuelPricePerLiter: 100, TankCapacityLiters: 50}

	plan, err := PlanFuel(0, vehicle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.FuelNeededLiters != 0 || plan.FuelCost != 0 || plan.CostPerKm != 0 || plan.StopCount != 0 {
		t.Errorf("zero-distance plan = %+v", plan)
	}
}

func TestPlanFuelRejectsInvalidInput(t *testing.T) {
	valid := domain.VehicleProfile{MileageKmPerLiter: 12, FuelPricePerLiter: 100, TankCapacityLiters: 50}

	for _, d := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := PlanFuel(d, valid)
		var ce *domain.InvalidConstraintError
		if !errors.As(err, &ce) || ce.Field != "total_distance_km" {
			t.Errorf("PlanFuel(%v) err = %v, want InvalidConstraintError", d, err)
		}
	}

	bad := valid
	bad.TankCapacityLiters = 0
	_, err := PlanFuel(100, bad)
	var ve *domain.InvalidVehicleProfileError
	if !errors.As(err, &ve) || ve.Field != "tank_capacity_liters" {
		t.Errorf("zero tank err = %v, want InvalidVehicleProfileError", err)
	}
}
