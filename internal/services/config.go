package services

import (
	"fmt"
	"math"
	"route-optimization-service/internal/domain"
)

// Config holds the engine's tunables. It is copied into the engine at
// construction and never mutated afterwards.
type Config struct {
	DefaultSpeedKmh  float64
	DriverHourlyRate float64

	// Distance used when both ends of a leg are unresolved, so that a route
	// between two unknown places is never reported as zero length.
	FallbackDistanceKm float64

	// Fuel cost above which single-route results suggest efficient driving.
	HighFuelCostThreshold float64

	DefaultVehicle domain.VehicleProfile
}

func DefaultConfig() Config {
	return Config{
		DefaultSpeedKmh:       60,
		DriverHourlyRate:      150,
		FallbackDistanceKm:    100,
		HighFuelCostThreshold: 2000,
		DefaultVehicle: domain.VehicleProfile{
			MileageKmPerLiter:  12,
			FuelPricePerLiter:  100,
			TankCapacityLiters: 50,
		},
	}
}

func (c Config) Validate() error {
	if !(c.DefaultSpeedKmh > 0) || math.IsInf(c.DefaultSpeedKmh, 1) {
		return fmt.Errorf("engine config: default speed must be positive, got %v", c.DefaultSpeedKmh)
	}
	if !(c.DriverHourlyRate >= 0) {
		return fmt.Errorf("engine config: driver hourly rate must be >= 0, got %v", c.DriverHourlyRate)
	}
	if !(c.FallbackDistanceKm > 0) {
		return fmt.Errorf("engine config: fallback distance must be positive, got %v", c.FallbackDistanceKm)
	}
	if !(c.HighFuelCostThreshold >= 0) {
		return fmt.Errorf("engine config: fuel cost threshold must be >= 0, got %v", c.HighFuelCostThreshold)
	}
	if err := c.DefaultVehicle.Validate(); err != nil {
		return fmt.Errorf("engine config: default vehicle: %w", err)
	}
	return nil
}
