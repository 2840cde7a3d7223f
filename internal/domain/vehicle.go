package domain

import "math"

// VehicleProfile describes the fuel characteristics used for cost planning.
// It is supplied per call and never stored by the engine.
type VehicleProfile struct {
	MileageKmPerLiter  float64
	FuelPricePerLiter  float64
	TankCapacityLiters float64
}

// Validate rejects profiles that would divide by zero or price fuel negatively.
func (v VehicleProfile) Validate() error {
	if !positiveFinite(v.MileageKmPerLiter) {
		return &InvalidVehicleProfileError{Field: "mileage_kmpl", Value: v.MileageKmPerLiter}
	}
	if math.IsNaN(v.FuelPricePerLiter) || math.IsInf(v.FuelPricePerLiter, 0) || v.FuelPricePerLiter < 0 {
		return &InvalidVehicleProfileError{Field: "fuel_price_per_liter", Value: v.FuelPricePerLiter}
	}
	if !positiveFinite(v.TankCapacityLiters) {
		return &InvalidVehicleProfileError{Field: "tank_capacity_liters", Value: v.TankCapacityLiters}
	}
	return nil
}

// VehicleSpec is a partially specified profile as received from callers.
// Nil fields fall back to defaults; present fields are validated as given.
type VehicleSpec struct {
	MileageKmPerLiter  *float64
	FuelPricePerLiter  *float64
	TankCapacityLiters *float64
}

// Resolve fills missing fields from defaults and validates the result.
func (s *VehicleSpec) Resolve(defaults VehicleProfile) (VehicleProfile, error) {
	v := defaults
	if s != nil {
		if s.MileageKmPerLiter != nil {
			v.MileageKmPerLiter = *s.MileageKmPerLiter
		}
		if s.FuelPricePerLiter != nil {
			v.FuelPricePerLiter = *s.FuelPricePerLiter
		}
		if s.TankCapacityLiters != nil {
			v.TankCapacityLiters = *s.TankCapacityLiters
		}
	}

	if err := v.Validate(); err != nil {
		return VehicleProfile{}, err
	}
	return v, nil
}

func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
