package domain

import (
	"errors"
	"math"
	"testing"
)

func ptr(f float64) *float64 { return &f }

func TestVehicleSpecResolveDefaults(t *testing.T) {
	defaults := VehicleProfile{MileageKmPerLiter: 12, FuelPricePerLiter: 100, TankCapacityLiters: 50}

	var spec *VehicleSpec
	v, err := spec.Resolve(defaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != defaults {
		t.Fatalf("nil spec resolved to %+v, want %+v", v, defaults)
	}

	v, err = (&VehicleSpec{FuelPricePerLiter: ptr(102.5)}).Resolve(defaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.FuelPricePerLiter != 102.5 || v.MileageKmPerLiter != 12 || v.TankCapacityLiters != 50 {
		t.Fatalf("partial spec resolved to %+v", v)
	}
}

func TestVehicleSpecResolveRejectsInvalid(t *testing.T) {
	defaults := VehicleProfile{MileageKmPerLiter: 12, FuelPricePerLiter: 100, TankCapacityLiters: 50}

	cases := []struct {
		name  string
		spec  VehicleSpec
		field string
	}{
		{"zero mileage", VehicleSpec{MileageKmPerLiter: ptr(0)}, "mileage_kmpl"},
		{"negative mileage", VehicleSpec{MileageKmPerLiter: ptr(-3)}, "mileage_kmpl"},
		{"zero tank", VehicleSpec{TankCapacityLiters: ptr(0)}, "tank_capacity_liters"},
		{"negative price", VehicleSpec{FuelPricePerLiter: ptr(-1)}, "fuel_price_per_liter"},
		{"nan price", VehicleSpec{FuelPricePerLiter: ptr(math.NaN())}, "fuel_price_per_liter"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.spec.Resolve(defaults)
			var ve *InvalidVehicleProfileError
			if !errors.As(err, &ve) {
				t.Fatalf("expected InvalidVehicleProfileError, got %v", err)
			}
			if ve.Field != tc.field {
				t.Fatalf("field = %q, want %q", ve.Field, tc.field)
			}
			if !IsInputError(err) {
				t.Fatalf("IsInputError(%v) = false", err)
			}
		})
	}
}

func TestZeroFuelPriceIsValid(t *testing.T) {
	v := VehicleProfile{MileageKmPerLiter: 10, FuelPricePerLiter: 0, TankCapacityLiters: 40}
	if err := v.Validate(); err != nil {
		t.Fatalf("free fuel should be accepted: %v", err)
	}
}
