package dto

import (
	"fmt"
	"route-optimization-service/internal/domain"
)

type RouteInfoRequest struct {
	TotalDistanceKm *float64 `json:"total_distance_km"`
}

type FuelOptimizationRequest struct {
	RouteInfo    RouteInfoRequest    `json:"route_info"`
	VehicleSpecs *VehicleSpecRequest `json:"vehicle_specs"`
}

type FuelStopResponse struct {
	StopNumber int     `json:"stop_number"`
	DistanceKm float64 `json:"distance_km"`
	Label      string  `json:"label"`
}

type VehicleResponse struct {
	MileageKmpl        float64 `json:"mileage_kmpl"`
	FuelPricePerLiter  float64 `json:"fuel_price_per_liter"`
	TankCapacityLiters float64 `json:"tank_capacity_liters"`
}

type FuelOptimizationResponse struct {
	TotalDistanceKm  float64            `json:"total_distance_km"`
	FuelNeededLiters float64            `json:"fuel_needed_liters"`
	TotalFuelCost    float64            `json:"total_fuel_cost"`
	CostPerKm        float64            `json:"cost_per_km"`
	RecommendedStops int                `json:"recommended_fuel_stops"`
	FuelStops        []FuelStopResponse `json:"fuel_stops"`
	EfficiencyTips   []string           `json:"efficiency_tips"`
	Vehicle          VehicleResponse    `json:"vehicle"`
}

func NewFuelOptimizationResponse(p *domain.FuelPlan) FuelOptimizationResponse {
	stops := make([]FuelStopResponse, 0, len(p.Stops))
	for _, s := range p.Stops {
		km := Round2(s.DistanceKm)
		stops = append(stops, FuelStopResponse{
			StopNumber: s.Number,
			DistanceKm: km,
			Label:      fmt.Sprintf("Fuel stop %d at %.2f km", s.Number, km),
		})
	}

	return FuelOptimizationResponse{
		TotalDistanceKm:  Round2(p.TotalDistanceKm),
		FuelNeededLiters: Round2(p.FuelNeededLiters),
		TotalFuelCost:    Round2(p.FuelCost),
		CostPerKm:        Round2(p.CostPerKm),
		RecommendedStops: p.StopCount,
		FuelStops:        stops,
		EfficiencyTips:   p.Tips,
		Vehicle: VehicleResponse{
			MileageKmpl:        p.Vehicle.MileageKmPerLiter,
			FuelPricePerLiter:  p.Vehicle.FuelPricePerLiter,
			TankCapacityLiters: p.Vehicle.TankCapacityLiters,
		},
	}
}
