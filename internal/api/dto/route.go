package dto

import (
	"math"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/services"
	"time"
)

type VehicleSpecRequest struct {
	MileageKmpl        *float64 `json:"mileage_kmpl"`
	FuelPricePerLiter  *float64 `json:"fuel_price_per_liter"`
	TankCapacityLiters *float64 `json:"tank_capacity_liters"`
}

func (v *VehicleSpecRequest) ToDomain() *domain.VehicleSpec {
	if v == nil {
		return nil
	}
	return &domain.VehicleSpec{
		MileageKmPerLiter:  v.MileageKmpl,
		FuelPricePerLiter:  v.FuelPricePerLiter,
		TankCapacityLiters: v.TankCapacityLiters,
	}
}

type ConstraintsRequest struct {
	PreferredSpeedKmh *float64            `json:"preferred_speed_kmh"`
	Vehicle           *VehicleSpecRequest `json:"vehicle"`
}

func (c *ConstraintsRequest) ToDomain() services.Constraints {
	if c == nil {
		return services.Constraints{}
	}
	return services.Constraints{
		PreferredSpeedKmh: c.PreferredSpeedKmh,
		Vehicle:           c.Vehicle.ToDomain(),
	}
}

type OptimizeRouteRequest struct {
	Origin      string              `json:"origin"`
	Destination string              `json:"destination"`
	Constraints *ConstraintsRequest `json:"constraints"`
}

type OptimizeMultiStopRequest struct {
	Stops       []string            `json:"stops"`
	Constraints *ConstraintsRequest `json:"constraints"`
}

type LocationResponse struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Resolved bool    `json:"resolved"`
}

type CostsResponse struct {
	Fuel   float64 `json:"fuel"`
	Toll   float64 `json:"toll"`
	Driver float64 `json:"driver"`
	Total  float64 `json:"total"`
}

type WarningResponse struct {
	Code    string `json:"code"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type OptimizeRouteResponse struct {
	PlanID           string            `json:"plan_id"`
	Origin           LocationResponse  `json:"origin"`
	Destination      LocationResponse  `json:"destination"`
	DistanceKm       float64           `json:"distance_km"`
	TimeHours        float64           `json:"time_hours"`
	TimeMinutes      float64           `json:"time_minutes"`
	Costs            CostsResponse     `json:"costs"`
	FuelNeededLiters float64           `json:"fuel_needed_liters"`
	Recommendations  []string          `json:"recommendations"`
	Warnings         []WarningResponse `json:"warnings"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SegmentResponse struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	DistanceKm  float64 `json:"distance_km"`
	TimeMinutes float64 `json:"time_minutes"`
	FuelCost    float64 `json:"fuel_cost"`
	TollCost    float64 `json:"toll_cost"`
	TotalCost   float64 `json:"total_cost"`
}

type TotalsResponse struct {
	DistanceKm       float64 `json:"distance_km"`
	TimeHours        float64 `json:"time_hours"`
	FuelCost         float64 `json:"fuel_cost"`
	TollCost         float64 `json:"toll_cost"`
	DriverCost       float64 `json:"driver_cost"`
	TotalCost        float64 `json:"total_cost"`
	FuelNeededLiters float64 `json:"fuel_needed_liters"`
}

type OptimizeMultiStopResponse struct {
	PlanID         string            `json:"plan_id"`
	OptimizedRoute []string          `json:"optimized_route"`
	Order          []int             `json:"order"`
	Strategy       string            `json:"strategy"`
	Segments       []SegmentResponse `json:"segments"`
	Totals         TotalsResponse    `json:"totals"`
	Warnings       []WarningResponse `json:"warnings"`
}

func NewLocationResponse(l domain.NamedLocation) LocationResponse {
	return LocationResponse{Name: l.Name, Lat: l.Coords.Lat, Lon: l.Coords.Lon, Resolved: l.Resolved}
}

func NewWarnings(ws []domain.Warning) []WarningResponse {
	out := make([]WarningResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, WarningResponse{Code: string(w.Code), Subject: w.Subject, Message: w.Message})
	}
	return out
}

func NewOptimizeRouteResponse(planID string, res *services.SingleRouteResult, at time.Time) OptimizeRouteResponse {
	t := res.Plan.Totals
	return OptimizeRouteResponse{
		PlanID:      planID,
		Origin:      NewLocationResponse(res.Plan.Stops[0]),
		Destination: NewLocationResponse(res.Plan.Stops[1]),
		DistanceKm:  Round2(t.DistanceKm),
		TimeHours:   Round2(t.TimeHours()),
		TimeMinutes: Round2(t.TimeMinutes),
		Costs: CostsResponse{
			Fuel:   Round2(t.FuelCost),
			Toll:   Round2(t.TollCost),
			Driver: Round2(t.DriverCost),
			Total:  Round2(t.TotalCost()),
		},
		FuelNeededLiters: Round2(t.FuelNeededLiters),
		Recommendations:  res.Recommendations,
		Warnings:         NewWarnings(res.Warnings),
		Timestamp:        at.UTC(),
	}
}

func NewOptimizeMultiStopResponse(planID string, res *services.MultiStopResult) OptimizeMultiStopResponse {
	segments := make([]SegmentResponse, 0, len(res.Plan.Segments))
	for _, s := range res.Plan.Segments {
		segments = append(segments, SegmentResponse{
			From:        s.From.Name,
			To:          s.To.Name,
			DistanceKm:  Round2(s.DistanceKm),
			TimeMinutes: Round2(s.TimeMinutes),
			FuelCost:    Round2(s.FuelCost),
			TollCost:    Round2(s.TollCost),
			TotalCost:   Round2(s.TotalCost()),
		})
	}

	t := res.Plan.Totals
	return OptimizeMultiStopResponse{
		PlanID:         planID,
		OptimizedRoute: res.Plan.StopNames(),
		Order:          res.Order,
		Strategy:       string(res.Strategy),
		Segments:       segments,
		Totals: TotalsResponse{
			DistanceKm:       Round2(t.DistanceKm),
			TimeHours:        Round2(t.TimeHours()),
			FuelCost:         Round2(t.FuelCost),
			TollCost:         Round2(t.TollCost),
			DriverCost:       Round2(t.DriverCost),
			TotalCost:        Round2(t.TotalCost()),
			FuelNeededLiters: Round2(t.FuelNeededLiters),
		},
		Warnings: NewWarnings(res.Warnings),
	}
}

// Round2 rounds half away from zero to two decimals.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
