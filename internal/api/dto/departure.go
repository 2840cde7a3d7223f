package dto

import (
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/services"
)

type DepartureTimeRequest struct {
	Origin               string `json:"origin"`
	Destination          string `json:"destination"`
	PreferredArrivalTime string `json:"preferred_arrival_time"`
}

type DepartureOptionResponse struct {
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	ArrivalDayOffset int     `json:"arrival_day_offset"`
	TravelTimeHours  float64 `json:"travel_time_hours"`
	TrafficLevel     string  `json:"traffic_level"`
	Score            float64 `json:"score"`
}

type DepartureTimeResponse struct {
	Origin              string                    `json:"origin"`
	Destination         string                    `json:"destination"`
	BaseTravelTimeHours float64                   `json:"base_travel_time_hours"`
	PreferredArrival    *string                   `json:"preferred_arrival_time"`
	Recommended         []DepartureOptionResponse `json:"recommended_departures"`
	AllOptions          []DepartureOptionResponse `json:"all_options"`
	Warnings            []WarningResponse         `json:"warnings"`
}

func newDepartureOptions(opts []domain.DepartureOption) []DepartureOptionResponse {
	out := make([]DepartureOptionResponse, 0, len(opts))
	for _, o := range opts {
		out = append(out, DepartureOptionResponse{
			DepartureTime:    o.DepartureTime().String(),
			ArrivalTime:      o.ArrivalTime.String(),
			ArrivalDayOffset: o.ArrivalDayOffset,
			TravelTimeHours:  Round2(o.TravelTimeHours),
			TrafficLevel:     string(o.Traffic),
			Score:            Round2(o.Score),
		})
	}
	return out
}

func NewDepartureTimeResponse(origin, destination string, s *services.DepartureSuggestion) DepartureTimeResponse {
	res := DepartureTimeResponse{
		Origin:              origin,
		Destination:         destination,
		BaseTravelTimeHours: Round2(s.BaseTravelTimeHours),
		Recommended:         newDepartureOptions(s.Recommended),
		AllOptions:          newDepartureOptions(s.All),
		Warnings:            NewWarnings(s.Warnings),
	}
	if s.PreferredArrival != nil {
		p := s.PreferredArrival.String()
		res.PreferredArrival = &p
	}
	return res
}
