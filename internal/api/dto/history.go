package dto

import (
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/gazetteer"
	"time"
)

type PlanRecordResponse struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	Stops           []string  `json:"stops"`
	DistanceKm      float64   `json:"distance_km"`
	TimeMinutes     float64   `json:"time_minutes"`
	TotalCost       float64   `json:"total_cost"`
	UnresolvedCount int       `json:"unresolved_count"`
	CreatedAt       time.Time `json:"created_at"`
}

type ListPlansResponse struct {
	Plans []PlanRecordResponse `json:"plans"`
}

type ListPlacesResponse struct {
	Places []gazetteer.Place `json:"places"`
}

func NewListPlansResponse(recs []domain.PlanRecord) ListPlansResponse {
	res := ListPlansResponse{Plans: make([]PlanRecordResponse, 0, len(recs))}
	for _, r := range recs {
		res.Plans = append(res.Plans, PlanRecordResponse{
			ID:              r.ID,
			Kind:            string(r.Kind),
			Stops:           r.Stops,
			DistanceKm:      Round2(r.DistanceKm),
			TimeMinutes:     Round2(r.TimeMinutes),
			TotalCost:       Round2(r.TotalCost),
			UnresolvedCount: r.UnresolvedCount,
			CreatedAt:       r.CreatedAt,
		})
	}
	return res
}
