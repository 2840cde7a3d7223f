package handlers

import (
	"context"
	"log"
	"net/http"
	"route-optimization-service/internal/api/dto"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/ports"
	"route-optimization-service/internal/services"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RouteHandler exposes the route engine over HTTP. Computed single and
// multi-stop plans are recorded in Plans and announced on Publisher when
// those are configured.
type RouteHandler struct {
	Engine    *services.RouteOptimizer
	Plans     ports.PlanRepository
	Publisher ports.EventPublisher
	Now       func() time.Time
}

func (h *RouteHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.OptimizeRouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	res, err := h.Engine.OptimizeSingleRoute(r.Context(), req.Origin, req.Destination, req.Constraints.ToDomain())
	if err != nil {
		recordOutcome("optimize_route", err, nil)
		writeEngineError(w, r, "optimize route", err)
		return
	}
	recordOutcome("optimize_route", nil, res.Warnings)

	at := h.now()
	id := h.record(r.Context(), domain.PlanKindSingle, res.Plan, at)

	writeJSON(w, r, http.StatusOK, dto.NewOptimizeRouteResponse(id, res, at))
}

func (h *RouteHandler) OptimizeMultiStop(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.OptimizeMultiStopRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.Engine.OptimizeMultiStopRoute(r.Context(), req.Stops, req.Constraints.ToDomain())
	if err != nil {
		recordOutcome("optimize_multi_stop", err, nil)
		writeEngineError(w, r, "optimize multi-stop route", err)
		return
	}
	recordOutcome("optimize_multi_stop", nil, res.Warnings)

	id := h.record(r.Context(), domain.PlanKindMultiStop, res.Plan, h.now())

	writeJSON(w, r, http.StatusOK, dto.NewOptimizeMultiStopResponse(id, res))
}

func (h *RouteHandler) DepartureTime(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.DepartureTimeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Origin) == "" || strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	res, err := h.Engine.SuggestDepartureTime(r.Context(), req.Origin, req.Destination, req.PreferredArrivalTime)
	if err != nil {
		recordOutcome("departure_time", err, nil)
		writeEngineError(w, r, "suggest departure time", err)
		return
	}
	recordOutcome("departure_time", nil, res.Warnings)

	writeJSON(w, r, http.StatusOK, dto.NewDepartureTimeResponse(req.Origin, req.Destination, res))
}

func (h *RouteHandler) FuelOptimization(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.FuelOptimizationRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.RouteInfo.TotalDistanceKm == nil {
		writeError(w, r, http.StatusBadRequest, "route_info.total_distance_km is required")
		return
	}

	plan, err := h.Engine.OptimizeFuel(r.Context(), *req.RouteInfo.TotalDistanceKm, req.VehicleSpecs.ToDomain())
	recordOutcome("fuel_optimization", err, nil)
	if err != nil {
		writeEngineError(w, r, "optimize fuel", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewFuelOptimizationResponse(plan))
}

// record stores and announces a computed plan. Failures are logged only;
// the caller already has a valid result.
func (h *RouteHandler) record(ctx context.Context, kind domain.PlanKind, plan domain.RoutePlan, at time.Time) string {
	rec := domain.NewPlanRecord(uuid.NewString(), kind, plan, at)

	if h.Plans != nil {
		if err := h.Plans.SavePlan(ctx, rec); err != nil {
			log.Printf("save plan failed: plan_id=%s err=%v", rec.ID, err)
		}
	}

	if h.Publisher != nil {
		evt := ports.PlanEvent{
			Type:       ports.EventRoutePlanned,
			PlanID:     rec.ID,
			Kind:       string(rec.Kind),
			Stops:      rec.Stops,
			DistanceKm: dto.Round2(rec.DistanceKm),
			TotalCost:  dto.Round2(rec.TotalCost),
			At:         rec.CreatedAt,
		}
		if err := h.Publisher.Publish(ctx, evt); err != nil {
			log.Printf("publish plan event failed: plan_id=%s err=%v", rec.ID, err)
		}
	}

	return rec.ID
}

func (h *RouteHandler) now() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}
