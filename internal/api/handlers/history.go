package handlers

import (
	"log"
	"net/http"
	"route-optimization-service/internal/api/dto"
	"route-optimization-service/internal/gazetteer"
	"route-optimization-service/internal/ports"
	"strconv"
)

const (
	defaultPlanLimit = 20
	maxPlanLimit     = 100
)

// PlanHistoryHandler exposes recently computed plans.
type PlanHistoryHandler struct {
	Repo ports.PlanRepository
}

func (h *PlanHistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	limit := defaultPlanLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxPlanLimit {
			writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	if h.Repo == nil {
		writeJSON(w, r, http.StatusOK, dto.NewListPlansResponse(nil))
		return
	}

	recs, err := h.Repo.ListPlans(r.Context(), limit)
	if err != nil {
		log.Printf("list plans failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewListPlansResponse(recs))
}

// PlaceHandler exposes the gazetteer table in match order.
type PlaceHandler struct {
	Gazetteer *gazetteer.Gazetteer
}

func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListPlacesResponse{Places: h.Gazetteer.Places()})
}
