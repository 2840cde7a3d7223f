package handlers

import (
	"net/http"
	"route-optimization-service/internal/services"
)

// Health provides a minimal liveness check endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	res := map[string]string{
		"status":  "ok",
		"engine":  services.EngineName,
		"version": services.EngineVersion,
	}
	writeJSON(w, r, http.StatusOK, res)
}
