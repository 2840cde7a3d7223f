package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/metrics"
)

// Bodies are small JSON documents; anything larger is rejected.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	return false
}

// decodeJSON reads exactly one JSON object into dst, rejecting unknown fields.
// On failure it writes a 400 and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}
	return true
}

// writeEngineError maps caller-input failures to 400 and hides everything else.
func writeEngineError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if domain.IsInputError(err) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	log.Printf("%s failed: %v", op, err)
	writeError(w, r, http.StatusInternalServerError, "internal server error")
}

func recordOutcome(op string, err error, warnings []domain.Warning) {
	outcome := "ok"
	switch {
	case err == nil:
	case domain.IsInputError(err):
		outcome = "invalid_input"
	default:
		outcome = "error"
	}
	metrics.EngineOperations.WithLabelValues(op, outcome).Inc()

	for _, w := range warnings {
		if w.Code == domain.WarningUnresolvedLocation {
			metrics.UnresolvedLocations.Inc()
		}
	}
}
