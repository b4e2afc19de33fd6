package handler

import (
	"encoding/json"
	"net/http"
)

// Error messages surfaced to callers. Internal failure detail stays in the
// server log.
const (
	msgPhoneRequired = "Phone number required"
	msgOrderNotFound = "Order not found"
	msgMissingFields = "Missing required fields"
	msgInternalError = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
