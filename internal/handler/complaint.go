package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"kinhon/internal/model"
	"kinhon/internal/service"
)

type complaintRequest struct {
	OrderID     string              `json:"orderId"`
	Type        model.ComplaintType `json:"type"`
	Description string              `json:"description"`
}

// SubmitComplaintHandler serves POST /api/complaints. The referenced order
// is not checked for existence, matching the original contract.
func SubmitComplaintHandler(complaintSvc *service.ComplaintService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req complaintRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgMissingFields)
			return
		}

		id, err := complaintSvc.Submit(r.Context(), req.OrderID, req.Type, req.Description)
		if err != nil {
			if errors.Is(err, service.ErrMissingFields) {
				writeError(w, http.StatusBadRequest, msgMissingFields)
				return
			}
			slog.Error("complaint submit failed", "order_id", req.OrderID, "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"success": true, "id": id})
	}
}
