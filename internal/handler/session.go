package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"kinhon/internal/metrics"
	"kinhon/internal/session"
)

type sessionRequest struct {
	Phone string `json:"phone"`
}

// CreateSessionHandler serves POST /api/session: it issues the signed token
// a client stores on login. Any non-empty phone is accepted; this is a
// filter key, not authentication.
func CreateSessionHandler(secret string, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req sessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, msgPhoneRequired)
			return
		}

		token, err := session.IssueToken(secret, req.Phone)
		if err != nil {
			if err == session.ErrPhoneRequired {
				writeError(w, http.StatusBadRequest, msgPhoneRequired)
				return
			}
			slog.Error("session token issue failed", "error", err)
			writeError(w, http.StatusInternalServerError, msgInternalError)
			return
		}

		m.IncSessionsStarted()
		w.Header().Set("Authorization", "Bearer "+token)
		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}
