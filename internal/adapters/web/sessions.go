package web

import (
	"net/http"
	"time"

	"barstock/internal/app"
	"barstock/internal/core"
)

type sessionPayload struct {
	SessionName string `json:"session_name"`
	SessionType string `json:"session_type"`
	Notes       string `json:"notes"`
}

type sessionResponse struct {
	ID          string    `json:"id"`
	SessionName string    `json:"session_name"`
	SessionDate time.Time `json:"session_date"`
	SessionType string    `json:"session_type"`
	IsActive    bool      `json:"is_active"`
	Notes       *string   `json:"notes,omitempty"`
}

func toSessionResponse(s core.StockSession) sessionResponse {
	return sessionResponse{
		ID:          s.ID,
		SessionName: s.SessionName,
		SessionDate: s.SessionDate,
		SessionType: string(s.SessionType),
		IsActive:    s.IsActive,
		Notes:       s.Notes,
	}
}

// createSession handles POST /api/stock-sessions.
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var p sessionPayload
	if !decodeJSON(w, r, &p) {
		return
	}
	result, err := h.svc.CreateSession(r.Context(), app.SessionRequest{
		SessionName: p.SessionName,
		SessionType: core.SessionType(p.SessionType),
		Notes:       p.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSONStatus(w, toSessionResponse(*result.Session), http.StatusCreated)
}

// listSessions handles GET /api/stock-sessions.
func (h *Handler) listSessions(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListSessions(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	sessions := make([]sessionResponse, 0, len(result.Sessions))
	for _, s := range result.Sessions {
		sessions = append(sessions, toSessionResponse(s))
	}
	writeJSON(w, sessions)
}

// currentSession handles GET /api/stock-sessions/current. Responds with
// null when no session is active.
func (h *Handler) currentSession(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.CurrentSession(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if result.Session == nil {
		writeJSON(w, nil)
		return
	}
	writeJSON(w, toSessionResponse(*result.Session))
}
