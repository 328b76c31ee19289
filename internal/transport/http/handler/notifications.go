package handler

import (
	"encoding/json"
	"net/http"

	"github.com/CcubeNetvix/medTracker/internal/application/notify"
	"github.com/CcubeNetvix/medTracker/internal/domain"
	"github.com/CcubeNetvix/medTracker/internal/transport/http/middleware"
)

// NotificationHandler handles the notification dispatch endpoint.
type NotificationHandler struct {
	svc notify.Service
}

func NewNotificationHandler(svc notify.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// Dispatch sends a reminder to the authenticated user over the requested
// channels. The recipient always comes from the verified token claims.
func (h *NotificationHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	rcpt := domain.Recipient{Name: claims.Name, Email: claims.Email, Phone: claims.Phone}
	results, err := h.svc.Dispatch(r.Context(), rcpt, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DispatchEnvelope{Results: results})
}
