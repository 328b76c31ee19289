package handler

import (
	"encoding/json"
	"net/http"

	"github.com/CcubeNetvix/medTracker/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// AuthEnvelope wraps register/login responses.
type AuthEnvelope struct {
	User  *domain.User `json:"user,omitempty"`
	Token string       `json:"token,omitempty"`
	Error string       `json:"error,omitempty"`
}

// DispatchEnvelope wraps notification dispatch responses. Results hold one
// entry per channel attempted, in attempt order.
type DispatchEnvelope struct {
	Results []domain.DeliveryResult `json:"results,omitempty"`
	Error   string                  `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}
