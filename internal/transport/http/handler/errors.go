package handler

import (
	"errors"
	"net/http"

	"github.com/CcubeNetvix/medTracker/internal/domain"
)

// httpError maps domain sentinel errors to HTTP status codes. This is the
// single place the error taxonomy becomes user-facing; no string sniffing.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrDuplicateUser):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrStore):
		writeError(w, http.StatusBadGateway, "persistence unavailable, please try again")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
