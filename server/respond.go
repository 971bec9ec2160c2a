package server

import (
	"encoding/json"
	"net/http"

	"github.com/bloglane/admin-auth-server/auth"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json; charset=utf-8"

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Err(err).Msg("failed to encode response")
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}

// respondAuthError maps the service's sentinel errors onto stable status
// codes and single-line messages. Unexpected store or crypto failures
// become an opaque 500.
func respondAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials),
		errors.Is(err, auth.ErrInvalidEmail),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrInvalidName),
		errors.Is(err, auth.ErrInvalidStatus),
		errors.Is(err, auth.ErrMissingRefreshToken):
		respondError(w, http.StatusBadRequest, errMessage(err))
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrAdminNotFound):
		respondError(w, http.StatusNotFound, errMessage(err))
	case errors.Is(err, auth.ErrAccountInactive):
		respondError(w, http.StatusForbidden, errMessage(err))
	case errors.Is(err, auth.ErrAlreadyBootstrapped),
		errors.Is(err, auth.ErrUnauthorized),
		errors.Is(err, auth.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, errMessage(err))
	case errors.Is(err, auth.ErrDuplicateEmail):
		respondError(w, http.StatusConflict, errMessage(err))
	default:
		log.Err(err).Msg("unexpected auth service error")
		respondError(w, http.StatusInternalServerError, "Server error")
	}
}

// errMessage returns the sentinel's message even when the error has been
// wrapped with call-site context.
func errMessage(err error) string {
	return errors.Cause(err).Error()
}
