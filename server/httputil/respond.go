// Package httputil holds the JSON response and error-mapping helpers
// shared by handlers and middleware.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"caffind-server/apperr"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes a JSON error body with the given status.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteDomainError maps a service error onto the HTTP taxonomy: the
// caller can always tell "not allowed" from "not there" from "broken".
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperr.ErrStoreUnavailable):
		WriteError(w, http.StatusServiceUnavailable, "store unavailable")
	default:
		WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
