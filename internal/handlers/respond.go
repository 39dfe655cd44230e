package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/fundwise/sipadvisor/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError renders any error as a structured error response. Typed
// errors keep their status code and error code; everything else is a
// plain 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		appErr = apperrors.NewInternalError("Internal server error", err)
	}
	writeJSON(w, appErr.StatusCode, apperrors.NewErrorResponse(appErr, r.Header.Get("X-Request-ID")))
}
