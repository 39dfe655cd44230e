package middleware

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/fundwise/sipadvisor/internal/errors"
	"github.com/fundwise/sipadvisor/internal/logger"
)

// Recovery converts panics into a structured 500 response so a single
// bad request cannot take the server down.
func Recovery(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Errorw("panic recovered",
						"panic", rec,
						"method", r.Method,
						"path", r.URL.Path,
					)

					appErr := apperrors.NewInternalError("Internal server error", nil)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(appErr.StatusCode)
					json.NewEncoder(w).Encode(apperrors.NewErrorResponse(appErr, requestID(r)))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func requestID(r *http.Request) string {
	return r.Header.Get("X-Request-ID")
}
