package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"hrsystem/internal/platform/requestctx"
)

// RequestID honors an incoming X-Request-Id so upstream proxies can
// correlate, generating one otherwise.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r.WithContext(requestctx.WithRequestID(r.Context(), requestID)))
	})
}
