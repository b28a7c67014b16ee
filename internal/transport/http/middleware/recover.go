package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"hrsystem/internal/platform/requestctx"
	"hrsystem/internal/transport/http/api"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic recovered",
					"path", r.URL.Path,
					"method", r.Method,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				api.Fail(w, http.StatusInternalServerError, "internal_error", "internal error", requestctx.GetRequestID(r.Context()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
