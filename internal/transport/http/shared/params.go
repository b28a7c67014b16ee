package shared

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrsystem/internal/platform/requestctx"
	"hrsystem/internal/transport/http/api"
)

// IDParam parses a numeric chi URL parameter. On failure it writes a 400 and
// reports ok=false.
func IDParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid "+name, requestctx.GetRequestID(r.Context()))
		return 0, false
	}
	return id, true
}
