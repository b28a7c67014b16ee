package shared

import (
	"errors"
	"log/slog"
	"net/http"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/evaluation"
	"hrsystem/internal/domain/feedback"
	"hrsystem/internal/domain/selfassessment"
	"hrsystem/internal/domain/training"
	"hrsystem/internal/domain/user"
	"hrsystem/internal/domain/validate"
	"hrsystem/internal/platform/requestctx"
	"hrsystem/internal/transport/http/api"
)

// WriteError maps domain errors onto the response envelope. Anything not
// recognized is treated as a storage failure.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := requestctx.GetRequestID(r.Context())

	var verr *validate.Error
	switch {
	case errors.As(err, &verr):
		api.FailValidation(w, verr, requestID)
	case errors.Is(err, access.ErrDenied):
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", requestID)
	case errors.Is(err, evaluation.ErrNotFound),
		errors.Is(err, feedback.ErrNotFound),
		errors.Is(err, feedback.ErrEvaluationNotFound),
		errors.Is(err, selfassessment.ErrNotFound),
		errors.Is(err, training.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		api.Fail(w, http.StatusNotFound, "not_found", err.Error(), requestID)
	case errors.Is(err, training.ErrNotPending):
		api.Fail(w, http.StatusConflict, "invalid_state", err.Error(), requestID)
	default:
		slog.Warn("request failed", "path", r.URL.Path, "err", err)
		api.Fail(w, http.StatusInternalServerError, "internal_error", "internal error", requestID)
	}
}
