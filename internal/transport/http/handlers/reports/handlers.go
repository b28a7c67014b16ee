package reportshandler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/reports"
	"hrsystem/internal/transport/http/middleware"
	"hrsystem/internal/transport/http/shared"
)

type Handler struct {
	Service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/evaluations/{evaluationID}/pdf", h.handleEvaluationPDF)
	})
}

func actorFrom(r *http.Request) access.Actor {
	user, _ := middleware.GetUser(r.Context())
	return access.Actor{UserID: user.UserID, Role: user.RoleName}
}

func (h *Handler) handleEvaluationPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "evaluationID")
	if !ok {
		return
	}

	data, err := h.Service.EvaluationPDF(r.Context(), actorFrom(r), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="evaluation-`+strconv.FormatInt(id, 10)+`.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
