package feedbackhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/feedback"
	"hrsystem/internal/platform/requestctx"
	"hrsystem/internal/transport/http/api"
	"hrsystem/internal/transport/http/middleware"
	"hrsystem/internal/transport/http/shared"
)

type Handler struct {
	Service *feedback.Service
}

func NewHandler(service *feedback.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/feedback", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{feedbackID}", h.handleGet)
		r.Put("/{feedbackID}", h.handleUpdate)
		r.Delete("/{feedbackID}", h.handleDelete)
		r.Get("/evaluation/{evaluationID}", h.handleListForEvaluation)
	})
}

func actorFrom(r *http.Request) access.Actor {
	user, _ := middleware.GetUser(r.Context())
	return access.Actor{UserID: user.UserID, Role: user.RoleName}
}

type feedbackRequest struct {
	EvaluationID int64  `json:"evaluationId"`
	Text         string `json:"feedbackText"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListFor(r.Context(), actorFrom(r))
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, items, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "feedbackID")
	if !ok {
		return
	}
	out, err := h.Service.Get(r.Context(), actorFrom(r), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, out, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	created, err := h.Service.Create(r.Context(), actorFrom(r), payload.EvaluationID, payload.Text)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "feedbackID")
	if !ok {
		return
	}
	var payload feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	updated, err := h.Service.Update(r.Context(), actorFrom(r), id, payload.Text)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, updated, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "feedbackID")
	if !ok {
		return
	}
	if err := h.Service.Delete(r.Context(), actorFrom(r), id); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleListForEvaluation(w http.ResponseWriter, r *http.Request) {
	evaluationID, ok := shared.IDParam(w, r, "evaluationID")
	if !ok {
		return
	}
	items, err := h.Service.ListForEvaluation(r.Context(), actorFrom(r), evaluationID)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, items, requestctx.GetRequestID(r.Context()))
}
