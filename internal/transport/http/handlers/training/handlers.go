package traininghandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/training"
	"hrsystem/internal/platform/requestctx"
	"hrsystem/internal/transport/http/api"
	"hrsystem/internal/transport/http/middleware"
	"hrsystem/internal/transport/http/shared"
)

type Handler struct {
	Service *training.Service
}

func NewHandler(service *training.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/training-requests", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{requestID}", h.handleGet)
		r.Delete("/{requestID}", h.handleDelete)
		r.Post("/{requestID}/approve", h.handleApprove)
		r.Post("/{requestID}/deny", h.handleDeny)
	})
}

func actorFrom(r *http.Request) access.Actor {
	user, _ := middleware.GetUser(r.Context())
	return access.Actor{UserID: user.UserID, Role: user.RoleName}
}

type trainingRequest struct {
	CourseName string `json:"courseName"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	if status := r.URL.Query().Get("status"); status != "" {
		items, err := h.Service.ListByStatus(r.Context(), actor, status)
		if err != nil {
			shared.WriteError(w, r, err)
			return
		}
		api.Success(w, items, requestctx.GetRequestID(r.Context()))
		return
	}
	items, err := h.Service.ListFor(r.Context(), actor)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, items, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "requestID")
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
	var payload trainingRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	created, err := h.Service.Create(r.Context(), actorFrom(r), payload.CourseName)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "requestID")
	if !ok {
		return
	}
	if err := h.Service.Remove(r.Context(), actorFrom(r), id); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "requestID")
	if !ok {
		return
	}
	out, err := h.Service.Approve(r.Context(), actorFrom(r), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, out, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDeny(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "requestID")
	if !ok {
		return
	}
	out, err := h.Service.Deny(r.Context(), actorFrom(r), id)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, out, requestctx.GetRequestID(r.Context()))
}
