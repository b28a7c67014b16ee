package evaluationshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/evaluation"
	"hrsystem/internal/platform/requestctx"
	"hrsystem/internal/transport/http/api"
	"hrsystem/internal/transport/http/middleware"
	"hrsystem/internal/transport/http/shared"
)

type Handler struct {
	Service *evaluation.Service
}

func NewHandler(service *evaluation.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/evaluations", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{evaluationID}", h.handleGet)
		r.Put("/{evaluationID}", h.handleUpdate)
		r.Delete("/{evaluationID}", h.handleDelete)
		r.Get("/user/{userID}", h.handleListForUser)
		r.Get("/manager/{managerID}", h.handleListForManager)
	})
}

func actorFrom(r *http.Request) access.Actor {
	user, _ := middleware.GetUser(r.Context())
	return access.Actor{UserID: user.UserID, Role: user.RoleName}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	evaluations, err := h.Service.ListFor(r.Context(), actorFrom(r))
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, evaluations, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "evaluationID")
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
	var payload evaluation.Input
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	created, err := h.Service.Create(r.Context(), actorFrom(r), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "evaluationID")
	if !ok {
		return
	}
	var payload evaluation.Input
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	updated, err := h.Service.Update(r.Context(), actorFrom(r), id, payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, updated, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "evaluationID")
	if !ok {
		return
	}
	if err := h.Service.Delete(r.Context(), actorFrom(r), id); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleListForUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.IDParam(w, r, "userID")
	if !ok {
		return
	}
	evaluations, err := h.Service.ListForSubject(r.Context(), actorFrom(r), userID)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, evaluations, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleListForManager(w http.ResponseWriter, r *http.Request) {
	managerID, ok := shared.IDParam(w, r, "managerID")
	if !ok {
		return
	}
	evaluations, err := h.Service.ListForManager(r.Context(), actorFrom(r), managerID)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, evaluations, requestctx.GetRequestID(r.Context()))
}
