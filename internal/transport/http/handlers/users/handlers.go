package usershandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/auth"
	"hrsystem/internal/domain/user"
	"hrsystem/internal/platform/requestctx"
	"hrsystem/internal/transport/http/api"
	"hrsystem/internal/transport/http/middleware"
	"hrsystem/internal/transport/http/shared"
)

type Handler struct {
	Service *user.Service
}

func NewHandler(service *user.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Get("/me", h.handleGetMe)
		r.Put("/me", h.handleUpdateMe)
		r.Put("/me/password", h.handleChangePassword)
		r.Get("/{userID}", h.handleGet)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Post("/", h.handleCreate)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Put("/{userID}", h.handleUpdate)
		r.With(middleware.RequireRole(auth.RoleAdmin)).Delete("/{userID}", h.handleDelete)
	})
}

func actorFrom(r *http.Request) access.Actor {
	user, _ := middleware.GetUser(r.Context())
	return access.Actor{UserID: user.UserID, Role: user.RoleName}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListFor(r.Context(), actorFrom(r))
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, users, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "userID")
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

func (h *Handler) handleGetMe(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	out, err := h.Service.Get(r.Context(), actor, actor.UserID)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, out, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload user.Input
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
	id, ok := shared.IDParam(w, r, "userID")
	if !ok {
		return
	}
	var payload user.Input
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

func (h *Handler) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	var payload user.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	updated, err := h.Service.UpdateOwnProfile(r.Context(), actorFrom(r), payload)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, updated, requestctx.GetRequestID(r.Context()))
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var payload changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	if err := h.Service.ChangePassword(r.Context(), actorFrom(r), payload.OldPassword, payload.NewPassword); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "password_changed"}, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "userID")
	if !ok {
		return
	}
	if err := h.Service.Delete(r.Context(), actorFrom(r), id); err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, requestctx.GetRequestID(r.Context()))
}
