package selfassessmentshandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/selfassessment"
	"hrsystem/internal/platform/requestctx"
	"hrsystem/internal/transport/http/api"
	"hrsystem/internal/transport/http/middleware"
	"hrsystem/internal/transport/http/shared"
)

type Handler struct {
	Service *selfassessment.Service
}

func NewHandler(service *selfassessment.Service) *Handler {
	return &Handler{Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/self-assessments", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{assessmentID}", h.handleGet)
		r.Delete("/{assessmentID}", h.handleDelete)
		r.Get("/user/{userID}", h.handleListForUser)
	})
}

func actorFrom(r *http.Request) access.Actor {
	user, _ := middleware.GetUser(r.Context())
	return access.Actor{UserID: user.UserID, Role: user.RoleName}
}

type assessmentRequest struct {
	SkillName string `json:"skillName"`
	Level     int    `json:"level"`
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
	id, ok := shared.IDParam(w, r, "assessmentID")
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
	var payload assessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestctx.GetRequestID(r.Context()))
		return
	}
	created, err := h.Service.Create(r.Context(), actorFrom(r), payload.SkillName, payload.Level)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Created(w, created, requestctx.GetRequestID(r.Context()))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.IDParam(w, r, "assessmentID")
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
	items, err := h.Service.ListForUser(r.Context(), actorFrom(r), userID)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}
	api.Success(w, items, requestctx.GetRequestID(r.Context()))
}
