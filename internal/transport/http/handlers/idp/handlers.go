package idphandler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/evaluation"
	"hrsystem/internal/domain/kpi"
	"hrsystem/internal/platform/requestctx"
	"hrsystem/internal/transport/http/api"
	"hrsystem/internal/transport/http/middleware"
	"hrsystem/internal/transport/http/shared"
)

// Handler serves the individual development plan: course recommendations
// derived from a user's most recent evaluation.
type Handler struct {
	Evaluations *evaluation.Service
}

func NewHandler(evaluations *evaluation.Service) *Handler {
	return &Handler{Evaluations: evaluations}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/idp", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/recommendations/{userID}", h.handleRecommendations)
	})
}

func actorFrom(r *http.Request) access.Actor {
	user, _ := middleware.GetUser(r.Context())
	return access.Actor{UserID: user.UserID, Role: user.RoleName}
}

type recommendationsResponse struct {
	UserID          int64                `json:"userId"`
	OverallKPI      float64              `json:"overallKpi"`
	Tier            string               `json:"tier"`
	TierLabel       string               `json:"tierLabel"`
	Recommendations []kpi.Recommendation `json:"recommendations"`
}

func (h *Handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := shared.IDParam(w, r, "userID")
	if !ok {
		return
	}

	latest, found, err := h.Evaluations.LatestForSubject(r.Context(), actorFrom(r), userID)
	if err != nil {
		shared.WriteError(w, r, err)
		return
	}

	// No evaluation yet: the zero score classifies as unknown and yields no
	// recommendations, matching a never-scored employee.
	response := recommendationsResponse{
		UserID:          userID,
		Recommendations: []kpi.Recommendation{},
	}
	if found {
		metrics := evaluation.Metrics(latest)
		response.OverallKPI = metrics.Overall
		if recs := kpi.Recommend(metrics); recs != nil {
			response.Recommendations = recs
		}
	}
	level := kpi.Classify(response.OverallKPI)
	response.Tier = string(level.Tier)
	response.TierLabel = level.Label

	api.Success(w, response, requestctx.GetRequestID(r.Context()))
}
