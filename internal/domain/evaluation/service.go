package evaluation

import (
	"context"
	"fmt"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/kpi"
	"hrsystem/internal/domain/validate"
)

// Service is the evaluation lifecycle manager: validate every field,
// recompute the overall score server-side, then hand the record to storage.
type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func validateInput(in Input) (kpi.Metrics, error) {
	v := validate.New()
	if in.UserID <= 0 {
		v.Add("userId", "subject reference is required")
	}
	v.Range("kpiCompletedTasks", in.CompletedTasks, 0, 100, "must be between 0 and 100")
	v.Range("kpiFixTime", in.FixTime, 0, 100, "must be between 0 and 100")
	v.Range("kpiTestCoverage", in.TestCoverage, 0, 100, "must be between 0 and 100")
	v.Range("kpiTimeliness", in.Timeliness, 0, 100, "must be between 0 and 100")
	if err := v.Err(); err != nil {
		return kpi.Metrics{}, err
	}

	metrics := kpi.Metrics{
		CompletedTasks: in.CompletedTasks,
		FixTime:        in.FixTime,
		TestCoverage:   in.TestCoverage,
		Timeliness:     in.Timeliness,
	}
	metrics.Overall = kpi.Overall(metrics.CompletedTasks, metrics.FixTime, metrics.TestCoverage, metrics.Timeliness)
	return metrics, nil
}

// Create stores a new evaluation authored by the acting manager. Any
// client-supplied overall score is discarded and recomputed.
func (s *Service) Create(ctx context.Context, actor access.Actor, in Input) (Evaluation, error) {
	if !access.CanCreateEvaluation(actor, in.UserID) {
		return Evaluation{}, access.ErrDenied
	}

	metrics, err := validateInput(in)
	if err != nil {
		return Evaluation{}, err
	}

	created, err := s.Store.Create(ctx, in.UserID, actor.UserID, metrics, in.Comments)
	if err != nil {
		return Evaluation{}, fmt.Errorf("create evaluation: %w", err)
	}
	return created, nil
}

// Update rescores an existing evaluation. Subject and manager references are
// fixed at creation; only metrics and comments change, and the evaluation
// date is refreshed to the update time.
func (s *Service) Update(ctx context.Context, actor access.Actor, id int64, in Input) (Evaluation, error) {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return Evaluation{}, err
	}
	if !access.CanEditEvaluation(actor, current.Manager.ID) {
		return Evaluation{}, access.ErrDenied
	}

	in.UserID = current.User.ID
	metrics, err := validateInput(in)
	if err != nil {
		return Evaluation{}, err
	}

	updated, err := s.Store.Update(ctx, id, metrics, in.Comments)
	if err != nil {
		return Evaluation{}, fmt.Errorf("update evaluation: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, actor access.Actor, id int64) error {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanDeleteEvaluation(actor, current.Manager.ID) {
		return access.ErrDenied
	}
	return s.Store.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, actor access.Actor, id int64) (Evaluation, error) {
	out, err := s.Store.Get(ctx, id)
	if err != nil {
		return Evaluation{}, err
	}
	if !access.CanViewEvaluation(actor, out.User.ID, out.Manager.ID) {
		return Evaluation{}, access.ErrDenied
	}
	return out, nil
}

// ListFor scopes the listing to what the actor may see.
func (s *Service) ListFor(ctx context.Context, actor access.Actor) ([]Evaluation, error) {
	switch {
	case actor.IsAdmin():
		return s.Store.ListAll(ctx)
	case actor.IsManager():
		return s.Store.ListByManager(ctx, actor.UserID)
	default:
		return s.Store.ListBySubject(ctx, actor.UserID)
	}
}

// ListForSubject returns one user's evaluations, scoped by the actor's role:
// admins see all of them, managers the ones they authored, employees only
// their own history.
func (s *Service) ListForSubject(ctx context.Context, actor access.Actor, userID int64) ([]Evaluation, error) {
	switch {
	case actor.IsAdmin():
		return s.Store.ListBySubject(ctx, userID)
	case actor.IsManager():
		return s.Store.ListByManagerAndSubject(ctx, actor.UserID, userID)
	case actor.UserID == userID:
		return s.Store.ListBySubject(ctx, userID)
	}
	return nil, access.ErrDenied
}

// ListForManager returns the evaluations a manager authored. Admins may ask
// about any manager, a manager only about themselves.
func (s *Service) ListForManager(ctx context.Context, actor access.Actor, managerID int64) ([]Evaluation, error) {
	if !actor.IsAdmin() && !(actor.IsManager() && actor.UserID == managerID) {
		return nil, access.ErrDenied
	}
	return s.Store.ListByManager(ctx, managerID)
}

// LatestForSubject feeds the recommendation engine. The boolean reports
// whether the subject has any evaluation at all.
func (s *Service) LatestForSubject(ctx context.Context, actor access.Actor, userID int64) (Evaluation, bool, error) {
	evaluations, err := s.ListForSubject(ctx, actor, userID)
	if err != nil {
		return Evaluation{}, false, err
	}
	if len(evaluations) == 0 {
		return Evaluation{}, false, nil
	}
	latest := evaluations[0]
	for _, candidate := range evaluations[1:] {
		if candidate.EvaluationDate.After(latest.EvaluationDate) {
			latest = candidate
		}
	}
	return latest, true, nil
}

// Metrics extracts the stored sub-metrics and deriving overall for scoring
// and recommendation calls.
func Metrics(e Evaluation) kpi.Metrics {
	return kpi.Metrics{
		CompletedTasks: e.KPICompletedTasks,
		FixTime:        e.KPIFixTime,
		TestCoverage:   e.KPITestCoverage,
		Timeliness:     e.KPITimeliness,
		Overall:        e.OverallKPI,
	}
}
