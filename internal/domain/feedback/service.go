package feedback

import (
	"context"
	"fmt"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/validate"
)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func validateText(text string) error {
	v := validate.New()
	v.Required("feedbackText", text, "feedback text is required")
	v.MaxLen("feedbackText", text, MaxTextLen, "must be at most 1000 characters")
	return v.Err()
}

// Create files the subject's response to an evaluation. One feedback per
// evaluation: the uniqueness check here is backed by a DB unique index, so a
// concurrent duplicate fails on insert as well.
func (s *Service) Create(ctx context.Context, actor access.Actor, evaluationID int64, text string) (Feedback, error) {
	subjectID, _, err := s.Store.EvaluationParties(ctx, evaluationID)
	if err != nil {
		return Feedback{}, err
	}
	if !access.CanCreateFeedback(actor, subjectID) {
		return Feedback{}, access.ErrDenied
	}
	if err := validateText(text); err != nil {
		return Feedback{}, err
	}

	exists, err := s.Store.ExistsForEvaluation(ctx, evaluationID)
	if err != nil {
		return Feedback{}, err
	}
	if exists {
		v := validate.New()
		v.Add("evaluationId", "feedback has already been submitted for this evaluation")
		return Feedback{}, v.Err()
	}

	created, err := s.Store.Create(ctx, evaluationID, text)
	if err != nil {
		return Feedback{}, fmt.Errorf("create feedback: %w", err)
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, actor access.Actor, id int64, text string) (Feedback, error) {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return Feedback{}, err
	}
	if !access.CanEditFeedback(actor, current.Subject.ID) {
		return Feedback{}, access.ErrDenied
	}
	if err := validateText(text); err != nil {
		return Feedback{}, err
	}

	updated, err := s.Store.Update(ctx, id, text)
	if err != nil {
		return Feedback{}, fmt.Errorf("update feedback: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, actor access.Actor, id int64) error {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanDeleteFeedback(actor, current.Subject.ID, current.Manager.ID) {
		return access.ErrDenied
	}
	return s.Store.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, actor access.Actor, id int64) (Feedback, error) {
	out, err := s.Store.Get(ctx, id)
	if err != nil {
		return Feedback{}, err
	}
	if !access.CanViewFeedback(actor, out.Subject.ID, out.Manager.ID) {
		return Feedback{}, access.ErrDenied
	}
	return out, nil
}

// ListFor scopes the feedback listing: admins everything, managers the
// feedback on evaluations they authored, employees feedback on their own
// evaluations.
func (s *Service) ListFor(ctx context.Context, actor access.Actor) ([]Feedback, error) {
	switch {
	case actor.IsAdmin():
		return s.Store.ListAll(ctx)
	case actor.IsManager():
		return s.Store.ListByManager(ctx, actor.UserID)
	default:
		return s.Store.ListBySubject(ctx, actor.UserID)
	}
}

func (s *Service) ListForEvaluation(ctx context.Context, actor access.Actor, evaluationID int64) ([]Feedback, error) {
	subjectID, managerID, err := s.Store.EvaluationParties(ctx, evaluationID)
	if err != nil {
		return nil, err
	}
	if !access.CanViewFeedback(actor, subjectID, managerID) {
		return nil, access.ErrDenied
	}
	return s.Store.ListByEvaluation(ctx, evaluationID)
}
