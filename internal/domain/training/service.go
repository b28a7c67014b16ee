package training

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

func validateCourseName(courseName string) error {
	v := validate.New()
	v.Required("courseName", courseName, "course name is required")
	v.MaxLen("courseName", courseName, MaxCourseNameLen, "must be at most 50 characters")
	return v.Err()
}

// Create files a PENDING request for the actor. The pending cap and the
// case-insensitive duplicate check are re-run here even though the store
// enforces both with indexes, so the caller gets a field-level error instead
// of a constraint violation.
func (s *Service) Create(ctx context.Context, actor access.Actor, courseName string) (Request, error) {
	if !access.CanCreateTrainingRequest(actor, actor.UserID) {
		return Request{}, access.ErrDenied
	}
	if err := validateCourseName(courseName); err != nil {
		return Request{}, err
	}

	pending, err := s.Store.CountPending(ctx, actor.UserID)
	if err != nil {
		return Request{}, err
	}
	if pending >= MaxPendingPerUser {
		v := validate.New()
		v.Add("courseName", "no more than 2 pending requests are allowed")
		return Request{}, v.Err()
	}

	dup, err := s.Store.HasCourse(ctx, actor.UserID, courseName)
	if err != nil {
		return Request{}, err
	}
	if dup {
		v := validate.New()
		v.Add("courseName", "a request for this course already exists")
		return Request{}, v.Err()
	}

	created, err := s.Store.Create(ctx, actor.UserID, courseName)
	if err != nil {
		return Request{}, fmt.Errorf("create training request: %w", err)
	}
	return created, nil
}

func (s *Service) Approve(ctx context.Context, actor access.Actor, id int64) (Request, error) {
	return s.decide(ctx, actor, id, access.StatusApproved)
}

func (s *Service) Deny(ctx context.Context, actor access.Actor, id int64) (Request, error) {
	return s.decide(ctx, actor, id, access.StatusDenied)
}

func (s *Service) decide(ctx context.Context, actor access.Actor, id int64, status string) (Request, error) {
	if !access.CanDecideTrainingRequest(actor) {
		return Request{}, access.ErrDenied
	}
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return Request{}, err
	}
	if current.Status != access.StatusPending {
		return Request{}, ErrNotPending
	}
	if err := s.Store.UpdateStatus(ctx, id, status); err != nil {
		return Request{}, fmt.Errorf("decide training request: %w", err)
	}
	current.Status = status
	return current, nil
}

// Cancel lets the owner withdraw a request that has not been decided yet. A
// cancelled request is removed rather than kept in a terminal state.
func (s *Service) Cancel(ctx context.Context, actor access.Actor, id int64) error {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanCancelTrainingRequest(actor, current.User.ID, current.Status) {
		if current.User.ID == actor.UserID && current.Status != access.StatusPending {
			return ErrNotPending
		}
		return access.ErrDenied
	}
	return s.Store.Delete(ctx, id)
}

// Delete removes a decided request from the history. PENDING requests are
// never hard-deleted through this path.
func (s *Service) Delete(ctx context.Context, actor access.Actor, id int64) error {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanDeleteTrainingRequest(actor, current.User.ID, current.Status) {
		return access.ErrDenied
	}
	return s.Store.Delete(ctx, id)
}

// Remove dispatches a DELETE: the owner's cancel while the request is still
// PENDING, the hard-delete matrix otherwise.
func (s *Service) Remove(ctx context.Context, actor access.Actor, id int64) error {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.Status == access.StatusPending {
		return s.Cancel(ctx, actor, id)
	}
	return s.Delete(ctx, actor, id)
}

func (s *Service) Get(ctx context.Context, actor access.Actor, id int64) (Request, error) {
	out, err := s.Store.Get(ctx, id)
	if err != nil {
		return Request{}, err
	}
	if !access.CanViewTrainingRequest(actor, out.User.ID) {
		return Request{}, access.ErrDenied
	}
	return out, nil
}

// ListFor scopes listing by role: admins and managers see the review queue,
// employees only their own requests.
func (s *Service) ListFor(ctx context.Context, actor access.Actor) ([]Request, error) {
	if actor.IsAdmin() || actor.IsManager() {
		return s.Store.ListAll(ctx)
	}
	return s.Store.ListByUser(ctx, actor.UserID)
}

func (s *Service) ListByStatus(ctx context.Context, actor access.Actor, status string) ([]Request, error) {
	if !actor.IsAdmin() && !actor.IsManager() {
		return nil, access.ErrDenied
	}
	return s.Store.ListByStatus(ctx, status)
}
