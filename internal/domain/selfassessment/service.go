package selfassessment

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

func validateInput(skillName string, level int) error {
	v := validate.New()
	v.Required("skillName", skillName, "skill name is required")
	v.MaxLen("skillName", skillName, MaxSkillNameLen, "must be at most 100 characters")
	v.Range("level", float64(level), MinLevel, MaxLevel, "must be between 1 and 10")
	return v.Err()
}

// Create records a skill for the actor. Skill names are unique per user
// regardless of case; the check is backed by a DB unique index.
func (s *Service) Create(ctx context.Context, actor access.Actor, skillName string, level int) (Assessment, error) {
	if !access.CanCreateSelfAssessment(actor, actor.UserID) {
		return Assessment{}, access.ErrDenied
	}
	if err := validateInput(skillName, level); err != nil {
		return Assessment{}, err
	}

	dup, err := s.Store.HasSkill(ctx, actor.UserID, skillName)
	if err != nil {
		return Assessment{}, err
	}
	if dup {
		v := validate.New()
		v.Add("skillName", "this skill has already been assessed")
		return Assessment{}, v.Err()
	}

	created, err := s.Store.Create(ctx, actor.UserID, skillName, level)
	if err != nil {
		return Assessment{}, fmt.Errorf("create self-assessment: %w", err)
	}
	return created, nil
}

func (s *Service) Delete(ctx context.Context, actor access.Actor, id int64) error {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanDeleteSelfAssessment(actor, current.User.ID) {
		return access.ErrDenied
	}
	return s.Store.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, actor access.Actor, id int64) (Assessment, error) {
	out, err := s.Store.Get(ctx, id)
	if err != nil {
		return Assessment{}, err
	}
	if !access.CanViewSelfAssessment(actor, out.User.ID) {
		return Assessment{}, access.ErrDenied
	}
	return out, nil
}

// ListFor returns everyone's assessments to admins and managers, own only to
// employees.
func (s *Service) ListFor(ctx context.Context, actor access.Actor) ([]Assessment, error) {
	if actor.IsAdmin() || actor.IsManager() {
		return s.Store.ListAll(ctx)
	}
	return s.Store.ListByUser(ctx, actor.UserID)
}

func (s *Service) ListForUser(ctx context.Context, actor access.Actor, userID int64) ([]Assessment, error) {
	if !access.CanViewSelfAssessment(actor, userID) {
		return nil, access.ErrDenied
	}
	return s.Store.ListByUser(ctx, userID)
}
