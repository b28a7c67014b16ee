package user

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/auth"
	"hrsystem/internal/domain/validate"
)

// Deliberately loose: real deliverability is the mail server's problem.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Service struct {
	Store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{Store: store}
}

func (s *Service) validateInput(ctx context.Context, in Input, excludeID int64, requirePassword bool) error {
	v := validate.New()
	if len([]rune(strings.TrimSpace(in.Username))) < MinUsernameLen {
		v.Add("username", "must be at least 3 characters")
	}
	if !emailPattern.MatchString(in.Email) {
		v.Add("email", "must be a valid email address")
	}
	if !auth.ValidRole(in.Role) {
		v.Add("role", "must be one of ADMIN, MANAGER, EMPLOYEE")
	}
	if requirePassword && len(in.Password) < MinPasswordLen {
		v.Add("password", "must be at least 8 characters")
	}
	if v.HasIssues() {
		return v.Err()
	}

	taken, err := s.Store.UsernameTaken(ctx, in.Username, excludeID)
	if err != nil {
		return err
	}
	if taken {
		v.Add("username", "is already taken")
	}
	taken, err = s.Store.EmailTaken(ctx, in.Email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		v.Add("email", "is already in use")
	}
	return v.Err()
}

func (s *Service) Create(ctx context.Context, actor access.Actor, in Input) (User, error) {
	if !access.CanManageUsers(actor) {
		return User{}, access.ErrDenied
	}
	if err := s.validateInput(ctx, in, 0, true); err != nil {
		return User{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	created, err := s.Store.Create(ctx, in, hash)
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Register is the self-signup path: no acting admin, role fixed to EMPLOYEE.
func (s *Service) Register(ctx context.Context, in Input) (User, error) {
	in.Role = auth.RoleEmployee
	if err := s.validateInput(ctx, in, 0, true); err != nil {
		return User{}, err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	created, err := s.Store.Create(ctx, in, hash)
	if err != nil {
		return User{}, fmt.Errorf("register user: %w", err)
	}
	return created, nil
}

// Update rewrites the admin-controlled fields. A non-empty password resets
// the credential as well.
func (s *Service) Update(ctx context.Context, actor access.Actor, id int64, in Input) (User, error) {
	if !access.CanManageUsers(actor) {
		return User{}, access.ErrDenied
	}
	if _, err := s.Store.Get(ctx, id); err != nil {
		return User{}, err
	}
	if err := s.validateInput(ctx, in, id, false); err != nil {
		return User{}, err
	}

	if in.Password != "" {
		if len(in.Password) < MinPasswordLen {
			v := validate.New()
			v.Add("password", "must be at least 8 characters")
			return User{}, v.Err()
		}
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return User{}, fmt.Errorf("hash password: %w", err)
		}
		if err := s.Store.UpdatePassword(ctx, id, hash); err != nil {
			return User{}, fmt.Errorf("update password: %w", err)
		}
	}

	updated, err := s.Store.Update(ctx, id, in)
	if err != nil {
		return User{}, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, actor access.Actor, id int64) error {
	if !access.CanManageUsers(actor) {
		return access.ErrDenied
	}
	if actor.UserID == id {
		v := validate.New()
		v.Add("id", "cannot delete your own account")
		return v.Err()
	}
	return s.Store.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, actor access.Actor, id int64) (User, error) {
	if !access.CanViewUser(actor, id) {
		return User{}, access.ErrDenied
	}
	return s.Store.Get(ctx, id)
}

// ListFor returns the directory to admins and managers. Employees get a
// single-entry listing with their own record.
func (s *Service) ListFor(ctx context.Context, actor access.Actor) ([]User, error) {
	if actor.IsAdmin() || actor.IsManager() {
		return s.Store.ListAll(ctx)
	}
	self, err := s.Store.Get(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return []User{self}, nil
}

func (s *Service) UpdateOwnProfile(ctx context.Context, actor access.Actor, in ProfileInput) (User, error) {
	if !access.CanUpdateOwnProfile(actor, actor.UserID) {
		return User{}, access.ErrDenied
	}

	v := validate.New()
	if !emailPattern.MatchString(in.Email) {
		v.Add("email", "must be a valid email address")
	}
	if v.HasIssues() {
		return User{}, v.Err()
	}
	taken, err := s.Store.EmailTaken(ctx, in.Email, actor.UserID)
	if err != nil {
		return User{}, err
	}
	if taken {
		v.Add("email", "is already in use")
		return User{}, v.Err()
	}

	updated, err := s.Store.UpdateProfile(ctx, actor.UserID, in)
	if err != nil {
		return User{}, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

// ChangePassword re-verifies the current password before writing the new
// hash.
func (s *Service) ChangePassword(ctx context.Context, actor access.Actor, oldPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLen {
		v := validate.New()
		v.Add("newPassword", "must be at least 8 characters")
		return v.Err()
	}

	hash, err := s.Store.PasswordHash(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if auth.CheckPassword(hash, oldPassword) != nil {
		v := validate.New()
		v.Add("oldPassword", "is incorrect")
		return v.Err()
	}

	newHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.Store.UpdatePassword(ctx, actor.UserID, newHash)
}
