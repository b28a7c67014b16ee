package selfassessment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/auth"
	"hrsystem/internal/domain/validate"
)

type fakeStore struct {
	nextID int64
	rows   map[int64]Assessment
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, rows: make(map[int64]Assessment)}
}

func (f *fakeStore) Get(_ context.Context, id int64) (Assessment, error) {
	row, ok := f.rows[id]
	if !ok {
		return Assessment{}, ErrNotFound
	}
	return row, nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]Assessment, error) {
	var out []Assessment
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID int64) ([]Assessment, error) {
	var out []Assessment
	for _, row := range f.rows {
		if row.User.ID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) HasSkill(_ context.Context, userID int64, skillName string) (bool, error) {
	for _, row := range f.rows {
		if row.User.ID == userID && strings.EqualFold(row.SkillName, skillName) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Create(_ context.Context, userID int64, skillName string, level int) (Assessment, error) {
	row := Assessment{
		AssessmentID: f.nextID,
		User:         PersonRef{ID: userID},
		SkillName:    skillName,
		Level:        level,
		CreatedAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	f.rows[f.nextID] = row
	f.nextID++
	return row, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

var (
	employee  = access.Actor{UserID: 20, Role: auth.RoleEmployee}
	employee2 = access.Actor{UserID: 21, Role: auth.RoleEmployee}
	manager   = access.Actor{UserID: 10, Role: auth.RoleManager}
	admin     = access.Actor{UserID: 1, Role: auth.RoleAdmin}
)

func TestCreate(t *testing.T) {
	svc := NewService(newFakeStore())

	created, err := svc.Create(context.Background(), employee, "Go", 7)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.User.ID != employee.UserID || created.SkillName != "Go" || created.Level != 7 {
		t.Fatalf("created = %+v", created)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	var verr *validate.Error
	if _, err := svc.Create(ctx, employee, "", 5); !errors.As(err, &verr) {
		t.Fatalf("empty skill: err = %v, want validate.Error", err)
	}
	if _, err := svc.Create(ctx, employee, strings.Repeat("a", MaxSkillNameLen+1), 5); !errors.As(err, &verr) {
		t.Fatalf("long skill: err = %v, want validate.Error", err)
	}
	if _, err := svc.Create(ctx, employee, "Go", 0); !errors.As(err, &verr) {
		t.Fatalf("level 0: err = %v, want validate.Error", err)
	}
	if _, err := svc.Create(ctx, employee, "Go", 11); !errors.As(err, &verr) {
		t.Fatalf("level 11: err = %v, want validate.Error", err)
	}

	// Empty name with an out-of-range level reports both fields.
	_, err := svc.Create(ctx, employee, "", 11)
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want validate.Error", err)
	}
	if got := len(verr.Issues()); got != 2 {
		t.Fatalf("issues = %d, want 2", got)
	}

	if _, err := svc.Create(ctx, employee, strings.Repeat("a", MaxSkillNameLen), MaxLevel); err != nil {
		t.Fatalf("at limits: %v", err)
	}
}

func TestCreateDuplicateSkillCaseInsensitive(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	if _, err := svc.Create(ctx, employee, "PostgreSQL", 6); err != nil {
		t.Fatalf("first: %v", err)
	}

	var verr *validate.Error
	if _, err := svc.Create(ctx, employee, "postgresql", 8); !errors.As(err, &verr) {
		t.Fatalf("duplicate: err = %v, want validate.Error", err)
	}

	if _, err := svc.Create(ctx, employee2, "PostgreSQL", 6); err != nil {
		t.Fatalf("other user same skill: %v", err)
	}
}

func TestDeleteOwnerOnly(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	created, _ := svc.Create(ctx, employee, "Go", 7)

	for _, actor := range []access.Actor{employee2, manager, admin} {
		if err := svc.Delete(ctx, actor, created.AssessmentID); !errors.Is(err, access.ErrDenied) {
			t.Fatalf("delete as %s: err = %v, want ErrDenied", actor.Role, err)
		}
	}

	if err := svc.Delete(ctx, employee, created.AssessmentID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if err := svc.Delete(ctx, employee, created.AssessmentID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestViewScoping(t *testing.T) {
	svc := NewService(newFakeStore())
	ctx := context.Background()

	mine, _ := svc.Create(ctx, employee, "Go", 7)
	if _, err := svc.Create(ctx, employee2, "Docker", 5); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Get(ctx, employee2, mine.AssessmentID); !errors.Is(err, access.ErrDenied) {
		t.Fatalf("get other's as employee: err = %v, want ErrDenied", err)
	}
	if _, err := svc.Get(ctx, manager, mine.AssessmentID); err != nil {
		t.Fatalf("get as manager: %v", err)
	}

	all, err := svc.ListFor(ctx, admin)
	if err != nil {
		t.Fatalf("ListFor admin: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("admin sees %d, want 2", len(all))
	}

	own, err := svc.ListFor(ctx, employee)
	if err != nil {
		t.Fatalf("ListFor employee: %v", err)
	}
	if len(own) != 1 || own[0].User.ID != employee.UserID {
		t.Fatalf("employee listing = %+v, want only own", own)
	}

	if _, err := svc.ListForUser(ctx, employee, employee2.UserID); !errors.Is(err, access.ErrDenied) {
		t.Fatalf("ListForUser other as employee: err = %v, want ErrDenied", err)
	}
}
