package evaluation

import (
	"context"
	"errors"
	"testing"
	"time"

	"hrsystem/internal/domain/access"
	"hrsystem/internal/domain/auth"
	"hrsystem/internal/domain/kpi"
	"hrsystem/internal/domain/validate"
)

type fakeStore struct {
	nextID  int64
	rows    map[int64]Evaluation
	nowTick time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, rows: make(map[int64]Evaluation)}
}

func (f *fakeStore) now() time.Time {
	f.nowTick += time.Second
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Add(f.nowTick)
}

func (f *fakeStore) Get(_ context.Context, id int64) (Evaluation, error) {
	row, ok := f.rows[id]
	if !ok {
		return Evaluation{}, ErrNotFound
	}
	return row, nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]Evaluation, error) {
	var out []Evaluation
	for _, row := range f.rows {
		out = append(out, row)
	}
	return out, nil
}

func (f *fakeStore) ListBySubject(_ context.Context, userID int64) ([]Evaluation, error) {
	var out []Evaluation
	for _, row := range f.rows {
		if row.User.ID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByManager(_ context.Context, managerID int64) ([]Evaluation, error) {
	var out []Evaluation
	for _, row := range f.rows {
		if row.Manager.ID == managerID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) ListByManagerAndSubject(_ context.Context, managerID, userID int64) ([]Evaluation, error) {
	var out []Evaluation
	for _, row := range f.rows {
		if row.Manager.ID == managerID && row.User.ID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeStore) Create(_ context.Context, userID, managerID int64, metrics kpi.Metrics, comments string) (Evaluation, error) {
	row := Evaluation{
		EvaluationID:      f.nextID,
		User:              UserRef{ID: userID},
		Manager:           UserRef{ID: managerID},
		KPICompletedTasks: metrics.CompletedTasks,
		KPIFixTime:        metrics.FixTime,
		KPITestCoverage:   metrics.TestCoverage,
		KPITimeliness:     metrics.Timeliness,
		OverallKPI:        metrics.Overall,
		Comments:          comments,
		EvaluationDate:    f.now(),
	}
	f.rows[f.nextID] = row
	f.nextID++
	return row, nil
}

func (f *fakeStore) Update(_ context.Context, id int64, metrics kpi.Metrics, comments string) (Evaluation, error) {
	row, ok := f.rows[id]
	if !ok {
		return Evaluation{}, ErrNotFound
	}
	row.KPICompletedTasks = metrics.CompletedTasks
	row.KPIFixTime = metrics.FixTime
	row.KPITestCoverage = metrics.TestCoverage
	row.KPITimeliness = metrics.Timeliness
	row.OverallKPI = metrics.Overall
	row.Comments = comments
	row.EvaluationDate = f.now()
	f.rows[id] = row
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
	testManager  = access.Actor{UserID: 10, Role: auth.RoleManager}
	testManager2 = access.Actor{UserID: 11, Role: auth.RoleManager}
	testEmployee = access.Actor{UserID: 20, Role: auth.RoleEmployee}
	testAdmin    = access.Actor{UserID: 1, Role: auth.RoleAdmin}
)

func TestCreateComputesOverall(t *testing.T) {
	svc := NewService(newFakeStore())

	created, err := svc.Create(context.Background(), testManager, Input{
		UserID:         testEmployee.UserID,
		CompletedTasks: 60,
		FixTime:        55,
		TestCoverage:   40,
		Timeliness:     70,
		Comments:       "mid-year review",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.OverallKPI != 57.00 {
		t.Fatalf("expected overall 57.00, got %v", created.OverallKPI)
	}
	if created.Manager.ID != testManager.UserID {
		t.Fatalf("manager must be the acting user, got %d", created.Manager.ID)
	}
	if created.EvaluationID == 0 || created.EvaluationDate.IsZero() {
		t.Fatalf("expected server-assigned id and timestamp: %+v", created)
	}
}

func TestCreateDeniedForNonManagers(t *testing.T) {
	svc := NewService(newFakeStore())
	in := Input{UserID: testEmployee.UserID, CompletedTasks: 50, FixTime: 50, TestCoverage: 50, Timeliness: 50}

	if _, err := svc.Create(context.Background(), testAdmin, in); !errors.Is(err, access.ErrDenied) {
		t.Fatalf("expected denial for admin, got %v", err)
	}
	if _, err := svc.Create(context.Background(), testEmployee, in); !errors.Is(err, access.ErrDenied) {
		t.Fatalf("expected denial for employee, got %v", err)
	}

	in.UserID = testManager.UserID
	if _, err := svc.Create(context.Background(), testManager, in); !errors.Is(err, access.ErrDenied) {
		t.Fatalf("expected denial for self-evaluation, got %v", err)
	}
}

func TestCreateReportsAllViolations(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.Create(context.Background(), testManager, Input{
		UserID:         testEmployee.UserID,
		CompletedTasks: 120,
		FixTime:        -3,
		TestCoverage:   50,
		Timeliness:     101,
	})
	var verr *validate.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(verr.Issues()) != 3 {
		t.Fatalf("expected 3 violations, got %+v", verr.Issues())
	}
}

func TestUpdateRecomputesAndIgnoresForgedScore(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	created, err := svc.Create(context.Background(), testManager, Input{
		UserID: testEmployee.UserID, CompletedTasks: 80, FixTime: 50, TestCoverage: 90, Timeliness: 70,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.OverallKPI != 74.00 {
		t.Fatalf("expected 74.00, got %v", created.OverallKPI)
	}

	// Unchanged sub-metrics: the recomputed score must not drift.
	updated, err := svc.Update(context.Background(), testManager, created.EvaluationID, Input{
		CompletedTasks: 80, FixTime: 50, TestCoverage: 90, Timeliness: 70,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.OverallKPI != 74.00 {
		t.Fatalf("idempotent recompute violated: %v", updated.OverallKPI)
	}
	if !updated.EvaluationDate.After(created.EvaluationDate) {
		t.Fatal("update must refresh the evaluation date")
	}
}

func TestUpdateDeniedForOtherManager(t *testing.T) {
	svc := NewService(newFakeStore())

	created, err := svc.Create(context.Background(), testManager, Input{
		UserID: testEmployee.UserID, CompletedTasks: 50, FixTime: 50, TestCoverage: 50, Timeliness: 50,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	in := Input{CompletedTasks: 60, FixTime: 60, TestCoverage: 60, Timeliness: 60}
	if _, err := svc.Update(context.Background(), testManager2, created.EvaluationID, in); !errors.Is(err, access.ErrDenied) {
		t.Fatalf("expected denial for other manager, got %v", err)
	}
	if _, err := svc.Update(context.Background(), testEmployee, created.EvaluationID, in); !errors.Is(err, access.ErrDenied) {
		t.Fatalf("expected denial for subject, got %v", err)
	}
	if err := svc.Delete(context.Background(), testAdmin, created.EvaluationID); !errors.Is(err, access.ErrDenied) {
		t.Fatalf("admins are view-only, got %v", err)
	}
}

func TestGetViewScoping(t *testing.T) {
	svc := NewService(newFakeStore())

	created, err := svc.Create(context.Background(), testManager, Input{
		UserID: testEmployee.UserID, CompletedTasks: 50, FixTime: 50, TestCoverage: 50, Timeliness: 50,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	for _, actor := range []access.Actor{testAdmin, testManager, testEmployee} {
		if _, err := svc.Get(context.Background(), actor, created.EvaluationID); err != nil {
			t.Fatalf("%s should view the evaluation: %v", actor.Role, err)
		}
	}
	if _, err := svc.Get(context.Background(), testManager2, created.EvaluationID); !errors.Is(err, access.ErrDenied) {
		t.Fatalf("other manager must not view, got %v", err)
	}
}

func TestLatestForSubject(t *testing.T) {
	svc := NewService(newFakeStore())

	if _, found, err := svc.LatestForSubject(context.Background(), testManager, testEmployee.UserID); err != nil || found {
		t.Fatalf("expected no evaluations, found=%v err=%v", found, err)
	}

	if _, err := svc.Create(context.Background(), testManager, Input{
		UserID: testEmployee.UserID, CompletedTasks: 40, FixTime: 40, TestCoverage: 40, Timeliness: 40,
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(context.Background(), testManager, Input{
		UserID: testEmployee.UserID, CompletedTasks: 90, FixTime: 90, TestCoverage: 90, Timeliness: 90,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	latest, found, err := svc.LatestForSubject(context.Background(), testManager, testEmployee.UserID)
	if err != nil || !found {
		t.Fatalf("expected latest, found=%v err=%v", found, err)
	}
	if latest.EvaluationID != second.EvaluationID {
		t.Fatalf("expected most recent evaluation, got %d", latest.EvaluationID)
	}
}
