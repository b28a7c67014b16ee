package evaluation

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrsystem/internal/domain/kpi"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const selectColumns = `
    SELECT e.evaluation_id,
           e.kpi_completed_tasks, e.kpi_fix_time, e.kpi_test_coverage, e.kpi_timeliness,
           e.overall_kpi, COALESCE(e.comments, ''), e.evaluation_date,
           u.user_id, u.username, u.email, u.first_name, u.last_name,
           m.user_id, m.username, m.email, m.first_name, m.last_name
    FROM evaluations e
    JOIN users u ON e.user_id = u.user_id
    JOIN users m ON e.manager_id = m.user_id
`

func scanEvaluation(row pgx.Row) (Evaluation, error) {
	var out Evaluation
	err := row.Scan(
		&out.EvaluationID,
		&out.KPICompletedTasks, &out.KPIFixTime, &out.KPITestCoverage, &out.KPITimeliness,
		&out.OverallKPI, &out.Comments, &out.EvaluationDate,
		&out.User.ID, &out.User.Username, &out.User.Email, &out.User.FirstName, &out.User.LastName,
		&out.Manager.ID, &out.Manager.Username, &out.Manager.Email, &out.Manager.FirstName, &out.Manager.LastName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Evaluation{}, ErrNotFound
	}
	return out, err
}

func (s *Store) queryMany(ctx context.Context, query string, args ...any) ([]Evaluation, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evaluations []Evaluation
	for rows.Next() {
		out, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, out)
	}
	return evaluations, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Evaluation, error) {
	return scanEvaluation(s.DB.QueryRow(ctx, selectColumns+" WHERE e.evaluation_id = $1", id))
}

func (s *Store) ListAll(ctx context.Context) ([]Evaluation, error) {
	return s.queryMany(ctx, selectColumns+" ORDER BY e.evaluation_date DESC")
}

func (s *Store) ListBySubject(ctx context.Context, userID int64) ([]Evaluation, error) {
	return s.queryMany(ctx, selectColumns+" WHERE e.user_id = $1 ORDER BY e.evaluation_date DESC", userID)
}

func (s *Store) ListByManager(ctx context.Context, managerID int64) ([]Evaluation, error) {
	return s.queryMany(ctx, selectColumns+" WHERE e.manager_id = $1 ORDER BY e.evaluation_date DESC", managerID)
}

func (s *Store) ListByManagerAndSubject(ctx context.Context, managerID, userID int64) ([]Evaluation, error) {
	return s.queryMany(ctx, selectColumns+" WHERE e.manager_id = $1 AND e.user_id = $2 ORDER BY e.evaluation_date DESC", managerID, userID)
}

func (s *Store) Create(ctx context.Context, userID, managerID int64, metrics kpi.Metrics, comments string) (Evaluation, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO evaluations
      (user_id, manager_id, kpi_completed_tasks, kpi_fix_time, kpi_test_coverage, kpi_timeliness, overall_kpi, comments, evaluation_date)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now())
    RETURNING evaluation_id
  `, userID, managerID, metrics.CompletedTasks, metrics.FixTime, metrics.TestCoverage, metrics.Timeliness, metrics.Overall, comments).Scan(&id)
	if err != nil {
		return Evaluation{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) Update(ctx context.Context, id int64, metrics kpi.Metrics, comments string) (Evaluation, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE evaluations
    SET kpi_completed_tasks = $1, kpi_fix_time = $2, kpi_test_coverage = $3, kpi_timeliness = $4,
        overall_kpi = $5, comments = $6, evaluation_date = now()
    WHERE evaluation_id = $7
  `, metrics.CompletedTasks, metrics.FixTime, metrics.TestCoverage, metrics.Timeliness, metrics.Overall, comments, id)
	if err != nil {
		return Evaluation{}, err
	}
	if tag.RowsAffected() == 0 {
		return Evaluation{}, ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM evaluations WHERE evaluation_id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
