package feedback

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const selectColumns = `
    SELECT f.feedback_id, f.evaluation_id, f.feedback_text, f.created_at,
           u.user_id, u.username, u.first_name, u.last_name,
           m.user_id, m.username, m.first_name, m.last_name
    FROM feedback f
    JOIN evaluations e ON f.evaluation_id = e.evaluation_id
    JOIN users u ON e.user_id = u.user_id
    JOIN users m ON e.manager_id = m.user_id
`

func scanFeedback(row pgx.Row) (Feedback, error) {
	var out Feedback
	err := row.Scan(
		&out.FeedbackID, &out.EvaluationID, &out.Text, &out.CreatedAt,
		&out.Subject.ID, &out.Subject.Username, &out.Subject.FirstName, &out.Subject.LastName,
		&out.Manager.ID, &out.Manager.Username, &out.Manager.FirstName, &out.Manager.LastName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Feedback{}, ErrNotFound
	}
	return out, err
}

func (s *Store) queryMany(ctx context.Context, query string, args ...any) ([]Feedback, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feedbacks []Feedback
	for rows.Next() {
		out, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, out)
	}
	return feedbacks, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Feedback, error) {
	return scanFeedback(s.DB.QueryRow(ctx, selectColumns+" WHERE f.feedback_id = $1", id))
}

func (s *Store) ListAll(ctx context.Context) ([]Feedback, error) {
	return s.queryMany(ctx, selectColumns+" ORDER BY f.created_at DESC")
}

func (s *Store) ListByEvaluation(ctx context.Context, evaluationID int64) ([]Feedback, error) {
	return s.queryMany(ctx, selectColumns+" WHERE f.evaluation_id = $1 ORDER BY f.created_at DESC", evaluationID)
}

func (s *Store) ListBySubject(ctx context.Context, userID int64) ([]Feedback, error) {
	return s.queryMany(ctx, selectColumns+" WHERE e.user_id = $1 ORDER BY f.created_at DESC", userID)
}

func (s *Store) ListByManager(ctx context.Context, managerID int64) ([]Feedback, error) {
	return s.queryMany(ctx, selectColumns+" WHERE e.manager_id = $1 ORDER BY f.created_at DESC", managerID)
}

func (s *Store) ExistsForEvaluation(ctx context.Context, evaluationID int64) (bool, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM feedback WHERE evaluation_id = $1", evaluationID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) EvaluationParties(ctx context.Context, evaluationID int64) (int64, int64, error) {
	var subjectID, managerID int64
	err := s.DB.QueryRow(ctx, "SELECT user_id, manager_id FROM evaluations WHERE evaluation_id = $1", evaluationID).Scan(&subjectID, &managerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, 0, ErrEvaluationNotFound
	}
	if err != nil {
		return 0, 0, err
	}
	return subjectID, managerID, nil
}

func (s *Store) Create(ctx context.Context, evaluationID int64, text string) (Feedback, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO feedback (evaluation_id, feedback_text, created_at)
    VALUES ($1,$2,now())
    RETURNING feedback_id
  `, evaluationID, text).Scan(&id)
	if err != nil {
		return Feedback{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) Update(ctx context.Context, id int64, text string) (Feedback, error) {
	tag, err := s.DB.Exec(ctx, "UPDATE feedback SET feedback_text = $1 WHERE feedback_id = $2", text, id)
	if err != nil {
		return Feedback{}, err
	}
	if tag.RowsAffected() == 0 {
		return Feedback{}, ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM feedback WHERE feedback_id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
