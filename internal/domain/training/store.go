package training

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hrsystem/internal/domain/access"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const selectColumns = `
    SELECT t.request_id, t.course_name, t.status, t.submitted_at,
           u.user_id, u.username, u.email, u.first_name, u.last_name
    FROM training_requests t
    JOIN users u ON t.user_id = u.user_id
`

func scanRequest(row pgx.Row) (Request, error) {
	var out Request
	err := row.Scan(
		&out.RequestID, &out.CourseName, &out.Status, &out.SubmittedAt,
		&out.User.ID, &out.User.Username, &out.User.Email, &out.User.FirstName, &out.User.LastName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Request{}, ErrNotFound
	}
	return out, err
}

func (s *Store) queryMany(ctx context.Context, query string, args ...any) ([]Request, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []Request
	for rows.Next() {
		out, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, out)
	}
	return requests, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Request, error) {
	return scanRequest(s.DB.QueryRow(ctx, selectColumns+" WHERE t.request_id = $1", id))
}

func (s *Store) ListAll(ctx context.Context) ([]Request, error) {
	return s.queryMany(ctx, selectColumns+" ORDER BY t.submitted_at DESC")
}

func (s *Store) ListByUser(ctx context.Context, userID int64) ([]Request, error) {
	return s.queryMany(ctx, selectColumns+" WHERE t.user_id = $1 ORDER BY t.submitted_at DESC", userID)
}

func (s *Store) ListByStatus(ctx context.Context, status string) ([]Request, error) {
	return s.queryMany(ctx, selectColumns+" WHERE t.status = $1 ORDER BY t.submitted_at DESC", status)
}

func (s *Store) CountPending(ctx context.Context, userID int64) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM training_requests WHERE user_id = $1 AND status = $2", userID, access.StatusPending).Scan(&count)
	return count, err
}

func (s *Store) HasCourse(ctx context.Context, userID int64, courseName string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM training_requests WHERE user_id = $1 AND lower(course_name) = lower($2)", userID, courseName).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Create(ctx context.Context, userID int64, courseName string) (Request, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO training_requests (user_id, course_name, status, submitted_at)
    VALUES ($1,$2,$3,now())
    RETURNING request_id
  `, userID, courseName, access.StatusPending).Scan(&id)
	if err != nil {
		return Request{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE training_requests SET status = $1 WHERE request_id = $2", status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM training_requests WHERE request_id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
