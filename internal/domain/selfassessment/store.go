package selfassessment

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
    SELECT a.assessment_id, a.skill_name, a.skill_level, a.created_at,
           u.user_id, u.username, u.email, u.first_name, u.last_name
    FROM self_assessments a
    JOIN users u ON a.user_id = u.user_id
`

func scanAssessment(row pgx.Row) (Assessment, error) {
	var out Assessment
	err := row.Scan(
		&out.AssessmentID, &out.SkillName, &out.Level, &out.CreatedAt,
		&out.User.ID, &out.User.Username, &out.User.Email, &out.User.FirstName, &out.User.LastName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Assessment{}, ErrNotFound
	}
	return out, err
}

func (s *Store) queryMany(ctx context.Context, query string, args ...any) ([]Assessment, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []Assessment
	for rows.Next() {
		out, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, out)
	}
	return assessments, rows.Err()
}

func (s *Store) Get(ctx context.Context, id int64) (Assessment, error) {
	return scanAssessment(s.DB.QueryRow(ctx, selectColumns+" WHERE a.assessment_id = $1", id))
}

func (s *Store) ListAll(ctx context.Context) ([]Assessment, error) {
	return s.queryMany(ctx, selectColumns+" ORDER BY u.username, lower(a.skill_name)")
}

func (s *Store) ListByUser(ctx context.Context, userID int64) ([]Assessment, error) {
	return s.queryMany(ctx, selectColumns+" WHERE a.user_id = $1 ORDER BY lower(a.skill_name)", userID)
}

func (s *Store) HasSkill(ctx context.Context, userID int64, skillName string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM self_assessments WHERE user_id = $1 AND lower(skill_name) = lower($2)", userID, skillName).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Create(ctx context.Context, userID int64, skillName string, level int) (Assessment, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO self_assessments (user_id, skill_name, skill_level, created_at)
    VALUES ($1,$2,$3,now())
    RETURNING assessment_id
  `, userID, skillName, level).Scan(&id)
	if err != nil {
		return Assessment{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM self_assessments WHERE assessment_id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
