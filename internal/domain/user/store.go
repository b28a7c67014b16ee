package user

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
    SELECT u.user_id, u.username, u.email, u.first_name, u.last_name,
           r.role_name, u.created_at, u.last_login
    FROM users u
    JOIN roles r ON u.role_id = r.role_id
`

func scanUser(row pgx.Row) (User, error) {
	var out User
	err := row.Scan(
		&out.ID, &out.Username, &out.Email, &out.FirstName, &out.LastName,
		&out.Role, &out.CreatedAt, &out.LastLogin,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrNotFound
	}
	return out, err
}

func (s *Store) Get(ctx context.Context, id int64) (User, error) {
	return scanUser(s.DB.QueryRow(ctx, selectColumns+" WHERE u.user_id = $1", id))
}

func (s *Store) ListAll(ctx context.Context) ([]User, error) {
	rows, err := s.DB.Query(ctx, selectColumns+" ORDER BY u.username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		out, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, out)
	}
	return users, rows.Err()
}

func (s *Store) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE lower(username) = lower($1) AND user_id <> $2", username, excludeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE lower(email) = lower($1) AND user_id <> $2", email, excludeID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Create(ctx context.Context, in Input, passwordHash string) (User, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (username, email, first_name, last_name, password_hash, role_id)
    VALUES ($1,$2,$3,$4,$5,(SELECT role_id FROM roles WHERE role_name = $6))
    RETURNING user_id
  `, in.Username, in.Email, in.FirstName, in.LastName, passwordHash, in.Role).Scan(&id)
	if err != nil {
		return User{}, err
	}
	return s.Get(ctx, id)
}

func (s *Store) Update(ctx context.Context, id int64, in Input) (User, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE users
    SET username = $1, email = $2, first_name = $3, last_name = $4,
        role_id = (SELECT role_id FROM roles WHERE role_name = $5)
    WHERE user_id = $6
  `, in.Username, in.Email, in.FirstName, in.LastName, in.Role, id)
	if err != nil {
		return User{}, err
	}
	if tag.RowsAffected() == 0 {
		return User{}, ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *Store) UpdateProfile(ctx context.Context, id int64, in ProfileInput) (User, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE users
    SET email = $1, first_name = $2, last_name = $3
    WHERE user_id = $4
  `, in.Email, in.FirstName, in.LastName, id)
	if err != nil {
		return User{}, err
	}
	if tag.RowsAffected() == 0 {
		return User{}, ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *Store) PasswordHash(ctx context.Context, id int64) (string, error) {
	var hash string
	err := s.DB.QueryRow(ctx, "SELECT password_hash FROM users WHERE user_id = $1", id).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return hash, err
}

func (s *Store) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE users SET password_hash = $1 WHERE user_id = $2", passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM users WHERE user_id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
