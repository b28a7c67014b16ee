package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"hrsystem/internal/domain/auth"
	"hrsystem/internal/platform/config"
)

func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	roleIDs, err := ensureRoles(ctx, pool)
	if err != nil {
		return err
	}

	if cfg.SeedAdminPassword != "" {
		if err := ensureAdminUser(ctx, pool, roleIDs[auth.RoleAdmin], cfg); err != nil {
			return err
		}
	}

	return nil
}

func ensureRoles(ctx context.Context, pool *pgxpool.Pool) (map[string]int64, error) {
	roleIDs := make(map[string]int64, len(auth.Roles))
	for _, name := range auth.Roles {
		var id int64
		err := pool.QueryRow(ctx, "SELECT role_id FROM roles WHERE role_name = $1", name).Scan(&id)
		if err != nil {
			err = pool.QueryRow(ctx, "INSERT INTO roles (role_name) VALUES ($1) RETURNING role_id", name).Scan(&id)
			if err != nil {
				return nil, err
			}
		}
		roleIDs[name] = id
	}
	return roleIDs, nil
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, roleID int64, cfg config.Config) error {
	username := strings.TrimSpace(cfg.SeedAdminUsername)
	if username == "" {
		username = "admin"
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM users WHERE username = $1", username).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
    INSERT INTO users (username, email, first_name, last_name, password_hash, role_id)
    VALUES ($1,$2,$3,$4,$5,$6)
  `, username, cfg.SeedAdminEmail, "System", "Administrator", hash, roleID)
	return err
}
