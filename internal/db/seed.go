package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard/internal/domain/auth"
	"jobboard/internal/platform/config"
)

// Seed makes sure the configured admin account exists. Existing rows
// are left alone so a rotated seed password never clobbers a live one.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		return nil
	}
	return ensureAdmin(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM admins WHERE lower(email) = lower($1)", email).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, "INSERT INTO admins (email, password_hash) VALUES ($1, $2)", email, hash)
	return err
}
