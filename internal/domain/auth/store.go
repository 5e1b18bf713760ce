package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard/internal/faults"
)

type Admin struct {
	ID           string
	Email        string
	PasswordHash string
}

type StoreAPI interface {
	GetAdminByEmail(ctx context.Context, email string) (Admin, error)
	SaveActionToken(ctx context.Context, purpose, tokenHash, subject string, expiresAt time.Time) error
	ConsumeActionToken(ctx context.Context, purpose, tokenHash string) (string, error)
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) GetAdminByEmail(ctx context.Context, email string) (Admin, error) {
	var admin Admin
	err := s.DB.QueryRow(ctx, `
    SELECT id, email, password_hash
    FROM admins WHERE lower(email) = lower($1)
  `, email).Scan(&admin.ID, &admin.Email, &admin.PasswordHash)
	if errors.Is(err, pgx.ErrNoRows) {
		return Admin{}, &faults.NotFoundError{Collection: "admins", ID: email}
	}
	return admin, err
}

// SaveActionToken stores the hash of a one-time token (email
// verification or password reset) bound to a subject (employer uid).
func (s *Store) SaveActionToken(ctx context.Context, purpose, tokenHash, subject string, expiresAt time.Time) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO action_tokens (purpose, token_hash, subject, expires_at)
    VALUES ($1,$2,$3,$4)
  `, purpose, tokenHash, subject, expiresAt)
	return err
}

// ConsumeActionToken deletes the token and returns its subject, or a
// NotFoundError when the token is unknown, already used, or expired.
func (s *Store) ConsumeActionToken(ctx context.Context, purpose, tokenHash string) (string, error) {
	var subject string
	err := s.DB.QueryRow(ctx, `
    DELETE FROM action_tokens
    WHERE purpose = $1 AND token_hash = $2 AND expires_at > now()
    RETURNING subject
  `, purpose, tokenHash).Scan(&subject)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", &faults.NotFoundError{Collection: "action_tokens", ID: purpose}
	}
	return subject, err
}
