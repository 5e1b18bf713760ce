package employers

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard/internal/faults"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employerColumns = `uid, email, company_name, company_address, company_description,
       company_phone, contact_person_name, contact_person_email,
       linkedin_profile, business_permit, company_logo,
       verified, email_verified, password_hash, created_at`

func (s *Store) List(ctx context.Context) ([]Employer, error) {
	rows, err := s.DB.Query(ctx, "SELECT "+employerColumns+" FROM employers ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Employer
	for rows.Next() {
		e, err := scanEmployer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) GetByUID(ctx context.Context, uid string) (Employer, error) {
	row := s.DB.QueryRow(ctx, "SELECT "+employerColumns+" FROM employers WHERE uid = $1", uid)
	e, err := scanEmployer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employer{}, &faults.NotFoundError{Collection: "employers", ID: uid}
	}
	return e, err
}

func (s *Store) GetByEmail(ctx context.Context, email string) (Employer, error) {
	row := s.DB.QueryRow(ctx, "SELECT "+employerColumns+" FROM employers WHERE lower(email) = lower($1)", email)
	e, err := scanEmployer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employer{}, &faults.NotFoundError{Collection: "employers", ID: email}
	}
	return e, err
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employers WHERE lower(email) = lower($1)", email).Scan(&count)
	return count > 0, err
}

func (s *Store) CompanyNameExists(ctx context.Context, name string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employers WHERE lower(company_name) = lower($1)", name).Scan(&count)
	return count > 0, err
}

// Create inserts the minimal signup document. Unique indexes on email
// and company_name back up the caller's existence pre-check, so the
// check-then-act race resolves to a DuplicateError instead of a second
// account.
func (s *Store) Create(ctx context.Context, e Employer) error {
	_, err := s.DB.Exec(ctx, `
    INSERT INTO employers (uid, email, company_name, password_hash, verified, email_verified)
    VALUES ($1,$2,$3,$4,false,false)
  `, e.UID, strings.TrimSpace(e.Email), strings.TrimSpace(e.CompanyName), e.PasswordHash)
	return mapUniqueViolation(err)
}

func (s *Store) UpdateProfile(ctx context.Context, uid string, e Employer) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employers
    SET company_name = $1, company_address = $2, company_description = $3,
        company_phone = $4, contact_person_name = $5, contact_person_email = $6,
        linkedin_profile = $7, business_permit = $8, company_logo = $9
    WHERE uid = $10
  `, e.CompanyName, e.CompanyAddress, e.CompanyDescription,
		e.CompanyPhone, e.ContactPersonName, e.ContactPersonEmail,
		e.LinkedinProfile, e.BusinessPermit, e.CompanyLogo, uid)
	if err != nil {
		return mapUniqueViolation(err)
	}
	if tag.RowsAffected() == 0 {
		return &faults.NotFoundError{Collection: "employers", ID: uid}
	}
	return nil
}

func (s *Store) SetVerified(ctx context.Context, uid string, verified bool) error {
	_, err := s.DB.Exec(ctx, "UPDATE employers SET verified = $1 WHERE uid = $2", verified, uid)
	return err
}

func (s *Store) SetEmailVerified(ctx context.Context, uid string) error {
	_, err := s.DB.Exec(ctx, "UPDATE employers SET email_verified = true WHERE uid = $1", uid)
	return err
}

func (s *Store) SetPassword(ctx context.Context, uid, passwordHash string) error {
	tag, err := s.DB.Exec(ctx, "UPDATE employers SET password_hash = $1 WHERE uid = $2", passwordHash, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &faults.NotFoundError{Collection: "employers", ID: uid}
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, uid string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employers WHERE uid = $1", uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &faults.NotFoundError{Collection: "employers", ID: uid}
	}
	return nil
}

func scanEmployer(row pgx.Row) (Employer, error) {
	var e Employer
	err := row.Scan(&e.UID, &e.Email, &e.CompanyName, &e.CompanyAddress, &e.CompanyDescription,
		&e.CompanyPhone, &e.ContactPersonName, &e.ContactPersonEmail,
		&e.LinkedinProfile, &e.BusinessPermit, &e.CompanyLogo,
		&e.Verified, &e.EmailVerified, &e.PasswordHash, &e.CreatedAt)
	return e, err
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "employers_company_name_key":
			return &faults.DuplicateError{Field: "companyName"}
		default:
			return &faults.DuplicateError{Field: "email"}
		}
	}
	return err
}
