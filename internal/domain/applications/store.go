// Package applications reads the job-application collection. Applicants
// submit through the public site, so this system never writes here;
// deleted jobs may leave orphaned applications behind.
package applications

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ID               string    `json:"id"`
	JobID            string    `json:"job_id"`
	ApplicantName    string    `json:"applicant_name"`
	ApplicantEmail   string    `json:"applicant_email"`
	ApplicantContact string    `json:"applicant_contact"`
	ApplicantAddress string    `json:"applicant_address"`
	ResumeLink       string    `json:"resume_link"`
	SubmittedAt      time.Time `json:"timestamp"`
}

type StoreAPI interface {
	ListByJob(ctx context.Context, jobID string) ([]Application, error)
	CountByJob(ctx context.Context, jobID string) (int, error)
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListByJob(ctx context.Context, jobID string) ([]Application, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, job_id, applicant_name, applicant_email, applicant_contact,
           applicant_address, resume_link, timestamp
    FROM applications
    WHERE job_id = $1
    ORDER BY timestamp DESC
  `, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Application
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.ApplicantName, &a.ApplicantEmail,
			&a.ApplicantContact, &a.ApplicantAddress, &a.ResumeLink, &a.SubmittedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) CountByJob(ctx context.Context, jobID string) (int, error) {
	var total int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM applications WHERE job_id = $1", jobID).Scan(&total)
	return total, err
}
