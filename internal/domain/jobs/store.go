package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard/internal/faults"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

var filterColumns = map[string]string{
	"isOpen":             "is_open",
	"is_open":            "is_open",
	"owner_employer_uid": "owner_employer_uid",
	"company":            "company",
}

var updateColumns = map[string]string{
	"company":         "company",
	"job_title":       "job_title",
	"job_description": "job_description",
	"job_category":    "job_category",
	"job_type":        "job_type",
	"location":        "location",
	"salary_min":      "salary_min",
	"salary_max":      "salary_max",
	"skills":          "skills",
	"experience":      "experience",
	"logo":            "logo",
	"is_open":         "is_open",
	"isOpen":          "is_open",
}

const jobColumns = `id, company, job_title, job_description, job_category, job_type,
       location, salary_min, salary_max, skills, experience, logo,
       date_posted, is_open, COALESCE(owner_employer_uid, '')`

func (s *Store) List(ctx context.Context, filter *Filter) ([]Job, error) {
	sql := "SELECT " + jobColumns + " FROM jobs"
	args := []any{}
	if filter != nil {
		column, ok := filterColumns[filter.Field]
		if !ok {
			return nil, fmt.Errorf("jobs: unsupported filter field %q", filter.Field)
		}
		sql += " WHERE " + column + " = $1"
		args = append(args, filter.Value)
	}
	sql += " ORDER BY date_posted DESC"

	rows, err := s.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Job, error) {
	row := s.DB.QueryRow(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = $1", id)
	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Job{}, &faults.NotFoundError{Collection: "jobs", ID: id}
	}
	return job, err
}

func (s *Store) Create(ctx context.Context, job Job) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO jobs (company, job_title, job_description, job_category, job_type,
                      location, salary_min, salary_max, skills, experience, logo,
                      date_posted, is_open, owner_employer_uid)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now(),true,$12)
    RETURNING id
  `, job.Company, job.Title, job.Description, job.Category, job.Type,
		job.Location, job.SalaryMin, job.SalaryMax, job.Skills, job.Experience, job.Logo,
		nullIfEmpty(job.OwnerEmployerUID)).Scan(&id)
	return id, err
}

func (s *Store) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	assignments := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields)+1)
	for field, value := range fields {
		column, ok := updateColumns[field]
		if !ok {
			return fmt.Errorf("jobs: unsupported update field %q", field)
		}
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if len(assignments) == 0 {
		return nil
	}
	args = append(args, id)

	tag, err := s.DB.Exec(ctx,
		fmt.Sprintf("UPDATE jobs SET %s WHERE id = $%d", strings.Join(assignments, ", "), len(args)),
		args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &faults.NotFoundError{Collection: "jobs", ID: id}
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &faults.NotFoundError{Collection: "jobs", ID: id}
	}
	return nil
}

func (s *Store) Count(ctx context.Context, filter *Filter) (int, error) {
	sql := "SELECT COUNT(1) FROM jobs"
	args := []any{}
	if filter != nil {
		column, ok := filterColumns[filter.Field]
		if !ok {
			return 0, fmt.Errorf("jobs: unsupported filter field %q", filter.Field)
		}
		sql += " WHERE " + column + " = $1"
		args = append(args, filter.Value)
	}
	var total int
	if err := s.DB.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func scanJob(row pgx.Row) (Job, error) {
	var job Job
	err := row.Scan(&job.ID, &job.Company, &job.Title, &job.Description, &job.Category,
		&job.Type, &job.Location, &job.SalaryMin, &job.SalaryMax, &job.Skills,
		&job.Experience, &job.Logo, &job.DatePosted, &job.IsOpen, &job.OwnerEmployerUID)
	return job, err
}

func nullIfEmpty(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
