package jobs

import (
	"context"
	"strings"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

// List supports the console's status dropdown: "open", "closed", or
// anything else for the full list, newest first.
func (s *Service) List(ctx context.Context, status string) ([]Job, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "open":
		return s.store.List(ctx, &Filter{Field: "is_open", Value: true})
	case "closed":
		return s.store.List(ctx, &Filter{Field: "is_open", Value: false})
	default:
		return s.store.List(ctx, nil)
	}
}

func (s *Service) ListByOwner(ctx context.Context, employerUID string) ([]Job, error) {
	return s.store.List(ctx, &Filter{Field: "owner_employer_uid", Value: employerUID})
}

// Count mirrors List's status mapping without fetching the rows.
func (s *Service) Count(ctx context.Context, status string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "open":
		return s.store.Count(ctx, &Filter{Field: "is_open", Value: true})
	case "closed":
		return s.store.Count(ctx, &Filter{Field: "is_open", Value: false})
	default:
		return s.store.Count(ctx, nil)
	}
}

func (s *Service) CountByOwner(ctx context.Context, employerUID string) (int, error) {
	return s.store.Count(ctx, &Filter{Field: "owner_employer_uid", Value: employerUID})
}

func (s *Service) Get(ctx context.Context, id string) (Job, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, job Job) (string, error) {
	if err := ValidateNew(job); err != nil {
		return "", err
	}
	return s.store.Create(ctx, job)
}

// Update applies a partial edit. Only the edit-modal fields are
// accepted; logo and skills keep their stored values, as the admin
// console's edit form never touched them.
func (s *Service) Update(ctx context.Context, id string, job Job) error {
	return s.store.UpdateFields(ctx, id, map[string]any{
		"company":         job.Company,
		"job_title":       job.Title,
		"job_description": job.Description,
		"job_category":    job.Category,
		"job_type":        job.Type,
		"location":        job.Location,
		"salary_min":      job.SalaryMin,
		"salary_max":      job.SalaryMax,
		"experience":      job.Experience,
	})
}

// Toggle flips is_open and nothing else.
func (s *Service) Toggle(ctx context.Context, id string, open bool) error {
	return s.store.UpdateFields(ctx, id, map[string]any{"is_open": open})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
