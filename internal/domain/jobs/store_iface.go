package jobs

import "context"

// Filter is a single equality predicate; the consoles never need
// compound filters.
type Filter struct {
	Field string
	Value any
}

type StoreAPI interface {
	List(ctx context.Context, filter *Filter) ([]Job, error)
	Get(ctx context.Context, id string) (Job, error)
	Create(ctx context.Context, job Job) (string, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter *Filter) (int, error)
}
