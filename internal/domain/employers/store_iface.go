package employers

import "context"

type StoreAPI interface {
	List(ctx context.Context) ([]Employer, error)
	GetByUID(ctx context.Context, uid string) (Employer, error)
	GetByEmail(ctx context.Context, email string) (Employer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CompanyNameExists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, e Employer) error
	UpdateProfile(ctx context.Context, uid string, e Employer) error
	SetVerified(ctx context.Context, uid string, verified bool) error
	SetEmailVerified(ctx context.Context, uid string) error
	SetPassword(ctx context.Context, uid, passwordHash string) error
	Delete(ctx context.Context, uid string) error
}
