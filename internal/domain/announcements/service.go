package announcements

import "context"

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]Announcement, error) {
	return s.store.List(ctx)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

func (s *Service) Create(ctx context.Context, a Announcement) (string, error) {
	if err := ValidateNew(a); err != nil {
		return "", err
	}
	return s.store.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, id string, a Announcement) error {
	if err := ValidateNew(a); err != nil {
		return err
	}
	return s.store.Update(ctx, id, a)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
