package announcements

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jobboard/internal/faults"
)

type StoreAPI interface {
	List(ctx context.Context) ([]Announcement, error)
	Get(ctx context.Context, id string) (Announcement, error)
	Create(ctx context.Context, a Announcement) (string, error)
	Update(ctx context.Context, id string, a Announcement) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Announcement, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, description, location, date
    FROM announcements
    ORDER BY date DESC
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Announcement
	for rows.Next() {
		var a Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Location, &a.Date); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Announcement, error) {
	var a Announcement
	err := s.DB.QueryRow(ctx, `
    SELECT id, title, description, location, date
    FROM announcements WHERE id = $1
  `, id).Scan(&a.ID, &a.Title, &a.Description, &a.Location, &a.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return Announcement{}, &faults.NotFoundError{Collection: "announcements", ID: id}
	}
	return a, err
}

func (s *Store) Create(ctx context.Context, a Announcement) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO announcements (title, description, location, date)
    VALUES ($1,$2,$3,now())
    RETURNING id
  `, strings.TrimSpace(a.Title), strings.TrimSpace(a.Description), strings.TrimSpace(a.Location)).Scan(&id)
	return id, err
}

func (s *Store) Update(ctx context.Context, id string, a Announcement) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE announcements
    SET title = $1, description = $2, location = $3
    WHERE id = $4
  `, strings.TrimSpace(a.Title), strings.TrimSpace(a.Description), strings.TrimSpace(a.Location), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &faults.NotFoundError{Collection: "announcements", ID: id}
	}
	return nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var total int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM announcements").Scan(&total)
	return total, err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM announcements WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return &faults.NotFoundError{Collection: "announcements", ID: id}
	}
	return nil
}
