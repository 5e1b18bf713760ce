package gateway

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"jobboard/internal/authz"
	"jobboard/internal/domain/announcements"
	"jobboard/internal/domain/applications"
	"jobboard/internal/domain/employers"
	"jobboard/internal/domain/jobs"
)

// Filter is the single equality predicate a listing accepts.
type Filter struct {
	Field string
	Value string
}

// Collection is the uniform CRUD surface over one REST collection.
type Collection[T any] struct {
	c    *Client
	path string
}

func (col Collection[T]) List(ctx context.Context, filter *Filter) ([]T, error) {
	query := url.Values{}
	if filter != nil {
		query.Set(filter.Field, filter.Value)
	}
	var out []T
	if err := col.c.do(ctx, http.MethodGet, pathWithQuery(col.path+"/", query), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (col Collection[T]) Count(ctx context.Context, filter *Filter) (int, error) {
	query := url.Values{}
	if filter != nil {
		query.Set(filter.Field, filter.Value)
	}
	var out struct {
		Count int `json:"count"`
	}
	err := col.c.do(ctx, http.MethodGet, pathWithQuery(col.path+"/count", query), nil, &out)
	return out.Count, err
}

func (col Collection[T]) Create(ctx context.Context, record T) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := col.c.do(ctx, http.MethodPost, col.path+"/", record, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (col Collection[T]) Update(ctx context.Context, id string, record T) error {
	return col.c.do(ctx, http.MethodPut, col.path+"/"+url.PathEscape(id), record, nil)
}

func (col Collection[T]) Delete(ctx context.Context, id string) error {
	return col.c.do(ctx, http.MethodDelete, col.path+"/"+url.PathEscape(id), nil, nil)
}

// Jobs wraps the job collection with its extra operations.
type Jobs struct {
	Collection[jobs.Job]
}

// ListByStatus filters server-side: "open", "closed", or "" for all.
func (j Jobs) ListByStatus(ctx context.Context, status string) ([]jobs.Job, error) {
	if status == "" {
		return j.List(ctx, nil)
	}
	return j.List(ctx, &Filter{Field: "status", Value: status})
}

func (j Jobs) Toggle(ctx context.Context, id string, isOpen bool) error {
	body := map[string]bool{"isOpen": isOpen}
	return j.c.do(ctx, http.MethodPost, j.path+"/"+url.PathEscape(id)+"/toggle", body, nil)
}

func (j Jobs) Applications(ctx context.Context, id string) ([]applications.Application, error) {
	var out []applications.Application
	err := j.c.do(ctx, http.MethodGet, j.path+"/"+url.PathEscape(id)+"/applications", nil, &out)
	return out, err
}

func (j Jobs) ApplicationsCount(ctx context.Context, id string) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	err := j.c.do(ctx, http.MethodGet, j.path+"/"+url.PathEscape(id)+"/applications/count", nil, &out)
	return out.Count, err
}

// Accounts is the admin view over employer accounts.
type Accounts struct {
	c *Client
}

func (a Accounts) List(ctx context.Context) ([]employers.Employer, error) {
	var out []employers.Employer
	err := a.c.do(ctx, http.MethodGet, "/api/v1/admin/accounts/", nil, &out)
	return out, err
}

func (a Accounts) Delete(ctx context.Context, uid string) error {
	return a.c.do(ctx, http.MethodDelete, "/api/v1/admin/accounts/"+url.PathEscape(uid), nil, nil)
}

// Profile is the signed-in employer's own account.
type Profile struct {
	c *Client
}

func (p Profile) Get(ctx context.Context) (employers.Employer, error) {
	var out employers.Employer
	err := p.c.do(ctx, http.MethodGet, "/api/v1/employer/profile/", nil, &out)
	return out, err
}

// Update sends the full profile and returns the stored row so the
// session cache can be refreshed from what the server actually kept.
func (p Profile) Update(ctx context.Context, e employers.Employer) (employers.Employer, error) {
	var out employers.Employer
	err := p.c.do(ctx, http.MethodPut, "/api/v1/employer/profile/", e, &out)
	return out, err
}

// Uploads pushes files to the server-side store.
type Uploads struct {
	c    *Client
	area string
}

// Send streams one file as multipart form data and returns the public
// URL the server assigned.
func (u Uploads) Send(ctx context.Context, folder, filename string, src io.Reader) (string, error) {
	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)
	go func() {
		err := form.WriteField("folder", folder)
		if err == nil {
			var part io.Writer
			part, err = form.CreateFormFile("file", filename)
			if err == nil {
				_, err = io.Copy(part, src)
			}
		}
		if cerr := form.Close(); err == nil {
			err = cerr
		}
		pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.c.base+"/api/v1/"+u.area+"/uploads", pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var out struct {
		URL string `json:"url"`
	}
	if err := u.c.send(req, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// API groups the collections reachable for one role. Paths differ per
// area, so build it from the resolved identity.
type API struct {
	Jobs          Jobs
	Announcements Collection[announcements.Announcement]
	Accounts      Accounts
	Profile       Profile
	Uploads       Uploads
}

func ForRole(c *Client, role authz.Role) (*API, error) {
	switch role {
	case authz.RoleAdmin:
		return &API{
			Jobs:          Jobs{Collection[jobs.Job]{c: c, path: "/api/v1/admin/jobs"}},
			Announcements: Collection[announcements.Announcement]{c: c, path: "/api/v1/admin/announcements"},
			Accounts:      Accounts{c: c},
			Uploads:       Uploads{c: c, area: "admin"},
		}, nil
	case authz.RoleEmployer:
		return &API{
			Jobs:    Jobs{Collection[jobs.Job]{c: c, path: "/api/v1/employer/jobs"}},
			Profile: Profile{c: c},
			Uploads: Uploads{c: c, area: "employer"},
		}, nil
	default:
		return nil, fmt.Errorf("no API surface for role %q", role)
	}
}
