package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard/internal/authz"
	"jobboard/internal/faults"
)

func TestBearerTokenAndListDecoding(t *testing.T) {
	var gotAuth, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": "j1", "job_title": "Welder", "isOpen": true},
			},
		})
	}))
	defer srv.Close()

	client := New(srv.URL, func() string { return "tok-123" })
	api, err := ForRole(client, authz.RoleAdmin)
	if err != nil {
		t.Fatalf("ForRole: %v", err)
	}

	list, err := api.Jobs.ListByStatus(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotPath != "/api/v1/admin/jobs/" {
		t.Errorf("path = %q", gotPath)
	}
	if len(list) != 1 || list[0].Title != "Welder" || !list[0].IsOpen {
		t.Errorf("unexpected list %+v", list)
	}
}

func TestEmployerPathsDifferFromAdmin(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{}})
	}))
	defer srv.Close()

	client := New(srv.URL, func() string { return "" })
	api, err := ForRole(client, authz.RoleEmployer)
	if err != nil {
		t.Fatalf("ForRole: %v", err)
	}
	if _, err := api.Jobs.ListByStatus(context.Background(), "open"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotPath != "/api/v1/employer/jobs/" {
		t.Errorf("path = %q", gotPath)
	}

	if _, err := ForRole(client, authz.RoleNone); err == nil {
		t.Errorf("expected error for anonymous API surface")
	}
}

func TestErrorEnvelopeBecomesTypedError(t *testing.T) {
	cases := []struct {
		name   string
		status int
		code   string
		check  func(error) bool
	}{
		{"not found", http.StatusNotFound, "not_found", func(err error) bool {
			var nf *faults.NotFoundError
			return errors.As(err, &nf)
		}},
		{"duplicate", http.StatusConflict, "duplicate", func(err error) bool {
			var d *faults.DuplicateError
			return errors.As(err, &d)
		}},
		{"auth", http.StatusUnauthorized, "invalid_credentials", func(err error) bool {
			var a *faults.AuthError
			return errors.As(err, &a)
		}},
		{"write failed", http.StatusInternalServerError, "write_failed", func(err error) bool {
			var w *faults.RemoteWriteError
			return errors.As(err, &w)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"error":   map[string]string{"code": tc.code, "message": "boom"},
				})
			}))
			defer srv.Close()

			client := New(srv.URL, func() string { return "t" })
			api, _ := ForRole(client, authz.RoleAdmin)
			err := api.Jobs.Delete(context.Background(), "j9")
			if err == nil {
				t.Fatalf("expected error")
			}
			if !tc.check(err) {
				t.Errorf("wrong error type: %T %v", err, err)
			}
		})
	}
}

func TestCountHitsCountEndpoint(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]int{"count": 7}})
	}))
	defer srv.Close()

	client := New(srv.URL, func() string { return "t" })
	api, _ := ForRole(client, authz.RoleAdmin)
	total, err := api.Jobs.Count(context.Background(), &Filter{Field: "status", Value: "open"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if total != 7 {
		t.Errorf("count = %d", total)
	}
	if gotPath != "/api/v1/admin/jobs/count" || gotQuery != "status=open" {
		t.Errorf("request = %q?%q", gotPath, gotQuery)
	}
}

func TestToggleSendsDesiredState(t *testing.T) {
	var gotBody map[string]bool
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{"id": "j1", "isOpen": false}})
	}))
	defer srv.Close()

	client := New(srv.URL, func() string { return "t" })
	api, _ := ForRole(client, authz.RoleAdmin)
	if err := api.Jobs.Toggle(context.Background(), "j1", false); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if gotPath != "/api/v1/admin/jobs/j1/toggle" {
		t.Errorf("path = %q", gotPath)
	}
	if v, ok := gotBody["isOpen"]; !ok || v {
		t.Errorf("body = %v", gotBody)
	}
}
