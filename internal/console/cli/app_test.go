package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard/internal/authz"
	"jobboard/internal/console/session"
)

// fakeAPI is a minimal server speaking the response envelope.
func fakeAPI(t *testing.T, routes map[string]func(r *http.Request) (any, int)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		handler, ok := routes[key]
		if !ok {
			t.Errorf("unexpected request %s", key)
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{
				"success": false,
				"error":   map[string]string{"code": "not_found", "message": "no route"},
			})
			return
		}
		data, status := handler(r)
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	}))
}

func newTestApp(t *testing.T, baseURL, input string) (*App, *session.Store, *bytes.Buffer) {
	t.Helper()
	store, err := session.NewStore(session.NewMemKV())
	if err != nil {
		t.Fatalf("session store: %v", err)
	}
	out := &bytes.Buffer{}
	app := NewApp(Config{APIBaseURL: baseURL, SessionDir: t.TempDir()}, store, strings.NewReader(input), out)
	return app, store, out
}

func TestLoginStoresSessionAndWhoami(t *testing.T) {
	srv := fakeAPI(t, map[string]func(*http.Request) (any, int){
		"POST /api/v1/auth/login": func(r *http.Request) (any, int) {
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["email"] != "admin@site.test" || body["password"] != "pw" {
				t.Errorf("login body = %v", body)
			}
			return map[string]any{"role": "admin", "token": "jwt-1", "email": "admin@site.test"}, http.StatusOK
		},
	})
	defer srv.Close()

	app, store, out := newTestApp(t, srv.URL, "")
	err := app.Run(context.Background(), []string{"login", "-email", "admin@site.test", "-password", "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	id, err := store.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.Role != authz.RoleAdmin || id.Record.Token != "jwt-1" {
		t.Errorf("stored identity = %+v", id)
	}

	out.Reset()
	if err := app.Run(context.Background(), []string{"whoami"}); err != nil {
		t.Fatalf("whoami: %v", err)
	}
	if !strings.Contains(out.String(), "admin admin@site.test") {
		t.Errorf("whoami output = %q", out.String())
	}
}

func TestSignedOutCannotReachJobs(t *testing.T) {
	app, _, _ := newTestApp(t, "http://127.0.0.1:0", "")
	err := app.Run(context.Background(), []string{"jobs", "list"})
	if err == nil || !strings.Contains(err.Error(), "not signed in") {
		t.Errorf("jobs while signed out: %v", err)
	}
}

func TestEmployerCannotReachAdminViews(t *testing.T) {
	app, store, _ := newTestApp(t, "http://127.0.0.1:0", "")
	rec := session.Record{Role: string(authz.RoleEmployer), UID: "emp-1", Email: "e@x.test", Token: "jwt-2"}
	if err := store.Put(rec); err != nil {
		t.Fatalf("put: %v", err)
	}

	for _, cmd := range [][]string{
		{"announcements", "list"},
		{"accounts", "list"},
	} {
		if err := app.Run(context.Background(), cmd); err == nil {
			t.Errorf("%v allowed for employer", cmd)
		}
	}
	// Signup is a public view, so a signed-in employer is bounced too.
	if err := app.Run(context.Background(), []string{"signup"}); err == nil {
		t.Errorf("signup allowed while signed in")
	}
}

func TestJobsListRendersTable(t *testing.T) {
	srv := fakeAPI(t, map[string]func(*http.Request) (any, int){
		"GET /api/v1/admin/jobs/": func(r *http.Request) (any, int) {
			if got := r.Header.Get("Authorization"); got != "Bearer jwt-3" {
				t.Errorf("Authorization = %q", got)
			}
			return []map[string]any{
				{"id": "j1", "company": "Acme", "job_title": "Welder", "job_type": "Full-time", "location": "Davao", "isOpen": true, "date_posted": "2025-03-01T00:00:00Z"},
			}, http.StatusOK
		},
	})
	defer srv.Close()

	app, store, out := newTestApp(t, srv.URL, "")
	if err := store.Put(session.Record{Role: string(authz.RoleAdmin), Email: "a@x.test", Token: "jwt-3"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	if err := app.Run(context.Background(), []string{"jobs", "list"}); err != nil {
		t.Fatalf("jobs list: %v", err)
	}
	for _, want := range []string{"Acme", "Welder", "open", "2025-03-01"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestJobsDeletePromptDeclined(t *testing.T) {
	deleted := false
	srv := fakeAPI(t, map[string]func(*http.Request) (any, int){
		"GET /api/v1/admin/jobs/": func(r *http.Request) (any, int) {
			return []map[string]any{{"id": "j1", "company": "Acme", "job_title": "Welder"}}, http.StatusOK
		},
		"DELETE /api/v1/admin/jobs/j1": func(r *http.Request) (any, int) {
			deleted = true
			return map[string]string{"status": "deleted"}, http.StatusOK
		},
	})
	defer srv.Close()

	// Answer "n" to the confirmation prompt.
	app, store, out := newTestApp(t, srv.URL, "n\n")
	if err := store.Put(session.Record{Role: string(authz.RoleAdmin), Email: "a@x.test", Token: "t"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := app.Run(context.Background(), []string{"jobs", "delete", "-id", "j1"}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted {
		t.Errorf("declined confirmation still deleted remotely")
	}
	if !strings.Contains(out.String(), "kept the job") {
		t.Errorf("output = %q", out.String())
	}

	// And with -yes it goes through without reading input.
	app2, store2, _ := newTestApp(t, srv.URL, "")
	if err := store2.Put(session.Record{Role: string(authz.RoleAdmin), Email: "a@x.test", Token: "t"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := app2.Run(context.Background(), []string{"jobs", "delete", "-id", "j1", "-yes"}); err != nil {
		t.Fatalf("delete -yes: %v", err)
	}
	if !deleted {
		t.Errorf("-yes did not delete")
	}
}

func TestAccountsListRendersTable(t *testing.T) {
	srv := fakeAPI(t, map[string]func(*http.Request) (any, int){
		"GET /api/v1/admin/accounts/": func(r *http.Request) (any, int) {
			return []map[string]any{
				{
					"uid": "emp-1", "companyName": "Acme", "email": "hr@acme.test",
					"contact_person_name": "Lina Cruz", "verified": true,
				},
			}, http.StatusOK
		},
	})
	defer srv.Close()

	app, store, out := newTestApp(t, srv.URL, "")
	if err := store.Put(session.Record{Role: string(authz.RoleAdmin), Email: "a@x.test", Token: "t"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := app.Run(context.Background(), []string{"accounts", "list"}); err != nil {
		t.Fatalf("accounts list: %v", err)
	}
	for _, want := range []string{"emp-1", "Acme", "hr@acme.test", "Lina Cruz", "true"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestLogoutClearsSession(t *testing.T) {
	app, store, _ := newTestApp(t, "http://127.0.0.1:0", "")
	if err := store.Put(session.Record{Role: string(authz.RoleAdmin), Email: "a@x.test", Token: "t"}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := app.Run(context.Background(), []string{"logout"}); err != nil {
		t.Fatalf("logout: %v", err)
	}
	id, err := store.Resolve()
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if id.Role != authz.RoleNone {
		t.Errorf("session survived logout: %+v", id)
	}
}
