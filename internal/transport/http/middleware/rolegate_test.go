package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard/internal/domain/auth"
)

const testSecret = "gate-test-secret"

func gatedHandler(t *testing.T) http.Handler {
	t.Helper()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return Auth(testSecret)(RoleGate(ok))
}

func tokenFor(t *testing.T, role, uid string) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, auth.Claims{Role: role, UID: uid, Email: "x@y.test"}, time.Hour)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}
	return token
}

func TestRoleGate(t *testing.T) {
	handler := gatedHandler(t)

	tests := []struct {
		name       string
		path       string
		role       string
		wantStatus int
	}{
		{"anonymous login is public", "/api/v1/auth/login", "", http.StatusOK},
		{"anonymous signup is public", "/api/v1/auth/signup", "", http.StatusOK},
		{"anonymous forgot-password is public", "/api/v1/auth/forgot-password", "", http.StatusOK},
		{"anonymous admin denied", "/api/v1/admin/jobs", "", http.StatusUnauthorized},
		{"anonymous employer denied", "/api/v1/employer/profile", "", http.StatusUnauthorized},
		{"admin reaches admin", "/api/v1/admin/jobs", "admin", http.StatusOK},
		{"admin denied employer area", "/api/v1/employer/jobs", "admin", http.StatusForbidden},
		{"employer reaches employer", "/api/v1/employer/jobs", "employer", http.StatusOK},
		{"employer denied admin area", "/api/v1/admin/accounts", "employer", http.StatusForbidden},
		{"unknown path denied for all", "/api/v1/other", "admin", http.StatusForbidden},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.role != "" {
				req.Header.Set("Authorization", "Bearer "+tokenFor(t, tc.role, "u1"))
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tc.wantStatus {
				t.Fatalf("%s as %q: status = %d, want %d", tc.path, tc.role, rec.Code, tc.wantStatus)
			}
		})
	}
}

func TestAuthMiddlewareIgnoresGarbageTokens(t *testing.T) {
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); ok {
			t.Fatal("expected anonymous context for bad token")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/login", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)
}
