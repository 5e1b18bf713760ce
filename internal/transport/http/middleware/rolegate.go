package middleware

import (
	"net/http"
	"strings"

	"jobboard/internal/authz"
	"jobboard/internal/transport/http/api"
)

const apiPrefix = "/api/v1"

// RoleGate runs every API request through the shared authorization
// policy table. The console-path equivalent of an API route is its path
// with the /api/v1 prefix stripped, so /api/v1/admin/jobs gates exactly
// like the /admin/jobs view. Auth endpoints map onto the public views
// they serve.
func RoleGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := authz.RoleNone
		if user, ok := GetUser(r.Context()); ok {
			role = authz.Role(user.Role)
		}

		decision := authz.Decide(role, viewPath(r.URL.Path))
		if !decision.Allowed {
			if role == authz.RoleNone {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			api.Fail(w, http.StatusForbidden, "forbidden", "insufficient role", GetRequestID(r.Context()))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func viewPath(path string) string {
	path = strings.TrimPrefix(path, apiPrefix)
	switch {
	case path == "/auth/signup":
		return "/employer-signup"
	case path == "/auth/forgot-password" || path == "/auth/reset-password":
		return "/employer/forgot-password"
	case strings.HasPrefix(path, "/auth/"):
		return "/"
	default:
		return path
	}
}
