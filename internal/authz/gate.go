// Package authz implements the role gate shared by the server route
// middleware and the console command dispatcher. The policy is a small
// fixed table over (role, area); anything it does not recognize falls
// back to a redirect to the login view.
package authz

import "strings"

type Role string

const (
	RoleNone     Role = ""
	RoleAdmin    Role = "admin"
	RoleEmployer Role = "employer"
)

type Area int

const (
	AreaPublic Area = iota
	AreaAdmin
	AreaEmployer
	AreaUnknown
)

// Decision is the gate's verdict for one navigation.
type Decision struct {
	Allowed  bool
	Redirect string
}

const loginPath = "/"

var allow = Decision{Allowed: true}

func redirect() Decision {
	return Decision{Redirect: loginPath}
}

// Classify maps a logical path onto a console area. The public set is
// closed: login, employer signup, and the forgot-password view.
func Classify(path string) Area {
	path = normalize(path)
	switch path {
	case "/", "/employer-signup", "/employer/forgot-password":
		return AreaPublic
	}
	switch {
	case path == "/admin" || strings.HasPrefix(path, "/admin/"):
		return AreaAdmin
	case path == "/employer" || strings.HasPrefix(path, "/employer/"):
		return AreaEmployer
	default:
		return AreaUnknown
	}
}

// Decide evaluates the policy table for one (role, path) pair. It must
// run on every navigation: the role can change underneath a mounted view
// when another context logs in or out.
func Decide(role Role, path string) Decision {
	switch Classify(path) {
	case AreaPublic:
		return allow
	case AreaAdmin:
		if role == RoleAdmin {
			return allow
		}
		return redirect()
	case AreaEmployer:
		if role == RoleEmployer {
			return allow
		}
		return redirect()
	default:
		return redirect()
	}
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
