package authz

import "testing"

func TestDecideTable(t *testing.T) {
	paths := map[string][]string{
		"public":   {"/", "/employer-signup", "/employer/forgot-password"},
		"admin":    {"/admin/dashboard", "/admin/jobs", "/admin/jobs/j1/applicants", "/admin/submit-job", "/admin/announcement", "/admin/post-announcement", "/admin/manage-account"},
		"employer": {"/employer/dashboard", "/employer/profile", "/employer/jobs", "/employer/post-job"},
		"unknown":  {"/nope", "/adminx", "/settings/deep/path"},
	}

	tests := []struct {
		role      Role
		area      string
		wantAllow bool
	}{
		{RoleNone, "public", true},
		{RoleNone, "admin", false},
		{RoleNone, "employer", false},
		{RoleNone, "unknown", false},
		{RoleAdmin, "public", true},
		{RoleAdmin, "admin", true},
		{RoleAdmin, "employer", false},
		{RoleAdmin, "unknown", false},
		{RoleEmployer, "public", true},
		{RoleEmployer, "admin", false},
		{RoleEmployer, "employer", true},
		{RoleEmployer, "unknown", false},
	}

	for _, tc := range tests {
		for _, path := range paths[tc.area] {
			got := Decide(tc.role, path)
			if got.Allowed != tc.wantAllow {
				t.Fatalf("Decide(%q, %q).Allowed = %v, want %v", tc.role, path, got.Allowed, tc.wantAllow)
			}
			if !tc.wantAllow && got.Redirect != "/" {
				t.Fatalf("Decide(%q, %q) redirect = %q, want /", tc.role, path, got.Redirect)
			}
		}
	}
}

func TestClassifyNormalizesPaths(t *testing.T) {
	tests := []struct {
		path string
		want Area
	}{
		{"", AreaPublic},
		{"/admin/jobs/", AreaAdmin},
		{"admin/jobs", AreaAdmin},
		{"/employer", AreaEmployer},
		{"/employer/forgot-password/", AreaPublic},
		{"/administrator", AreaUnknown},
	}
	for _, tc := range tests {
		if got := Classify(tc.path); got != tc.want {
			t.Fatalf("Classify(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
