package faults

import (
	"errors"
	"testing"
)

func TestCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation",
			err:  &ValidationError{Issues: []FieldIssue{{Field: "location", Reason: "required"}}},
			want: CodeValidation,
		},
		{
			name: "auth",
			err:  &AuthError{Reason: "bad credentials"},
			want: CodeAuth,
		},
		{
			name: "remote write",
			err:  &RemoteWriteError{Op: "jobs.update", Err: errors.New("boom")},
			want: CodeWriteFailed,
		},
		{
			name: "not found",
			err:  &NotFoundError{Collection: "jobs", ID: "abc"},
			want: CodeNotFound,
		},
		{
			name: "duplicate",
			err:  &DuplicateError{Field: "companyName", Value: "Acme"},
			want: CodeDuplicate,
		},
		{
			name: "unknown",
			err:  errors.New("???"),
			want: "",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if got := Code(tc.err); got != tc.want {
				t.Fatalf("Code(%v) = %q, want %q", tc.err, got, tc.want)
			}
		})
	}
}

func TestCodeMapsWrappedErrors(t *testing.T) {
	wrapped := &RemoteWriteError{Op: "jobs.delete", Err: &NotFoundError{Collection: "jobs", ID: "x"}}
	// RemoteWriteError takes precedence but the inner error stays reachable.
	if Code(wrapped) != CodeWriteFailed {
		t.Fatal("expected write_failed for wrapping error")
	}
	var notFound *NotFoundError
	if !errors.As(wrapped, &notFound) {
		t.Fatal("expected inner not-found to unwrap")
	}
}

func TestFromCodeRoundTrip(t *testing.T) {
	for _, code := range []string{CodeValidation, CodeAuth, CodeWriteFailed, CodeNotFound, CodeDuplicate} {
		rebuilt := FromCode(code, "detail")
		if got := Code(rebuilt); got != code {
			t.Fatalf("FromCode(%q) rebuilt as %q", code, got)
		}
	}
}
