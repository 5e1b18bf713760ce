// Package faults defines the error taxonomy shared by the server handlers
// and the console: validation, auth, remote-write, not-found, and duplicate
// failures, each carrying a stable code for the API envelope.
package faults

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CodeValidation  = "validation_error"
	CodeAuth        = "invalid_credentials"
	CodeWriteFailed = "write_failed"
	CodeNotFound    = "not_found"
	CodeDuplicate   = "duplicate"
)

type FieldIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is raised before any remote call is issued.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AuthError covers bad credentials and unverified accounts.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "auth failed: " + e.Reason
}

// RemoteWriteError wraps a failed create/update/delete against a collection.
type RemoteWriteError struct {
	Op  string
	Err error
}

func (e *RemoteWriteError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *RemoteWriteError) Unwrap() error {
	return e.Err
}

// NotFoundError marks a missing document. Reads treat it as an empty
// result rather than a fatal condition.
type NotFoundError struct {
	Collection string
	ID         string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s/%s not found", e.Collection, e.ID)
}

// DuplicateError reports a uniqueness violation detected either by the
// pre-signup existence check or by the store's unique constraint.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q is already taken", e.Field, e.Value)
}

// Code maps an error to its envelope code. Unknown errors map to an
// empty string so callers can fall back to a generic failure.
func Code(err error) string {
	var (
		validation *ValidationError
		auth       *AuthError
		write      *RemoteWriteError
		notFound   *NotFoundError
		duplicate  *DuplicateError
	)
	switch {
	case errors.As(err, &validation):
		return CodeValidation
	case errors.As(err, &auth):
		return CodeAuth
	case errors.As(err, &write):
		return CodeWriteFailed
	case errors.As(err, &notFound):
		return CodeNotFound
	case errors.As(err, &duplicate):
		return CodeDuplicate
	default:
		return ""
	}
}

// FromCode rebuilds a typed error on the console side from an envelope
// code and message returned by the API.
func FromCode(code, message string) error {
	switch code {
	case CodeValidation:
		return &ValidationError{Issues: []FieldIssue{{Reason: message}}}
	case CodeAuth:
		return &AuthError{Reason: message}
	case CodeNotFound:
		return &NotFoundError{Collection: message}
	case CodeDuplicate:
		return &DuplicateError{Field: message}
	case CodeWriteFailed:
		return &RemoteWriteError{Op: "write", Err: errors.New(message)}
	default:
		return errors.New(message)
	}
}
