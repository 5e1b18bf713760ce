// Package validate collects field issues for the client-side checks the
// consoles run before any remote call. Domain packages build a Validator,
// add their rules, and convert the result into a faults.ValidationError.
package validate

import (
	"sort"
	"strings"

	"jobboard/internal/faults"
)

type Validator struct {
	issues []faults.FieldIssue
}

func New() *Validator {
	return &Validator{issues: make([]faults.FieldIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil {
		return
	}
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, faults.FieldIssue{Field: field, Reason: reason})
}

func (v *Validator) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

func (v *Validator) Enum(field, value string, allowed []string) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" {
		return
	}
	for _, candidate := range allowed {
		if normalized == strings.ToLower(strings.TrimSpace(candidate)) {
			return
		}
	}
	v.Add(field, "must be one of "+strings.Join(allowed, ", "))
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []faults.FieldIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]faults.FieldIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

// Err returns a ValidationError carrying the sorted issues, or nil when
// every rule passed.
func (v *Validator) Err() error {
	if !v.HasIssues() {
		return nil
	}
	return &faults.ValidationError{Issues: v.Issues()}
}
