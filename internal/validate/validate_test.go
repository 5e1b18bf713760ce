package validate

import (
	"errors"
	"testing"

	"jobboard/internal/faults"
)

func TestRequired(t *testing.T) {
	v := New()
	v.Required("title", "Engineer")
	v.Required("location", "   ")
	v.Required("company", "")

	issues := v.Issues()
	if len(issues) != 2 {
		t.Fatalf("expected 2 issues, got %d", len(issues))
	}
	// sorted by field
	if issues[0].Field != "company" || issues[1].Field != "location" {
		t.Fatalf("unexpected issue order: %+v", issues)
	}
}

func TestEnumSkipsEmptyValue(t *testing.T) {
	v := New()
	v.Enum("jobType", "", []string{"Full-time", "Part-time", "Contract"})
	if v.HasIssues() {
		t.Fatal("empty value should not trip enum check")
	}

	v.Enum("jobType", "full-TIME", []string{"Full-time", "Part-time", "Contract"})
	if v.HasIssues() {
		t.Fatal("enum match should be case-insensitive")
	}

	v.Enum("jobType", "Internship", []string{"Full-time", "Part-time", "Contract"})
	if !v.HasIssues() {
		t.Fatal("expected issue for unknown enum value")
	}
}

func TestErr(t *testing.T) {
	v := New()
	if v.Err() != nil {
		t.Fatal("expected nil error with no issues")
	}

	v.Required("title", "")
	err := v.Err()
	var validation *faults.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(validation.Issues) != 1 {
		t.Fatalf("expected 1 issue, got %d", len(validation.Issues))
	}
}
