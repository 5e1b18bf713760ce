package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"
)

func sampleSpec() TableSpec {
	return TableSpec{
		Title:       "Job Listings Report",
		GeneratedAt: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
		Columns: []Column{
			{Header: "Company", MaxChars: 20},
			{Header: "Title", MaxChars: 25},
			{Header: "Salary", Width: 25},
			{Header: "Posted", Width: 28},
		},
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten chars!", 18, "exactly ten chars!"},
		{"a description that runs long", 10, "a descript..."},
		{"never cut when zero", 0, "never cut when zero"},
		{"ünïcødé safe trüncatïon", 7, "ünïcødé..."},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestColumnWidths(t *testing.T) {
	cols := []Column{{Width: 30}, {}, {}}
	widths := columnWidths(cols, 190)
	if widths[0] != 30 {
		t.Errorf("fixed width changed: %v", widths)
	}
	if widths[1] != 80 || widths[2] != 80 {
		t.Errorf("leftover not split evenly: %v", widths)
	}
}

func TestExportDeterministic(t *testing.T) {
	rows := [][]string{
		{"Acme Construction", "Site Welder", "25000", "2025-03-01"},
		{"Harbor Logistics", "Forklift Operator", "18000", "2025-02-20"},
	}
	first, err := Export(sampleSpec(), rows)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	second, err := Export(sampleSpec(), rows)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(first) == 0 {
		t.Fatalf("empty pdf")
	}
	if !bytes.Equal(first, second) {
		t.Errorf("same input produced different bytes")
	}
}

func TestExportPaginatesWithRepeatedHeader(t *testing.T) {
	var rows [][]string
	for i := 0; i < 120; i++ {
		rows = append(rows, []string{fmt.Sprintf("Company %d", i), "Role", "10000", "2025-01-01"})
	}
	pdf, err := build(sampleSpec(), rows)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if pdf.PageCount() < 2 {
		t.Errorf("120 rows fit on %d page(s)", pdf.PageCount())
	}
}

func TestExportRejectsOversizedRow(t *testing.T) {
	rows := [][]string{{"a", "b", "c", "d", "extra"}}
	if _, err := Export(sampleSpec(), rows); err == nil {
		t.Errorf("expected error for row wider than the column set")
	}

	// Short rows pad out instead of failing.
	if _, err := Export(sampleSpec(), [][]string{{"only company"}}); err != nil {
		t.Errorf("short row rejected: %v", err)
	}
}
