package cli

import (
	"flag"
	"io"
	"strings"
	"testing"

	"jobboard/internal/domain/jobs"
)

// The flag help must only advertise values validation accepts.
func TestJobFlagHelpMatchesAcceptedValues(t *testing.T) {
	fs := flag.NewFlagSet("jobs post", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var job jobs.Job
	jobFlags(fs, &job)

	typeHelp := fs.Lookup("type").Usage
	for _, v := range jobs.JobTypes {
		if !strings.Contains(typeHelp, v) {
			t.Errorf("type help %q missing accepted value %q", typeHelp, v)
		}
	}
	expHelp := fs.Lookup("experience").Usage
	for _, v := range jobs.ExperienceLevels {
		if !strings.Contains(expHelp, v) {
			t.Errorf("experience help %q missing accepted value %q", expHelp, v)
		}
	}
	for _, stale := range []string{"Internship", "Entry", "Senior", "Executive"} {
		if strings.Contains(typeHelp, stale) || strings.Contains(expHelp, stale) {
			t.Errorf("help still advertises %q, which validation rejects", stale)
		}
	}
}
