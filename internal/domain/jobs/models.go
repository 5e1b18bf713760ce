package jobs

import (
	"time"

	"jobboard/internal/validate"
)

var (
	JobTypes         = []string{"Full-time", "Part-time", "Contract"}
	ExperienceLevels = []string{"Beginner", "Intermediate", "Expert"}
)

type Job struct {
	ID               string    `json:"id"`
	Company          string    `json:"company"`
	Title            string    `json:"job_title"`
	Description      string    `json:"job_description"`
	Category         string    `json:"job_category"`
	Type             string    `json:"job_type"`
	Location         string    `json:"location"`
	SalaryMin        float64   `json:"salary_min"`
	SalaryMax        float64   `json:"salary_max"`
	Skills           string    `json:"skills"`
	Experience       string    `json:"experience"`
	Logo             string    `json:"logo"`
	DatePosted       time.Time `json:"date_posted"`
	IsOpen           bool      `json:"isOpen"`
	OwnerEmployerUID string    `json:"owner_employer_uid,omitempty"`
}

// ValidateNew holds the canonical rule set for posting a job: the
// original consoles disagreed between the admin and employer forms, so
// the stricter of the two wins. Salary bounds are intentionally not
// cross-checked against each other.
func ValidateNew(job Job) error {
	v := validate.New()
	v.Required("company", job.Company)
	v.Required("job_title", job.Title)
	v.Required("job_description", job.Description)
	v.Required("location", job.Location)
	v.Required("logo", job.Logo)
	v.Enum("job_type", job.Type, JobTypes)
	v.Enum("experience", job.Experience, ExperienceLevels)
	return v.Err()
}
