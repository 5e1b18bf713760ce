package employers

import (
	"strings"
	"time"

	"jobboard/internal/validate"
)

type Employer struct {
	UID                string    `json:"uid"`
	Email              string    `json:"email"`
	CompanyName        string    `json:"companyName"`
	CompanyAddress     string    `json:"company_address"`
	CompanyDescription string    `json:"company_description"`
	CompanyPhone       string    `json:"company_phone"`
	ContactPersonName  string    `json:"contact_person_name"`
	ContactPersonEmail string    `json:"contact_person_email"`
	LinkedinProfile    string    `json:"linkedin_profile"`
	BusinessPermit     string    `json:"business_permit"`
	CompanyLogo        string    `json:"company_logo"`
	Verified           bool      `json:"verified"`
	EmailVerified      bool      `json:"-"`
	PasswordHash       string    `json:"-"`
	CreatedAt          time.Time `json:"-"`
}

// ProfileComplete reports whether every field the employer console
// requires before posting a job is filled in.
func (e Employer) ProfileComplete() bool {
	required := []string{
		e.CompanyName,
		e.Email,
		e.CompanyPhone,
		e.CompanyAddress,
		e.ContactPersonName,
		e.ContactPersonEmail,
		e.CompanyDescription,
		e.BusinessPermit,
		e.CompanyLogo,
	}
	for _, value := range required {
		if strings.TrimSpace(value) == "" {
			return false
		}
	}
	return true
}

type SignupRequest struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

func (r SignupRequest) Validate() error {
	v := validate.New()
	v.Required("companyName", r.CompanyName)
	v.Required("email", r.Email)
	v.Required("password", r.Password)
	if strings.TrimSpace(r.Password) != "" && len(r.Password) < 8 {
		v.Add("password", "must be at least 8 characters")
	}
	return v.Err()
}
