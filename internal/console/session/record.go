package session

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/authz"
)

// Record is a persisted sign-in for one role. Admin sessions carry only
// the email and token; employer sessions additionally carry the cached
// profile so commands can render it without a round trip.
type Record struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	Token string `json:"token"`

	// Employer-only fields. Zero for admin records.
	UID                string    `json:"uid,omitempty"`
	CompanyName        string    `json:"companyName,omitempty"`
	CompanyAddress     string    `json:"company_address,omitempty"`
	CompanyDescription string    `json:"company_description,omitempty"`
	CompanyPhone       string    `json:"company_phone,omitempty"`
	ContactPersonName  string    `json:"contact_person_name,omitempty"`
	ContactPersonEmail string    `json:"contact_person_email,omitempty"`
	LinkedinProfile    string    `json:"linkedin_profile,omitempty"`
	BusinessPermit     string    `json:"business_permit,omitempty"`
	CompanyLogo        string    `json:"company_logo,omitempty"`
	Verified           bool      `json:"verified,omitempty"`
	SignedInAt         time.Time `json:"signedInAt,omitempty"`
}

// Validate checks that the record is internally consistent for its role.
func (r Record) Validate() error {
	switch r.Role {
	case string(authz.RoleAdmin):
		if strings.TrimSpace(r.Email) == "" {
			return fmt.Errorf("admin record requires an email")
		}
	case string(authz.RoleEmployer):
		if strings.TrimSpace(r.UID) == "" {
			return fmt.Errorf("employer record requires a uid")
		}
	default:
		return fmt.Errorf("unknown session role %q", r.Role)
	}
	return nil
}

func (r Record) encode() ([]byte, error) {
	return json.Marshal(r)
}

func decodeRecord(raw []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(raw, &r); err != nil {
		return Record{}, fmt.Errorf("corrupt session record: %w", err)
	}
	return r, nil
}
