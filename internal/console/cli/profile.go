package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jobboard/internal/authz"
	"jobboard/internal/console/gateway"
	"jobboard/internal/console/session"
	"jobboard/internal/domain/employers"
)

func employerRecord(e employers.Employer, token string) session.Record {
	return session.Record{
		Role:               string(authz.RoleEmployer),
		Email:              e.Email,
		Token:              token,
		UID:                e.UID,
		CompanyName:        e.CompanyName,
		CompanyAddress:     e.CompanyAddress,
		CompanyDescription: e.CompanyDescription,
		CompanyPhone:       e.CompanyPhone,
		ContactPersonName:  e.ContactPersonName,
		ContactPersonEmail: e.ContactPersonEmail,
		LinkedinProfile:    e.LinkedinProfile,
		BusinessPermit:     e.BusinessPermit,
		CompanyLogo:        e.CompanyLogo,
		Verified:           e.Verified,
		SignedInAt:         time.Now().UTC(),
	}
}

func (a *App) cmdProfile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("profile needs a subcommand, run 'help' for usage")
	}

	id, err := a.gate("/employer/profile")
	if err != nil {
		return err
	}
	api, err := a.api(id)
	if err != nil {
		return err
	}

	switch args[0] {
	case "show":
		return a.profileShow(ctx, api)
	case "update":
		return a.profileUpdate(ctx, id, api, args[1:])
	default:
		return fmt.Errorf("unknown profile subcommand %q", args[0])
	}
}

func (a *App) profileShow(ctx context.Context, api *gateway.API) error {
	e, err := api.Profile.Get(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Company:        %s\n", e.CompanyName)
	fmt.Fprintf(a.out, "Email:          %s\n", e.Email)
	fmt.Fprintf(a.out, "Address:        %s\n", e.CompanyAddress)
	fmt.Fprintf(a.out, "Description:    %s\n", e.CompanyDescription)
	fmt.Fprintf(a.out, "Phone:          %s\n", e.CompanyPhone)
	fmt.Fprintf(a.out, "Contact person: %s <%s>\n", e.ContactPersonName, e.ContactPersonEmail)
	fmt.Fprintf(a.out, "LinkedIn:       %s\n", e.LinkedinProfile)
	fmt.Fprintf(a.out, "Logo:           %s\n", e.CompanyLogo)
	fmt.Fprintf(a.out, "Permit:         %s\n", e.BusinessPermit)
	fmt.Fprintf(a.out, "Verified:       %t\n", e.Verified)
	if !e.ProfileComplete() {
		fmt.Fprintln(a.out, "profile incomplete: job posting is locked until every field above is filled in")
	}
	return nil
}

func (a *App) profileUpdate(ctx context.Context, id session.Identity, api *gateway.API, args []string) error {
	current, err := api.Profile.Get(ctx)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("profile update", flag.ContinueOnError)
	fs.SetOutput(a.out)
	fs.StringVar(&current.CompanyName, "company", current.CompanyName, "company name")
	fs.StringVar(&current.CompanyAddress, "address", current.CompanyAddress, "company address")
	fs.StringVar(&current.CompanyDescription, "description", current.CompanyDescription, "company description")
	fs.StringVar(&current.CompanyPhone, "phone", current.CompanyPhone, "company phone")
	fs.StringVar(&current.ContactPersonName, "contact-name", current.ContactPersonName, "contact person name")
	fs.StringVar(&current.ContactPersonEmail, "contact-email", current.ContactPersonEmail, "contact person email")
	fs.StringVar(&current.LinkedinProfile, "linkedin", current.LinkedinProfile, "LinkedIn profile URL")
	fs.StringVar(&current.CompanyLogo, "logo", current.CompanyLogo, "company logo URL")
	fs.StringVar(&current.BusinessPermit, "permit", current.BusinessPermit, "business permit URL")
	if err := fs.Parse(args); err != nil {
		return err
	}

	stored, err := api.Profile.Update(ctx, current)
	if err != nil {
		return err
	}

	// Keep the cached session in step with what the server kept.
	if err := a.store.Put(employerRecord(stored, id.Record.Token)); err != nil {
		return fmt.Errorf("refresh session: %w", err)
	}

	fmt.Fprintln(a.out, "profile updated")
	if !stored.ProfileComplete() {
		fmt.Fprintln(a.out, "profile still incomplete: job posting stays locked")
	}
	return nil
}

func (a *App) cmdUpload(ctx context.Context, args []string) error {
	id, err := a.gate(areaView(a.roleForJobs(), "uploads"))
	if err != nil {
		return err
	}
	api, err := a.api(id)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	fs.SetOutput(a.out)
	folder := fs.String("folder", "", "company-logo or business-permit")
	path := fs.String("file", "", "file to upload")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *folder == "" || *path == "" {
		return fmt.Errorf("-folder and -file are required")
	}

	f, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer f.Close()

	url, err := api.Uploads.Send(ctx, *folder, filepath.Base(*path), f)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "uploaded to %s\n", url)
	return nil
}
