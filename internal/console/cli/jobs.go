package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"jobboard/internal/authz"
	"jobboard/internal/console/flow"
	"jobboard/internal/console/gateway"
	"jobboard/internal/console/report"
	"jobboard/internal/console/session"
	"jobboard/internal/domain/jobs"
)

func (a *App) cmdJobs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("jobs needs a subcommand, run 'help' for usage")
	}

	id, err := a.gate(areaView(a.roleForJobs(), "jobs"))
	if err != nil {
		return err
	}
	api, err := a.api(id)
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return a.jobsList(ctx, api, args[1:])
	case "count":
		return a.jobsCount(ctx, api, args[1:])
	case "post":
		return a.jobsPost(ctx, id, api, args[1:])
	case "edit":
		return a.jobsEdit(ctx, api, args[1:])
	case "toggle":
		return a.jobsToggle(ctx, api, args[1:])
	case "delete":
		return a.jobsDelete(ctx, api, args[1:])
	case "export":
		return a.jobsExport(ctx, api, args[1:])
	case "applicants":
		return a.jobsApplicants(ctx, id, api, args[1:])
	case "applicant-count":
		return a.jobsApplicantCount(ctx, api, args[1:])
	default:
		return fmt.Errorf("unknown jobs subcommand %q", args[0])
	}
}

// roleForJobs picks the area to gate against without trusting the
// command line: whatever role the session resolves to is the one that
// must pass the gate.
func (a *App) roleForJobs() authz.Role {
	id, err := a.store.Resolve()
	if err != nil || id.Role == authz.RoleNone {
		return authz.RoleAdmin
	}
	return id.Role
}

func jobsController(api *gateway.API, status string) *flow.Controller[jobs.Job] {
	return flow.New(flow.Config[jobs.Job]{
		ID:       func(j jobs.Job) string { return j.ID },
		Validate: jobs.ValidateNew,
		List: func(ctx context.Context) ([]jobs.Job, error) {
			return api.Jobs.ListByStatus(ctx, status)
		},
		Create: api.Jobs.Create,
		Update: api.Jobs.Update,
		Delete: api.Jobs.Delete,
	})
}

func (a *App) jobsList(ctx context.Context, api *gateway.API, args []string) error {
	fs := flag.NewFlagSet("jobs list", flag.ContinueOnError)
	fs.SetOutput(a.out)
	status := fs.String("status", "", "filter: open or closed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctrl := jobsController(api, *status)
	if err := ctrl.Load(ctx); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPANY\tTITLE\tTYPE\tLOCATION\tSTATUS\tPOSTED")
	for _, j := range ctrl.Items() {
		status := "closed"
		if j.IsOpen {
			status = "open"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.Company, j.Title, j.Type, j.Location, status, j.DatePosted.Format("2006-01-02"))
	}
	return tw.Flush()
}

func (a *App) jobsCount(ctx context.Context, api *gateway.API, args []string) error {
	fs := flag.NewFlagSet("jobs count", flag.ContinueOnError)
	fs.SetOutput(a.out)
	status := fs.String("status", "", "filter: open or closed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var filter *gateway.Filter
	if *status != "" {
		filter = &gateway.Filter{Field: "status", Value: *status}
	}
	total, err := api.Jobs.Count(ctx, filter)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d job(s)\n", total)
	return nil
}

func jobFlags(fs *flag.FlagSet, j *jobs.Job) {
	fs.StringVar(&j.Company, "company", j.Company, "company name")
	fs.StringVar(&j.Title, "title", j.Title, "job title")
	fs.StringVar(&j.Description, "description", j.Description, "job description")
	fs.StringVar(&j.Category, "category", j.Category, "job category")
	fs.StringVar(&j.Type, "type", j.Type, "Full-time, Part-time or Contract")
	fs.StringVar(&j.Location, "location", j.Location, "job location")
	fs.Float64Var(&j.SalaryMin, "salary-min", j.SalaryMin, "salary range lower bound")
	fs.Float64Var(&j.SalaryMax, "salary-max", j.SalaryMax, "salary range upper bound")
	fs.StringVar(&j.Skills, "skills", j.Skills, "required skills")
	fs.StringVar(&j.Experience, "experience", j.Experience, "Beginner, Intermediate or Expert")
	fs.StringVar(&j.Logo, "logo", j.Logo, "company logo URL")
}

func (a *App) jobsPost(ctx context.Context, id session.Identity, api *gateway.API, args []string) error {
	var job jobs.Job
	// Employers post under their own letterhead unless they say
	// otherwise.
	if id.Role == authz.RoleEmployer {
		job.Company = id.Record.CompanyName
		job.Logo = id.Record.CompanyLogo
	}

	fs := flag.NewFlagSet("jobs post", flag.ContinueOnError)
	fs.SetOutput(a.out)
	jobFlags(fs, &job)
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctrl := jobsController(api, "")
	if err := ctrl.Create(ctx, job); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "posted %q, %d job(s) on the board\n", job.Title, len(ctrl.Items()))
	return nil
}

func (a *App) jobsEdit(ctx context.Context, api *gateway.API, args []string) error {
	// Parse twice: the first pass only extracts the ID, the second
	// applies the edit flags on top of the stored record.
	fs := flag.NewFlagSet("jobs edit", flag.ContinueOnError)
	fs.SetOutput(a.out)
	jobID := fs.String("id", "", "job to edit")
	var scratch jobs.Job
	jobFlags(fs, &scratch)

	ctrl := jobsController(api, "")
	if err := ctrl.Load(ctx); err != nil {
		return err
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobID == "" {
		return fmt.Errorf("-id is required")
	}

	var current *jobs.Job
	for _, j := range ctrl.Items() {
		if j.ID == *jobID {
			copied := j
			current = &copied
			break
		}
	}
	if current == nil {
		return fmt.Errorf("job %s not found", *jobID)
	}

	fs2 := flag.NewFlagSet("jobs edit", flag.ContinueOnError)
	fs2.SetOutput(a.out)
	fs2.String("id", "", "job to edit")
	jobFlags(fs2, current)
	if err := fs2.Parse(args); err != nil {
		return err
	}

	if err := ctrl.Update(ctx, *current); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "updated %s\n", current.ID)
	return nil
}

func (a *App) jobsToggle(ctx context.Context, api *gateway.API, args []string) error {
	fs := flag.NewFlagSet("jobs toggle", flag.ContinueOnError)
	fs.SetOutput(a.out)
	jobID := fs.String("id", "", "job to toggle")
	open := fs.String("open", "", "desired state: true or false")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobID == "" || *open == "" {
		return fmt.Errorf("-id and -open are required")
	}
	desired, err := strconv.ParseBool(*open)
	if err != nil {
		return fmt.Errorf("-open must be true or false")
	}

	ctrl := jobsController(api, "")
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	var current *jobs.Job
	for _, j := range ctrl.Items() {
		if j.ID == *jobID {
			copied := j
			current = &copied
			break
		}
	}
	if current == nil {
		return fmt.Errorf("job %s not found", *jobID)
	}

	current.IsOpen = desired
	err = ctrl.UpdateWith(ctx, *current, func(ctx context.Context) error {
		return api.Jobs.Toggle(ctx, *jobID, desired)
	})
	if err != nil {
		return err
	}
	state := "closed"
	if desired {
		state = "open"
	}
	fmt.Fprintf(a.out, "job %s is now %s\n", *jobID, state)
	return nil
}

func (a *App) jobsDelete(ctx context.Context, api *gateway.API, args []string) error {
	fs := flag.NewFlagSet("jobs delete", flag.ContinueOnError)
	fs.SetOutput(a.out)
	jobID := fs.String("id", "", "job to delete")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobID == "" {
		return fmt.Errorf("-id is required")
	}

	ctrl := jobsController(api, "")
	if err := ctrl.Load(ctx); err != nil {
		return err
	}

	confirm := func() bool {
		if *yes {
			return true
		}
		return a.confirm(fmt.Sprintf("Delete job %s? Applications already submitted stay behind.", *jobID))
	}
	if err := ctrl.Delete(ctx, *jobID, confirm); err != nil {
		if err == flow.ErrDeclined {
			fmt.Fprintln(a.out, "kept the job")
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "deleted %s\n", *jobID)
	return nil
}

func (a *App) jobsExport(ctx context.Context, api *gateway.API, args []string) error {
	fs := flag.NewFlagSet("jobs export", flag.ContinueOnError)
	fs.SetOutput(a.out)
	outPath := fs.String("out", "jobs.pdf", "where to write the PDF")
	status := fs.String("status", "", "filter: open or closed")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := api.Jobs.ListByStatus(ctx, *status)
	if err != nil {
		return err
	}

	spec := report.TableSpec{
		Title:       "Job Listings Report",
		GeneratedAt: time.Now().UTC(),
		Columns: []report.Column{
			{Header: "Company", MaxChars: 22},
			{Header: "Title", MaxChars: 26},
			{Header: "Category", MaxChars: 16},
			{Header: "Location", MaxChars: 18},
			{Header: "Salary", Width: 30},
			{Header: "Status", Width: 16},
			{Header: "Posted", Width: 22},
		},
	}
	rows := make([][]string, 0, len(list))
	for _, j := range list {
		status := "Closed"
		if j.IsOpen {
			status = "Open"
		}
		rows = append(rows, []string{
			j.Company, j.Title, j.Category, j.Location,
			fmt.Sprintf("%.0f-%.0f", j.SalaryMin, j.SalaryMax),
			status, j.DatePosted.Format("2006-01-02"),
		})
	}

	pdf, err := report.Export(spec, rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*outPath, pdf, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "wrote %d job(s) to %s\n", len(rows), *outPath)
	return nil
}

func (a *App) jobsApplicants(ctx context.Context, id session.Identity, api *gateway.API, args []string) error {
	if id.Role != authz.RoleAdmin {
		return fmt.Errorf("only the admin console lists applicant details")
	}

	fs := flag.NewFlagSet("jobs applicants", flag.ContinueOnError)
	fs.SetOutput(a.out)
	jobID := fs.String("id", "", "job whose applicants to list")
	outPath := fs.String("out", "", "write a PDF here instead of listing")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobID == "" {
		return fmt.Errorf("-id is required")
	}

	list, err := api.Jobs.Applications(ctx, *jobID)
	if err != nil {
		return err
	}

	if *outPath != "" {
		spec := report.TableSpec{
			Title:       "Job Applicants Report",
			GeneratedAt: time.Now().UTC(),
			Columns: []report.Column{
				{Header: "Name", MaxChars: 24},
				{Header: "Email", MaxChars: 28},
				{Header: "Contact", MaxChars: 16},
				{Header: "Address", MaxChars: 28},
				{Header: "Submitted", Width: 28},
			},
		}
		rows := make([][]string, 0, len(list))
		for _, app := range list {
			rows = append(rows, []string{
				app.ApplicantName, app.ApplicantEmail, app.ApplicantContact,
				app.ApplicantAddress, app.SubmittedAt.Format("2006-01-02 15:04"),
			})
		}
		pdf, err := report.Export(spec, rows)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*outPath, pdf, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "wrote %d applicant(s) to %s\n", len(rows), *outPath)
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEMAIL\tCONTACT\tRESUME\tSUBMITTED")
	for _, app := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			app.ApplicantName, app.ApplicantEmail, app.ApplicantContact,
			app.ResumeLink, app.SubmittedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func (a *App) jobsApplicantCount(ctx context.Context, api *gateway.API, args []string) error {
	fs := flag.NewFlagSet("jobs applicant-count", flag.ContinueOnError)
	fs.SetOutput(a.out)
	jobID := fs.String("id", "", "job to count applicants for")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobID == "" {
		return fmt.Errorf("-id is required")
	}

	count, err := api.Jobs.ApplicationsCount(ctx, *jobID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d applicant(s)\n", count)
	return nil
}
