package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"jobboard/internal/console/flow"
	"jobboard/internal/console/gateway"
	"jobboard/internal/console/report"
	"jobboard/internal/domain/announcements"
)

func (a *App) cmdAnnouncements(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("announcements needs a subcommand, run 'help' for usage")
	}

	id, err := a.gate("/admin/announcements")
	if err != nil {
		return err
	}
	api, err := a.api(id)
	if err != nil {
		return err
	}
	ctrl := announcementsController(api)

	switch args[0] {
	case "list":
		return a.announcementsList(ctx, ctrl)
	case "post":
		return a.announcementsPost(ctx, ctrl, args[1:])
	case "edit":
		return a.announcementsEdit(ctx, ctrl, args[1:])
	case "delete":
		return a.announcementsDelete(ctx, ctrl, args[1:])
	case "export":
		return a.announcementsExport(ctx, ctrl, args[1:])
	default:
		return fmt.Errorf("unknown announcements subcommand %q", args[0])
	}
}

func announcementsController(api *gateway.API) *flow.Controller[announcements.Announcement] {
	return flow.New(flow.Config[announcements.Announcement]{
		ID:       func(an announcements.Announcement) string { return an.ID },
		Validate: announcements.ValidateNew,
		List: func(ctx context.Context) ([]announcements.Announcement, error) {
			return api.Announcements.List(ctx, nil)
		},
		Create: api.Announcements.Create,
		Update: api.Announcements.Update,
		Delete: api.Announcements.Delete,
	})
}

func (a *App) announcementsList(ctx context.Context, ctrl *flow.Controller[announcements.Announcement]) error {
	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tLOCATION\tDATE")
	for _, an := range ctrl.Items() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", an.ID, an.Title, an.Location, an.Date.Format("2006-01-02"))
	}
	return tw.Flush()
}

func announcementFlags(fs *flag.FlagSet, an *announcements.Announcement) {
	fs.StringVar(&an.Title, "title", an.Title, "announcement title")
	fs.StringVar(&an.Description, "description", an.Description, "announcement body")
	fs.StringVar(&an.Location, "location", an.Location, "where it applies")
}

func (a *App) announcementsPost(ctx context.Context, ctrl *flow.Controller[announcements.Announcement], args []string) error {
	an := announcements.Announcement{Date: time.Now().UTC()}
	fs := flag.NewFlagSet("announcements post", flag.ContinueOnError)
	fs.SetOutput(a.out)
	announcementFlags(fs, &an)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := ctrl.Create(ctx, an); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "posted %q\n", an.Title)
	return nil
}

func (a *App) announcementsEdit(ctx context.Context, ctrl *flow.Controller[announcements.Announcement], args []string) error {
	fs := flag.NewFlagSet("announcements edit", flag.ContinueOnError)
	fs.SetOutput(a.out)
	anID := fs.String("id", "", "announcement to edit")
	var scratch announcements.Announcement
	announcementFlags(fs, &scratch)

	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *anID == "" {
		return fmt.Errorf("-id is required")
	}

	var current *announcements.Announcement
	for _, an := range ctrl.Items() {
		if an.ID == *anID {
			copied := an
			current = &copied
			break
		}
	}
	if current == nil {
		return fmt.Errorf("announcement %s not found", *anID)
	}

	fs2 := flag.NewFlagSet("announcements edit", flag.ContinueOnError)
	fs2.SetOutput(a.out)
	fs2.String("id", "", "announcement to edit")
	announcementFlags(fs2, current)
	if err := fs2.Parse(args); err != nil {
		return err
	}

	if err := ctrl.Update(ctx, *current); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "updated %s\n", current.ID)
	return nil
}

func (a *App) announcementsDelete(ctx context.Context, ctrl *flow.Controller[announcements.Announcement], args []string) error {
	fs := flag.NewFlagSet("announcements delete", flag.ContinueOnError)
	fs.SetOutput(a.out)
	anID := fs.String("id", "", "announcement to delete")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *anID == "" {
		return fmt.Errorf("-id is required")
	}

	if err := ctrl.Load(ctx); err != nil {
		return err
	}
	confirm := func() bool {
		if *yes {
			return true
		}
		return a.confirm(fmt.Sprintf("Delete announcement %s?", *anID))
	}
	if err := ctrl.Delete(ctx, *anID, confirm); err != nil {
		if err == flow.ErrDeclined {
			fmt.Fprintln(a.out, "kept the announcement")
			return nil
		}
		return err
	}
	fmt.Fprintf(a.out, "deleted %s\n", *anID)
	return nil
}

func (a *App) announcementsExport(ctx context.Context, ctrl *flow.Controller[announcements.Announcement], args []string) error {
	fs := flag.NewFlagSet("announcements export", flag.ContinueOnError)
	fs.SetOutput(a.out)
	outPath := fs.String("out", "announcements.pdf", "where to write the PDF")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := ctrl.Load(ctx); err != nil {
		return err
	}

	spec := report.TableSpec{
		Title:       "Announcements Report",
		GeneratedAt: time.Now().UTC(),
		Columns: []report.Column{
			{Header: "Title", MaxChars: 26},
			{Header: "Description", MaxChars: 48},
			{Header: "Location", MaxChars: 18},
			{Header: "Date", Width: 24},
		},
	}
	items := ctrl.Items()
	rows := make([][]string, 0, len(items))
	for _, an := range items {
		rows = append(rows, []string{an.Title, an.Description, an.Location, an.Date.Format("2006-01-02")})
	}

	pdf, err := report.Export(spec, rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*outPath, pdf, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "wrote %d announcement(s) to %s\n", len(rows), *outPath)
	return nil
}
