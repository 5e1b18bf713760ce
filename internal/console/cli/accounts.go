package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"jobboard/internal/console/gateway"
	"jobboard/internal/console/report"
)

func (a *App) cmdAccounts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("accounts needs a subcommand, run 'help' for usage")
	}

	id, err := a.gate("/admin/accounts")
	if err != nil {
		return err
	}
	api, err := a.api(id)
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return a.accountsList(ctx, api)
	case "delete":
		return a.accountsDelete(ctx, api, args[1:])
	case "export":
		return a.accountsExport(ctx, api, args[1:])
	default:
		return fmt.Errorf("unknown accounts subcommand %q", args[0])
	}
}

func (a *App) accountsList(ctx context.Context, api *gateway.API) error {
	list, err := api.Accounts.List(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "UID\tCOMPANY\tEMAIL\tCONTACT\tVERIFIED")
	for _, e := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", e.UID, e.CompanyName, e.Email, e.ContactPersonName, e.Verified)
	}
	return tw.Flush()
}

func (a *App) accountsDelete(ctx context.Context, api *gateway.API, args []string) error {
	fs := flag.NewFlagSet("accounts delete", flag.ContinueOnError)
	fs.SetOutput(a.out)
	uid := fs.String("uid", "", "employer account to delete")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *uid == "" {
		return fmt.Errorf("-uid is required")
	}

	if !*yes && !a.confirm(fmt.Sprintf("Delete employer account %s? Their job posts stay on the board.", *uid)) {
		fmt.Fprintln(a.out, "kept the account")
		return nil
	}
	if err := api.Accounts.Delete(ctx, *uid); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted %s\n", *uid)
	return nil
}

func (a *App) accountsExport(ctx context.Context, api *gateway.API, args []string) error {
	fs := flag.NewFlagSet("accounts export", flag.ContinueOnError)
	fs.SetOutput(a.out)
	outPath := fs.String("out", "accounts.pdf", "where to write the PDF")
	if err := fs.Parse(args); err != nil {
		return err
	}

	list, err := api.Accounts.List(ctx)
	if err != nil {
		return err
	}

	spec := report.TableSpec{
		Title:       "Employer Accounts Report",
		GeneratedAt: time.Now().UTC(),
		Columns: []report.Column{
			{Header: "Company", MaxChars: 24},
			{Header: "Email", MaxChars: 28},
			{Header: "Address", MaxChars: 22},
			{Header: "Contact", MaxChars: 20},
			{Header: "Verified", Width: 20},
		},
	}
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		verified := "No"
		if e.Verified {
			verified = "Yes"
		}
		rows = append(rows, []string{e.CompanyName, e.Email, e.CompanyAddress, e.ContactPersonName, verified})
	}

	pdf, err := report.Export(spec, rows)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*outPath, pdf, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "wrote %d account(s) to %s\n", len(rows), *outPath)
	return nil
}
