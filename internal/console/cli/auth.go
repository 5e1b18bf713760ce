package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"jobboard/internal/authz"
	"jobboard/internal/console/session"
	"jobboard/internal/domain/employers"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password, prompted when omitted")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		value, err := a.prompt("Email")
		if err != nil {
			return err
		}
		*email = value
	}
	if *password == "" {
		value, err := a.prompt("Password")
		if err != nil {
			return err
		}
		*password = value
	}

	result, err := a.auth.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	rec := session.Record{
		Role:       result.Role,
		Email:      result.Email,
		Token:      result.Token,
		SignedInAt: time.Now().UTC(),
	}
	if result.Employer != nil {
		rec = employerRecord(*result.Employer, result.Token)
	}
	if err := a.store.Put(rec); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	fmt.Fprintf(a.out, "signed in as %s (%s)\n", rec.Email, rec.Role)
	return nil
}

func (a *App) cmdLogout(ctx context.Context) error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "signed out")
	return nil
}

func (a *App) cmdWhoami(ctx context.Context) error {
	id, err := a.store.Resolve()
	if err != nil {
		return err
	}
	switch id.Role {
	case authz.RoleNone:
		fmt.Fprintln(a.out, "not signed in")
	case authz.RoleAdmin:
		fmt.Fprintf(a.out, "admin %s\n", id.Record.Email)
	case authz.RoleEmployer:
		fmt.Fprintf(a.out, "employer %s (%s)\n", id.Record.CompanyName, id.Record.Email)
		if !id.Record.Verified {
			fmt.Fprintln(a.out, "account pending verification")
		}
	}
	return nil
}

func (a *App) cmdSignup(ctx context.Context) error {
	id, err := a.gate("/employer-signup")
	if err != nil {
		return err
	}
	// Signed-in sessions are sent back to their own console instead
	// of the signup view.
	if id.Role != authz.RoleNone {
		return fmt.Errorf("already signed in as %s, log out first", id.Role)
	}

	company, err := a.prompt("Company name")
	if err != nil {
		return err
	}
	email, err := a.prompt("Email")
	if err != nil {
		return err
	}
	password, err := a.prompt("Password")
	if err != nil {
		return err
	}

	uid, err := a.auth.Signup(ctx, employers.SignupRequest{
		CompanyName: company,
		Email:       email,
		Password:    password,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "account %s created, check your email for the verification link\n", uid)
	return nil
}

func (a *App) cmdVerifyEmail(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("verify-email", flag.ContinueOnError)
	fs.SetOutput(a.out)
	token := fs.String("token", "", "verification token from the email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *token == "" {
		return fmt.Errorf("-token is required")
	}
	if err := a.auth.VerifyEmail(ctx, *token); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "email verified, you can sign in now")
	return nil
}

func (a *App) cmdForgotPassword(ctx context.Context, args []string) error {
	if _, err := a.gate("/employer/forgot-password"); err != nil {
		return err
	}

	fs := flag.NewFlagSet("forgot-password", flag.ContinueOnError)
	fs.SetOutput(a.out)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		return fmt.Errorf("-email is required")
	}
	if err := a.auth.ForgotPassword(ctx, *email); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "if that account exists, a reset link is on its way")
	return nil
}

func (a *App) cmdResetPassword(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset-password", flag.ContinueOnError)
	fs.SetOutput(a.out)
	token := fs.String("token", "", "reset token from the email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *token == "" {
		return fmt.Errorf("-token is required")
	}
	password, err := a.prompt("New password")
	if err != nil {
		return err
	}
	if err := a.auth.ResetPassword(ctx, *token, password); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "password updated")
	return nil
}
