package cli

import (
	"context"
	"fmt"
)

const usage = `jobboard console

Session:
  login      -email <email> [-password <password>]
  logout
  whoami
  signup
  verify-email     -token <token>
  forgot-password  -email <email>
  reset-password   -token <token>

Jobs (admin and employer):
  jobs list    [-status open|closed]
  jobs count   [-status open|closed]
  jobs post    [flags, see jobs post -h]
  jobs edit    -id <jobID> [flags]
  jobs toggle  -id <jobID> -open <true|false>
  jobs delete  -id <jobID> [-yes]
  jobs export  -out <file.pdf> [-status open|closed]
  jobs applicants       -id <jobID> [-out <file.pdf>]   (admin)
  jobs applicant-count  -id <jobID>

Admin only:
  announcements list
  announcements post    -title <t> -description <d> -location <l>
  announcements edit    -id <announcementID> [flags]
  announcements delete  -id <announcementID> [-yes]
  announcements export  -out <file.pdf>
  accounts list
  accounts delete  -uid <employerUID> [-yes]
  accounts export  -out <file.pdf>

Employer only:
  profile show
  profile update   [flags, see profile update -h]
  upload -folder <company-logo|business-permit> -file <path>
`

// Run dispatches one command invocation.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return nil
	}

	switch args[0] {
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	case "login":
		return a.cmdLogin(ctx, args[1:])
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "signup":
		return a.cmdSignup(ctx)
	case "verify-email":
		return a.cmdVerifyEmail(ctx, args[1:])
	case "forgot-password":
		return a.cmdForgotPassword(ctx, args[1:])
	case "reset-password":
		return a.cmdResetPassword(ctx, args[1:])
	case "jobs":
		return a.cmdJobs(ctx, args[1:])
	case "announcements":
		return a.cmdAnnouncements(ctx, args[1:])
	case "accounts":
		return a.cmdAccounts(ctx, args[1:])
	case "profile":
		return a.cmdProfile(ctx, args[1:])
	case "upload":
		return a.cmdUpload(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q, run 'help' for usage", args[0])
	}
}
