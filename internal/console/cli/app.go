// Package cli implements the administration console commands. Every
// command resolves the stored session first and runs its target view
// through the role gate, so a stale or foreign session can never reach
// a view it should not see.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"jobboard/internal/authz"
	"jobboard/internal/console/gateway"
	"jobboard/internal/console/session"
)

type App struct {
	cfg    Config
	store  *session.Store
	client *gateway.Client
	auth   gateway.Auth

	in  *bufio.Reader
	out io.Writer
}

func NewApp(cfg Config, store *session.Store, in io.Reader, out io.Writer) *App {
	app := &App{
		cfg:   cfg,
		store: store,
		in:    bufio.NewReader(in),
		out:   out,
	}
	app.client = gateway.New(cfg.APIBaseURL, app.sessionToken)
	app.auth = gateway.NewAuth(app.client)
	return app
}

// sessionToken reads the token from the stored session on every
// request, so a login or logout takes effect without restarting.
func (a *App) sessionToken() string {
	id, err := a.store.Resolve()
	if err != nil {
		return ""
	}
	return id.Record.Token
}

// gate resolves the identity and checks it against the view the
// command is about to operate. Denied navigations come back as an
// error naming the login view, mirroring the redirect a browser
// console would do.
func (a *App) gate(view string) (session.Identity, error) {
	id, err := a.store.Resolve()
	if err != nil {
		return session.Identity{}, fmt.Errorf("read session: %w", err)
	}
	decision := authz.Decide(id.Role, view)
	if !decision.Allowed {
		if id.Role == authz.RoleNone {
			return session.Identity{}, fmt.Errorf("not signed in, use the login command")
		}
		return session.Identity{}, fmt.Errorf("the %s session cannot open %s", id.Role, view)
	}
	return id, nil
}

// api builds the gateway surface for the resolved role.
func (a *App) api(id session.Identity) (*gateway.API, error) {
	return gateway.ForRole(a.client, id.Role)
}

// areaView prefixes a view name with the role's area.
func areaView(role authz.Role, view string) string {
	return "/" + string(role) + "/" + view
}

// confirm asks a yes/no question on the console and treats anything
// but an explicit yes as a no.
func (a *App) confirm(prompt string) bool {
	fmt.Fprintf(a.out, "%s [y/N]: ", prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// prompt reads one line of input with a label.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
