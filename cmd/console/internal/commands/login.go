package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/openpos/poscon/internal/authflow"
)

// LoginCmd authenticates against the platform.
type LoginCmd struct {
	Username string `arg:"" help:"Username to log in as"`
	Password string `help:"Password (read from stdin when omitted)"`
}

func (l *LoginCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	password := l.Password
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	phase, err := a.Flow.Login(ctx, l.Username, password)
	if err != nil {
		return err
	}

	user := a.Sessions.GetCurrentUser()

	switch phase {
	case authflow.PhaseScoped:
		org := user.OrganizationName
		if org == "" {
			org = a.Orgs.SelectedOrganizer()
		}
		fmt.Printf("Logged in as %s (organization: %s)\n", user.Username, org)

	case authflow.PhaseUnscoped:
		fmt.Printf("Logged in as %s (global admin)\n", user.Username)
		fmt.Println()
		fmt.Println("No organization selected yet. To work with tenant data:")
		fmt.Println("  poscon org list")
		fmt.Println("  poscon org switch <id>")

	case authflow.PhasePendingOrganizationChoice:
		fmt.Printf("Logged in as %s. Choose an organization:\n\n", user.Username)
		printOrganizationOptions(a)
		fmt.Println()
		fmt.Println("Then run:")
		fmt.Println("  poscon org select <id>")
	}

	return nil
}

func printOrganizationOptions(a *app) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tROLES")
	for _, option := range a.Flow.PendingOrganizations() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", option.ID, option.Name, strings.Join(option.Roles, ", "))
	}
	w.Flush()
}

// LogoutCmd clears the session and the organizer selection.
type LogoutCmd struct{}

func (l *LogoutCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.Flow.Logout(); err != nil {
		return err
	}

	fmt.Println("Logged out.")
	return nil
}

// WhoamiCmd shows the current session.
type WhoamiCmd struct{}

func (w *WhoamiCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireSession(); err != nil {
		return err
	}

	user := a.Sessions.GetCurrentUser()

	fmt.Printf("Username:     %s\n", user.Username)
	fmt.Printf("Email:        %s\n", user.Email)
	if user.FullName != "" {
		fmt.Printf("Full name:    %s\n", user.FullName)
	}
	fmt.Printf("Global admin: %t\n", user.IsGlobalAdmin)

	if user.IsGlobalAdmin {
		selected := a.Orgs.SelectedOrganizer()
		if selected == "" {
			selected = "(none)"
		}
		fmt.Printf("Organization: %s\n", selected)
	} else {
		fmt.Printf("Organization: %s (%s)\n", user.OrganizationName, user.OrganizationID)
	}

	if len(user.Roles) > 0 {
		fmt.Printf("Roles:        %s\n", strings.Join(user.Roles, ", "))
	}
	if len(user.Permissions) > 0 {
		fmt.Printf("Permissions:  %s\n", strings.Join(user.Permissions, ", "))
	}
	if expiry, ok := a.Sessions.TokenExpiry(); ok {
		fmt.Printf("Token expiry: %s\n", expiry.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Printf("Phase:        %s\n", a.Flow.Phase())

	return nil
}
