package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// OrgCmd manages the session's organization scope.
type OrgCmd struct {
	List   OrgListCmd   `cmd:"" help:"List organizations available to this session"`
	Select OrgSelectCmd `cmd:"" help:"Commit one of the organizations offered at login"`
	Switch OrgSwitchCmd `cmd:"" help:"Switch tenant context (global admins only)"`
	Show   OrgShowCmd   `cmd:"" help:"Show the current organization scope"`
}

// OrgListCmd lists the tenant choices: the pending options for a user
// mid-login, or the full organizer catalog for a global admin.
type OrgListCmd struct {
	Page     int `help:"Page number" default:"1"`
	PageSize int `help:"Organizers per page" default:"20"`
}

func (o *OrgListCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireSession(); err != nil {
		return err
	}

	if pending := a.Flow.PendingOrganizations(); len(pending) > 0 {
		fmt.Println("Organizations offered at login:")
		fmt.Println()
		printOrganizationOptions(a)
		fmt.Println()
		fmt.Println("Commit one with 'poscon org select <id>'.")
		return nil
	}

	user := a.Sessions.GetCurrentUser()
	if !user.IsGlobalAdmin {
		fmt.Printf("Fixed organization: %s (%s)\n", user.OrganizationName, user.OrganizationID)
		return nil
	}

	page, err := a.API.ListOrganizers(ctx, o.Page, o.PageSize)
	if err != nil {
		return fmt.Errorf("failed to list organizers: %w", err)
	}

	if len(page.Items) == 0 {
		fmt.Println("No organizers found.")
		return nil
	}

	selected := a.Orgs.SelectedOrganizer()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTAX ID\tSTATUS\tSELECTED")
	for _, org := range page.Items {
		mark := ""
		if org.ID == selected {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", org.ID, org.Name, org.TaxID, activeLabel(org.IsActive), mark)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(pageFooter(page.PageNumber, page.TotalPages, page.TotalItems))
	return nil
}

// OrgSelectCmd consumes the pending-organizations list.
type OrgSelectCmd struct {
	ID string `arg:"" help:"Organization id to select"`
}

func (o *OrgSelectCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireSession(); err != nil {
		return err
	}

	if err := a.Flow.SelectOrganization(ctx, o.ID); err != nil {
		return err
	}

	user := a.Sessions.GetCurrentUser()
	fmt.Printf("Organization selected: %s (%s)\n", user.OrganizationName, a.Orgs.SelectedOrganizer())
	return nil
}

// OrgSwitchCmd rescopes a global admin's session to another tenant.
type OrgSwitchCmd struct {
	ID string `arg:"" help:"Organization id to switch to"`
}

func (o *OrgSwitchCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireSession(); err != nil {
		return err
	}

	if err := a.Flow.SwitchOrganization(ctx, o.ID); err != nil {
		return err
	}

	fmt.Printf("Switched to organization %s\n", a.Orgs.SelectedOrganizer())
	return nil
}

// OrgShowCmd prints the current scope.
type OrgShowCmd struct{}

func (o *OrgShowCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireSession(); err != nil {
		return err
	}

	user := a.Sessions.GetCurrentUser()
	if !user.IsGlobalAdmin {
		fmt.Printf("%s (%s)\n", user.OrganizationName, user.OrganizationID)
		return nil
	}

	selected := a.Orgs.SelectedOrganizer()
	if selected == "" {
		fmt.Println("No organization selected.")
		return nil
	}
	fmt.Println(selected)
	return nil
}
