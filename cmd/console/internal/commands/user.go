package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// UserCmd inspects platform users.
type UserCmd struct {
	List UserListCmd `cmd:"" help:"List users"`
	Show UserShowCmd `cmd:"" help:"Show a user"`
	Orgs UserOrgsCmd `cmd:"" help:"Show a user's organization memberships"`
}

// UserListCmd lists users, one page at a time.
type UserListCmd struct {
	Page     int `help:"Page number" default:"1"`
	PageSize int `help:"Users per page" default:"10"`
}

func (u *UserListCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	page, err := a.API.ListUsers(ctx, u.Page, u.PageSize)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(page.Items) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tNAME\tSTATUS")
	for _, user := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", user.ID, user.Username, user.Email, user.FullName, activeLabel(user.IsActive))
	}
	w.Flush()

	fmt.Println()
	fmt.Println(pageFooter(page.PageNumber, page.TotalPages, page.TotalItems))
	return nil
}

// UserShowCmd shows one user.
type UserShowCmd struct {
	ID string `arg:"" help:"User id"`
}

func (u *UserShowCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	user, err := a.API.GetUser(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	fmt.Printf("ID:       %s\n", user.ID)
	fmt.Printf("Username: %s\n", user.Username)
	fmt.Printf("Email:    %s\n", user.Email)
	fmt.Printf("Name:     %s\n", user.FullName)
	fmt.Printf("Status:   %s\n", activeLabel(user.IsActive))
	return nil
}

// UserOrgsCmd shows a user's tenant memberships.
type UserOrgsCmd struct {
	ID string `arg:"" help:"User id"`
}

func (u *UserOrgsCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	memberships, err := a.API.UserOrganizations(ctx, u.ID)
	if err != nil {
		return fmt.Errorf("failed to get user organizations: %w", err)
	}

	if len(memberships) == 0 {
		fmt.Println("No organization memberships.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORGANIZATION\tNAME\tROLE\tPERMISSIONS\tSTATUS")
	for _, membership := range memberships {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			membership.OrganizationID,
			membership.OrganizationName,
			membership.Role,
			strings.Join(membership.Permissions, ", "),
			activeLabel(membership.IsActive))
	}
	w.Flush()
	return nil
}
