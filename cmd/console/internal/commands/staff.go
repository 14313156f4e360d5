package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/openpos/poscon/internal/models"
)

// StaffCmd manages the current tenant's staff.
type StaffCmd struct {
	List   StaffListCmd   `cmd:"" help:"List staff members"`
	Add    StaffAddCmd    `cmd:"" help:"Attach a user to the organization"`
	Update StaffUpdateCmd `cmd:"" help:"Replace a staff member's roles"`
	Remove StaffRemoveCmd `cmd:"" help:"Detach a user from the organization"`
}

// StaffListCmd lists staff, one page at a time.
type StaffListCmd struct {
	Page     int `help:"Page number" default:"1"`
	PageSize int `help:"Staff per page" default:"10"`
}

func (s *StaffListCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	page, err := a.API.ListStaff(ctx, s.Page, s.PageSize)
	if err != nil {
		return fmt.Errorf("failed to list staff: %w", err)
	}

	if len(page.Items) == 0 {
		fmt.Println("No staff found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "USER ID\tNAME\tEMAIL\tROLES\tSTATUS")
	for _, member := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", member.UserID, member.FullName, member.Email, member.Roles, member.Status)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(pageFooter(page.PageNumber, page.TotalPages, page.TotalItems))
	return nil
}

// StaffAddCmd attaches a user to the current tenant.
type StaffAddCmd struct {
	UserID string   `arg:"" help:"User id to attach"`
	Roles  []string `help:"Role ids to grant" required:""`
}

func (s *StaffAddCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	member, err := a.API.AddStaff(ctx, models.StaffRequest{
		UserID:  s.UserID,
		RoleIDs: s.Roles,
	})
	if err != nil {
		return fmt.Errorf("failed to add staff member: %w", err)
	}

	fmt.Printf("Staff member added: %s (%s)\n", member.FullName, member.UserID)
	return nil
}

// StaffUpdateCmd replaces a staff member's roles and permissions.
type StaffUpdateCmd struct {
	UserID      string   `arg:"" help:"User id to update"`
	Roles       []string `help:"Role ids to grant" required:""`
	Permissions []string `help:"Extra permissions to grant"`
}

func (s *StaffUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	member, err := a.API.UpdateStaff(ctx, s.UserID, models.StaffRequest{
		UserID:      s.UserID,
		RoleIDs:     s.Roles,
		Permissions: s.Permissions,
	})
	if err != nil {
		return fmt.Errorf("failed to update staff member: %w", err)
	}

	fmt.Printf("Staff member updated: %s (%s)\n", member.FullName, member.UserID)
	return nil
}

// StaffRemoveCmd detaches a user from the current tenant.
type StaffRemoveCmd struct {
	UserID string `arg:"" help:"User id to detach"`
}

func (s *StaffRemoveCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	if err := a.API.RemoveStaff(ctx, s.UserID); err != nil {
		return fmt.Errorf("failed to remove staff member: %w", err)
	}

	fmt.Printf("Staff member %s removed.\n", s.UserID)
	return nil
}
