package commands

import (
	"context"
	"fmt"

	"github.com/openpos/poscon/internal/models"
)

// OrganizerCmd manages the platform's organizers (tenants). These
// commands are platform-level: they need a session, not a tenant scope,
// since the organizer listing is exactly where an unscoped admin lands.
type OrganizerCmd struct {
	Create OrganizerCreateCmd `cmd:"" help:"Create an organizer"`
	Update OrganizerUpdateCmd `cmd:"" help:"Update an organizer"`
	Delete OrganizerDeleteCmd `cmd:"" help:"Delete an organizer"`
	Show   OrganizerShowCmd   `cmd:"" help:"Show an organizer"`
}

// OrganizerShowCmd shows one organizer.
type OrganizerShowCmd struct {
	ID string `arg:"" help:"Organizer id"`
}

func (o *OrganizerShowCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireSession(); err != nil {
		return err
	}

	organizer, err := a.API.GetOrganizer(ctx, o.ID)
	if err != nil {
		return fmt.Errorf("failed to get organizer: %w", err)
	}

	fmt.Printf("ID:     %s\n", organizer.ID)
	fmt.Printf("Name:   %s\n", organizer.Name)
	fmt.Printf("Tax ID: %s\n", organizer.TaxID)
	fmt.Printf("Status: %s\n", activeLabel(organizer.IsActive))
	return nil
}

// OrganizerCreateCmd creates an organizer.
type OrganizerCreateCmd struct {
	Name     string `arg:"" help:"Organizer name"`
	TaxID    string `help:"Tax identifier"`
	Inactive bool   `help:"Create as inactive"`
}

func (o *OrganizerCreateCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireSession(); err != nil {
		return err
	}

	organizer, err := a.API.CreateOrganizer(ctx, models.OrganizerRequest{
		Name:     o.Name,
		TaxID:    o.TaxID,
		IsActive: !o.Inactive,
	})
	if err != nil {
		return fmt.Errorf("failed to create organizer: %w", err)
	}

	fmt.Printf("Organizer created: %s (%s)\n", organizer.Name, organizer.ID)
	return nil
}

// OrganizerUpdateCmd updates an organizer.
type OrganizerUpdateCmd struct {
	ID       string `arg:"" help:"Organizer id"`
	Name     string `help:"New name"`
	TaxID    string `help:"New tax identifier"`
	Inactive bool   `help:"Mark as inactive"`
}

func (o *OrganizerUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireSession(); err != nil {
		return err
	}

	current, err := a.API.GetOrganizer(ctx, o.ID)
	if err != nil {
		return fmt.Errorf("failed to get organizer: %w", err)
	}

	req := models.OrganizerRequest{
		ID:       current.ID,
		Name:     current.Name,
		TaxID:    current.TaxID,
		IsActive: !o.Inactive,
	}
	if o.Name != "" {
		req.Name = o.Name
	}
	if o.TaxID != "" {
		req.TaxID = o.TaxID
	}

	organizer, err := a.API.UpdateOrganizer(ctx, o.ID, req)
	if err != nil {
		return fmt.Errorf("failed to update organizer: %w", err)
	}

	fmt.Printf("Organizer updated: %s (%s)\n", organizer.Name, organizer.ID)
	return nil
}

// OrganizerDeleteCmd deletes an organizer.
type OrganizerDeleteCmd struct {
	ID string `arg:"" help:"Organizer id"`
}

func (o *OrganizerDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireSession(); err != nil {
		return err
	}

	if err := a.API.DeleteOrganizer(ctx, o.ID); err != nil {
		return fmt.Errorf("failed to delete organizer: %w", err)
	}

	fmt.Printf("Organizer %s deleted.\n", o.ID)
	return nil
}
