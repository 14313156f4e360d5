package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/openpos/poscon/internal/models"
)

// PriceListCmd manages the current tenant's price lists.
type PriceListCmd struct {
	List   PriceListListCmd   `cmd:"" help:"List price lists"`
	Show   PriceListShowCmd   `cmd:"" help:"Show a price list with its items"`
	Create PriceListCreateCmd `cmd:"" help:"Create a price list"`
	Update PriceListUpdateCmd `cmd:"" help:"Update a price list"`
	Delete PriceListDeleteCmd `cmd:"" help:"Delete a price list"`
}

// PriceListListCmd lists price lists, one page at a time.
type PriceListListCmd struct {
	Page     int `help:"Page number" default:"1"`
	PageSize int `help:"Price lists per page" default:"10"`
}

func (p *PriceListListCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	page, err := a.API.ListPriceLists(ctx, p.Page, p.PageSize)
	if err != nil {
		return fmt.Errorf("failed to list price lists: %w", err)
	}

	if len(page.Items) == 0 {
		fmt.Println("No price lists found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSCOPE\tSTATUS\tPRIORITY")
	for _, priceList := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", priceList.ID, priceList.Name, priceList.Scope, priceList.Status, priceList.Priority)
	}
	w.Flush()

	fmt.Println()
	fmt.Println(pageFooter(page.PageNumber, page.TotalPages, page.TotalItems))
	return nil
}

// PriceListShowCmd shows one price list, items included.
type PriceListShowCmd struct {
	ID string `arg:"" help:"Price list id"`
}

func (p *PriceListShowCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	priceList, err := a.API.GetPriceList(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to get price list: %w", err)
	}

	fmt.Printf("ID:       %s\n", priceList.ID)
	fmt.Printf("Name:     %s\n", priceList.Name)
	fmt.Printf("Scope:    %s\n", priceList.Scope)
	fmt.Printf("Status:   %s\n", priceList.Status)
	fmt.Printf("Priority: %d\n", priceList.Priority)
	if priceList.ValidFrom != nil {
		fmt.Printf("Valid from:  %s\n", priceList.ValidFrom.Format("2006-01-02"))
	}
	if priceList.ValidUntil != nil {
		fmt.Printf("Valid until: %s\n", priceList.ValidUntil.Format("2006-01-02"))
	}

	if len(priceList.Items) > 0 {
		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "PRODUCT\tNAME\tPRICE")
		for _, item := range priceList.Items {
			fmt.Fprintf(w, "%s\t%s\t%.2f\n", item.ProductID, item.ProductName, item.Price)
		}
		w.Flush()
	}
	return nil
}

// PriceListCreateCmd creates a price list.
type PriceListCreateCmd struct {
	Name        string `arg:"" help:"Price list name"`
	Description string `help:"Description"`
	Scope       string `help:"Scope: all, online or onsite" default:"all"`
	Priority    int    `help:"Priority (higher wins)" default:"0"`
}

func (p *PriceListCreateCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	priceList, err := a.API.CreatePriceList(ctx, models.PriceListRequest{
		Name:        p.Name,
		Description: p.Description,
		Scope:       models.PriceListScope(p.Scope),
		Status:      models.PriceListStatusDraft,
		Priority:    p.Priority,
	})
	if err != nil {
		return fmt.Errorf("failed to create price list: %w", err)
	}

	fmt.Printf("Price list created: %s (%s)\n", priceList.Name, priceList.ID)
	return nil
}

// PriceListUpdateCmd updates a price list. Unset flags keep the current
// values; items are carried over untouched.
type PriceListUpdateCmd struct {
	ID          string `arg:"" help:"Price list id"`
	Name        string `help:"New name"`
	Description string `help:"New description"`
	Scope       string `help:"New scope: all, online or onsite"`
	Status      string `help:"New status: draft, active or archived"`
	Priority    int    `help:"New priority" default:"-1"`
}

func (p *PriceListUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	current, err := a.API.GetPriceList(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to get price list: %w", err)
	}

	req := models.PriceListRequest{
		ID:          current.ID,
		Name:        current.Name,
		Description: current.Description,
		Scope:       current.Scope,
		Status:      current.Status,
		ValidFrom:   current.ValidFrom,
		ValidUntil:  current.ValidUntil,
		Priority:    current.Priority,
		Items:       current.Items,
	}
	if p.Name != "" {
		req.Name = p.Name
	}
	if p.Description != "" {
		req.Description = p.Description
	}
	if p.Scope != "" {
		req.Scope = models.PriceListScope(p.Scope)
	}
	if p.Status != "" {
		req.Status = models.PriceListStatus(p.Status)
	}
	if p.Priority >= 0 {
		req.Priority = p.Priority
	}

	priceList, err := a.API.UpdatePriceList(ctx, p.ID, req)
	if err != nil {
		return fmt.Errorf("failed to update price list: %w", err)
	}

	fmt.Printf("Price list updated: %s (%s)\n", priceList.Name, priceList.ID)
	return nil
}

// PriceListDeleteCmd deletes a price list.
type PriceListDeleteCmd struct {
	ID string `arg:"" help:"Price list id"`
}

func (p *PriceListDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	if err := a.API.DeletePriceList(ctx, p.ID); err != nil {
		return fmt.Errorf("failed to delete price list: %w", err)
	}

	fmt.Printf("Price list %s deleted.\n", p.ID)
	return nil
}
