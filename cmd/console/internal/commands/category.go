package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/openpos/poscon/internal/models"
)

// CategoryCmd manages the current tenant's categories.
type CategoryCmd struct {
	List   CategoryListCmd   `cmd:"" help:"List categories"`
	Show   CategoryShowCmd   `cmd:"" help:"Show a category"`
	Create CategoryCreateCmd `cmd:"" help:"Create a category"`
	Update CategoryUpdateCmd `cmd:"" help:"Update a category"`
	Delete CategoryDeleteCmd `cmd:"" help:"Delete a category"`
}

// CategoryListCmd lists categories, one page at a time.
type CategoryListCmd struct {
	Page     int  `help:"Page number" default:"1"`
	PageSize int  `help:"Categories per page" default:"10"`
	Active   bool `help:"Show only active categories (unpaged)"`
}

func (c *CategoryListCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	var categories []models.Category
	footer := ""

	if c.Active {
		categories, err = a.API.ActiveCategories(ctx)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
	} else {
		page, err := a.API.ListCategories(ctx, c.Page, c.PageSize)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		categories = page.Items
		footer = pageFooter(page.PageNumber, page.TotalPages, page.TotalItems)
	}

	if len(categories) == 0 {
		fmt.Println("No categories found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION\tSTATUS")
	for _, category := range categories {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", category.ID, category.Name, category.Description, activeLabel(category.IsActive))
	}
	w.Flush()

	if footer != "" {
		fmt.Println()
		fmt.Println(footer)
	}
	return nil
}

// CategoryShowCmd shows one category.
type CategoryShowCmd struct {
	ID string `arg:"" help:"Category id"`
}

func (c *CategoryShowCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	category, err := a.API.GetCategory(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}

	fmt.Printf("ID:          %s\n", category.ID)
	fmt.Printf("Name:        %s\n", category.Name)
	fmt.Printf("Description: %s\n", category.Description)
	fmt.Printf("Status:      %s\n", activeLabel(category.IsActive))
	return nil
}

// CategoryCreateCmd creates a category.
type CategoryCreateCmd struct {
	Name        string `arg:"" help:"Category name"`
	Description string `help:"Category description"`
	Inactive    bool   `help:"Create as inactive"`
}

func (c *CategoryCreateCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	category, err := a.API.CreateCategory(ctx, models.CategoryRequest{
		Name:        c.Name,
		Description: c.Description,
		IsActive:    !c.Inactive,
	})
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	fmt.Printf("Category created: %s (%s)\n", category.Name, category.ID)
	return nil
}

// CategoryUpdateCmd updates a category.
type CategoryUpdateCmd struct {
	ID          string `arg:"" help:"Category id"`
	Name        string `help:"New name"`
	Description string `help:"New description"`
	Inactive    bool   `help:"Mark as inactive"`
}

func (c *CategoryUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	current, err := a.API.GetCategory(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}

	req := models.CategoryRequest{
		ID:          current.ID,
		Name:        current.Name,
		Description: current.Description,
		IsActive:    !c.Inactive,
	}
	if c.Name != "" {
		req.Name = c.Name
	}
	if c.Description != "" {
		req.Description = c.Description
	}

	category, err := a.API.UpdateCategory(ctx, c.ID, req)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	fmt.Printf("Category updated: %s (%s)\n", category.Name, category.ID)
	return nil
}

// CategoryDeleteCmd deletes a category.
type CategoryDeleteCmd struct {
	ID string `arg:"" help:"Category id"`
}

func (c *CategoryDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	if err := a.API.DeleteCategory(ctx, c.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	fmt.Printf("Category %s deleted.\n", c.ID)
	return nil
}
