package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/openpos/poscon/internal/models"
)

// ProductCmd manages the current tenant's products.
type ProductCmd struct {
	List   ProductListCmd   `cmd:"" help:"List products"`
	Show   ProductShowCmd   `cmd:"" help:"Show a product"`
	Create ProductCreateCmd `cmd:"" help:"Create a product"`
	Update ProductUpdateCmd `cmd:"" help:"Update a product"`
	Delete ProductDeleteCmd `cmd:"" help:"Delete a product"`
}

// ProductListCmd lists products, one page at a time.
type ProductListCmd struct {
	Page     int `help:"Page number" default:"1"`
	PageSize int `help:"Products per page" default:"10"`
}

func (p *ProductListCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	page, err := a.API.ListProducts(ctx, p.Page, p.PageSize)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	if len(page.Items) == 0 {
		fmt.Println("No products found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSKU\tCATEGORY\tSTATUS")
	for _, product := range page.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", product.ID, product.Name, product.SKU, product.CategoryName, activeLabel(product.IsActive))
	}
	w.Flush()

	fmt.Println()
	fmt.Println(pageFooter(page.PageNumber, page.TotalPages, page.TotalItems))
	return nil
}

// ProductShowCmd shows one product.
type ProductShowCmd struct {
	ID string `arg:"" help:"Product id"`
}

func (p *ProductShowCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	product, err := a.API.GetProduct(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	fmt.Printf("ID:          %s\n", product.ID)
	fmt.Printf("Name:        %s\n", product.Name)
	fmt.Printf("Description: %s\n", product.Description)
	fmt.Printf("SKU:         %s\n", product.SKU)
	fmt.Printf("Barcode:     %s\n", product.Barcode)
	fmt.Printf("Category:    %s (%s)\n", product.CategoryName, product.CategoryID)
	fmt.Printf("Status:      %s\n", activeLabel(product.IsActive))
	return nil
}

// ProductCreateCmd creates a product.
type ProductCreateCmd struct {
	Name        string `arg:"" help:"Product name"`
	Description string `help:"Product description"`
	SKU         string `help:"Stock keeping unit"`
	Barcode     string `help:"Barcode"`
	Category    string `help:"Category id"`
	Inactive    bool   `help:"Create as inactive"`
}

func (p *ProductCreateCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	product, err := a.API.CreateProduct(ctx, models.ProductRequest{
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Barcode:     p.Barcode,
		CategoryID:  p.Category,
		IsActive:    !p.Inactive,
	})
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	fmt.Printf("Product created: %s (%s)\n", product.Name, product.ID)
	return nil
}

// ProductUpdateCmd updates a product.
type ProductUpdateCmd struct {
	ID          string `arg:"" help:"Product id"`
	Name        string `help:"New name"`
	Description string `help:"New description"`
	SKU         string `help:"New stock keeping unit"`
	Barcode     string `help:"New barcode"`
	Category    string `help:"New category id"`
	Inactive    bool   `help:"Mark as inactive"`
}

func (p *ProductUpdateCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	current, err := a.API.GetProduct(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}

	req := models.ProductRequest{
		ID:          current.ID,
		Name:        current.Name,
		Description: current.Description,
		SKU:         current.SKU,
		Barcode:     current.Barcode,
		CategoryID:  current.CategoryID,
		IsActive:    !p.Inactive,
	}
	if p.Name != "" {
		req.Name = p.Name
	}
	if p.Description != "" {
		req.Description = p.Description
	}
	if p.SKU != "" {
		req.SKU = p.SKU
	}
	if p.Barcode != "" {
		req.Barcode = p.Barcode
	}
	if p.Category != "" {
		req.CategoryID = p.Category
	}

	product, err := a.API.UpdateProduct(ctx, p.ID, req)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	fmt.Printf("Product updated: %s (%s)\n", product.Name, product.ID)
	return nil
}

// ProductDeleteCmd deletes a product.
type ProductDeleteCmd struct {
	ID string `arg:"" help:"Product id"`
}

func (p *ProductDeleteCmd) Run(ctx context.Context, globals *Globals) error {
	a, err := newApp(globals)
	if err != nil {
		return err
	}

	if err := a.requireScoped(); err != nil {
		return err
	}

	if err := a.API.DeleteProduct(ctx, p.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	fmt.Printf("Product %s deleted.\n", p.ID)
	return nil
}
