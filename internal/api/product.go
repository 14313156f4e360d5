package api

import (
	"context"

	"github.com/openpos/poscon/internal/models"
)

// ListProducts returns one page of the current tenant's products.
func (c *Client) ListProducts(ctx context.Context, page, pageSize int) (*models.Paginated[models.Product], error) {
	result, err := getRaw[models.Paginated[models.Product]](ctx, c, "/api/product/paged", pageQuery(page, pageSize))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProduct returns a product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	result, err := getJSON[models.Product](ctx, c, "/api/product/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateProduct creates a product in the current tenant.
func (c *Client) CreateProduct(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	result, err := postJSON[models.Product](ctx, c, "/api/product", req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateProduct updates an existing product.
func (c *Client) UpdateProduct(ctx context.Context, id string, req models.ProductRequest) (*models.Product, error) {
	result, err := putJSON[models.Product](ctx, c, "/api/product/"+id, req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return deleteJSON(ctx, c, "/api/product/"+id)
}
