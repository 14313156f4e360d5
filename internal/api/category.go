package api

import (
	"context"

	"github.com/openpos/poscon/internal/models"
)

// ListCategories returns one page of the current tenant's categories.
func (c *Client) ListCategories(ctx context.Context, page, pageSize int) (*models.Paginated[models.Category], error) {
	result, err := getRaw[models.Paginated[models.Category]](ctx, c, "/api/category/paged", pageQuery(page, pageSize))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetCategory returns a category by id.
func (c *Client) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	result, err := getJSON[models.Category](ctx, c, "/api/category/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ActiveCategories returns every active category, unpaged. Used to fill
// selection lists.
func (c *Client) ActiveCategories(ctx context.Context) ([]models.Category, error) {
	return getJSON[[]models.Category](ctx, c, "/api/category/active", nil)
}

// CreateCategory creates a category in the current tenant.
func (c *Client) CreateCategory(ctx context.Context, req models.CategoryRequest) (*models.Category, error) {
	result, err := postJSON[models.Category](ctx, c, "/api/category", req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateCategory updates an existing category.
func (c *Client) UpdateCategory(ctx context.Context, id string, req models.CategoryRequest) (*models.Category, error) {
	result, err := putJSON[models.Category](ctx, c, "/api/category/"+id, req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return deleteJSON(ctx, c, "/api/category/"+id)
}
