package api

import (
	"context"

	"github.com/openpos/poscon/internal/models"
)

// ListPriceLists returns one page of the current tenant's price lists.
func (c *Client) ListPriceLists(ctx context.Context, page, pageSize int) (*models.Paginated[models.PriceList], error) {
	result, err := getRaw[models.Paginated[models.PriceList]](ctx, c, "/api/price-list/paged", pageQuery(page, pageSize))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetPriceList returns a price list by id, items included.
func (c *Client) GetPriceList(ctx context.Context, id string) (*models.PriceList, error) {
	result, err := getJSON[models.PriceList](ctx, c, "/api/price-list/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreatePriceList creates a price list in the current tenant.
func (c *Client) CreatePriceList(ctx context.Context, req models.PriceListRequest) (*models.PriceList, error) {
	result, err := postJSON[models.PriceList](ctx, c, "/api/price-list", req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdatePriceList updates an existing price list.
func (c *Client) UpdatePriceList(ctx context.Context, id string, req models.PriceListRequest) (*models.PriceList, error) {
	result, err := putJSON[models.PriceList](ctx, c, "/api/price-list/"+id, req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeletePriceList removes a price list.
func (c *Client) DeletePriceList(ctx context.Context, id string) error {
	return deleteJSON(ctx, c, "/api/price-list/"+id)
}
