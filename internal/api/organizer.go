package api

import (
	"context"

	"github.com/openpos/poscon/internal/models"
)

// ListOrganizers returns one page of the platform's organizers. Only
// global admins can call this; the service enforces it.
func (c *Client) ListOrganizers(ctx context.Context, page, pageSize int) (*models.Paginated[models.Organizer], error) {
	result, err := getRaw[models.Paginated[models.Organizer]](ctx, c, "/api/organizer/paged", pageQuery(page, pageSize))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOrganizer returns an organizer by id.
func (c *Client) GetOrganizer(ctx context.Context, id string) (*models.Organizer, error) {
	result, err := getJSON[models.Organizer](ctx, c, "/api/organizer/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateOrganizer creates a new organizer.
func (c *Client) CreateOrganizer(ctx context.Context, req models.OrganizerRequest) (*models.Organizer, error) {
	result, err := postJSON[models.Organizer](ctx, c, "/api/organizer", req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateOrganizer updates an existing organizer.
func (c *Client) UpdateOrganizer(ctx context.Context, id string, req models.OrganizerRequest) (*models.Organizer, error) {
	result, err := putJSON[models.Organizer](ctx, c, "/api/organizer/"+id, req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteOrganizer removes an organizer.
func (c *Client) DeleteOrganizer(ctx context.Context, id string) error {
	return deleteJSON(ctx, c, "/api/organizer/"+id)
}
