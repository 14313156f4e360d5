package api

import (
	"context"

	"github.com/openpos/poscon/internal/models"
)

// ListUsers returns one page of platform users.
func (c *Client) ListUsers(ctx context.Context, page, pageSize int) (*models.Paginated[models.User], error) {
	result, err := getRaw[models.Paginated[models.User]](ctx, c, "/api/user/paged", pageQuery(page, pageSize))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetUser returns a user by id.
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	result, err := getJSON[models.User](ctx, c, "/api/user/"+id, nil)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UserOrganizations returns the tenant memberships of a user.
func (c *Client) UserOrganizations(ctx context.Context, id string) ([]models.UserOrganization, error) {
	return getJSON[[]models.UserOrganization](ctx, c, "/api/user/"+id+"/organizations", nil)
}
