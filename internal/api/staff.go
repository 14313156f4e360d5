package api

import (
	"context"

	"github.com/openpos/poscon/internal/models"
)

// ListStaff returns one page of the current tenant's staff.
func (c *Client) ListStaff(ctx context.Context, page, pageSize int) (*models.Paginated[models.Staff], error) {
	result, err := getRaw[models.Paginated[models.Staff]](ctx, c, "/api/staff/paged", pageQuery(page, pageSize))
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AddStaff attaches a user to the current tenant with the given roles.
func (c *Client) AddStaff(ctx context.Context, req models.StaffRequest) (*models.Staff, error) {
	result, err := postJSON[models.Staff](ctx, c, "/api/staff", req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateStaff replaces the roles and permissions of a staff member.
func (c *Client) UpdateStaff(ctx context.Context, userID string, req models.StaffRequest) (*models.Staff, error) {
	result, err := putJSON[models.Staff](ctx, c, "/api/staff/"+userID, req)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RemoveStaff detaches a user from the current tenant.
func (c *Client) RemoveStaff(ctx context.Context, userID string) error {
	return deleteJSON(ctx, c, "/api/staff/"+userID)
}
