package api

import (
	"context"

	"github.com/openpos/poscon/internal/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type organizationRequest struct {
	OrganizationID string `json:"organizationId"`
}

// Login exchanges credentials for a token and user. When the service
// cannot resolve a single tenant it also returns the eligible
// organizations. Never retried.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	result, err := postJSON[models.LoginResult](ctx, c, "/api/auth/login", loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SelectOrganization commits one of the organizations offered at login and
// returns a replacement token and user scoped to it.
func (c *Client) SelectOrganization(ctx context.Context, organizationID string) (*models.ScopedSession, error) {
	result, err := postJSON[models.ScopedSession](ctx, c, "/api/auth/select-organization", organizationRequest{
		OrganizationID: organizationID,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SwitchOrganization moves a global admin's session to another tenant and
// returns the rescoped token and user.
func (c *Client) SwitchOrganization(ctx context.Context, organizationID string) (*models.ScopedSession, error) {
	result, err := postJSON[models.ScopedSession](ctx, c, "/api/auth/switch-organization", organizationRequest{
		OrganizationID: organizationID,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
