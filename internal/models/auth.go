// Package models contains the shared data types exchanged between the
// console and the platform API.
package models

// AuthenticatedUser is the identity and authorization summary returned by
// the authentication service.
type AuthenticatedUser struct {
	Username         string   `json:"username"`
	Email            string   `json:"email"`
	FullName         string   `json:"fullName,omitempty"`
	IsGlobalAdmin    bool     `json:"isGlobalAdmin"`
	OrganizationID   string   `json:"organizationId,omitempty"`
	OrganizationName string   `json:"organizationName,omitempty"`
	Roles            []string `json:"roles"`
	Permissions      []string `json:"permissions"`
}

// UserOrganizationOption is a tenant membership offered during login,
// before a scope is committed.
type UserOrganizationOption struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// LoginResult is the payload of a successful login call. Organizations is
// only populated when the service could not resolve a single tenant on its
// own.
type LoginResult struct {
	Token         string                   `json:"token"`
	User          AuthenticatedUser        `json:"user"`
	Organizations []UserOrganizationOption `json:"organizations,omitempty"`
}

// ScopedSession is the payload of a successful select-organization or
// switch-organization call: a replacement token and user scoped to the
// chosen tenant.
type ScopedSession struct {
	Token string            `json:"token"`
	User  AuthenticatedUser `json:"user"`
}
