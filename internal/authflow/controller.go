// Package authflow orchestrates the multi-step login protocol and owns
// every write to the session and organization-context stores.
package authflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/openpos/poscon/internal/models"
	"github.com/openpos/poscon/internal/orgcontext"
	"github.com/openpos/poscon/internal/session"
)

// Sentinel errors
var (
	// ErrNoOrganizations is returned when a login response carries
	// neither the admin flag nor any tenant option. That is a service
	// contract violation; nothing is committed.
	ErrNoOrganizations = errors.New("no organizations assigned to this user")

	// ErrNoPendingChoice is returned when SelectOrganization is called
	// outside the pending-organization-choice phase.
	ErrNoPendingChoice = errors.New("no organization choice is pending")

	// ErrNotGlobalAdmin is returned when a non-admin calls
	// SwitchOrganization.
	ErrNotGlobalAdmin = errors.New("only global admins can switch organizations")

	// ErrUnknownOrganization is returned when a selected id is not among
	// the pending options.
	ErrUnknownOrganization = errors.New("organization is not among the offered options")
)

// Phase is the controller's position in the login protocol.
type Phase int

const (
	// PhaseUnauthenticated means no session exists.
	PhaseUnauthenticated Phase = iota

	// PhaseUnscoped means a global admin is logged in but has not picked
	// a tenant yet.
	PhaseUnscoped

	// PhasePendingOrganizationChoice means login succeeded but the user
	// must pick one of several offered tenants.
	PhasePendingOrganizationChoice

	// PhaseScoped means the session has a resolved tenant context.
	PhaseScoped
)

func (p Phase) String() string {
	switch p {
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseUnscoped:
		return "unscoped"
	case PhasePendingOrganizationChoice:
		return "pending-organization-choice"
	case PhaseScoped:
		return "scoped"
	default:
		return "unknown"
	}
}

// Authority is the remote authentication service.
type Authority interface {
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)
	SelectOrganization(ctx context.Context, organizationID string) (*models.ScopedSession, error)
	SwitchOrganization(ctx context.Context, organizationID string) (*models.ScopedSession, error)
}

// Controller drives the login state machine. It is the only writer of the
// session store; the organization context is written here and by the
// explicit picker path (SwitchOrganization).
type Controller struct {
	authority Authority
	sessions  *session.Store
	orgs      *orgcontext.Store

	resetHooks []func()
}

// New creates a controller over the given stores.
func New(authority Authority, sessions *session.Store, orgs *orgcontext.Store) *Controller {
	return &Controller{
		authority: authority,
		sessions:  sessions,
		orgs:      orgs,
	}
}

// OnReset registers fn to run after a tenant switch. Consumers holding
// tenant-scoped data (caches, lists) must drop it wholesale when fired;
// there is no partial re-render of a tenant change.
func (c *Controller) OnReset(fn func()) {
	c.resetHooks = append(c.resetHooks, fn)
}

func (c *Controller) fireReset() {
	log.Debug().Int("hooks", len(c.resetHooks)).Msg("tenant context reset")
	for _, fn := range c.resetHooks {
		fn()
	}
}

// Phase derives the current phase from the two stores.
func (c *Controller) Phase() Phase {
	if !c.sessions.IsAuthenticated() {
		return PhaseUnauthenticated
	}

	user := c.sessions.GetCurrentUser()
	if user.IsGlobalAdmin {
		if c.orgs.SelectedOrganizer() == "" {
			return PhaseUnscoped
		}
		return PhaseScoped
	}

	if user.OrganizationID == "" {
		return PhasePendingOrganizationChoice
	}
	return PhaseScoped
}

// PendingOrganizations returns the tenant choices held since login.
func (c *Controller) PendingOrganizations() []models.UserOrganizationOption {
	return c.sessions.PendingOrganizations()
}

// Login authenticates against the service and resolves the tenant scope:
//
//   - non-admin with a server-resolved tenant: scoped immediately
//   - non-admin offered exactly one tenant: selected on the caller's behalf
//   - non-admin offered several tenants: held pending an explicit choice
//   - global admin: logged in unscoped
//
// On any failure before a commit point, neither store is mutated.
func (c *Controller) Login(ctx context.Context, username, password string) (Phase, error) {
	result, err := c.authority.Login(ctx, username, password)
	if err != nil {
		return c.Phase(), err
	}

	user := result.User

	if user.IsGlobalAdmin {
		if err := c.sessions.SetSession(result.Token, user); err != nil {
			return c.Phase(), err
		}
		log.Info().Str("username", user.Username).Msg("global admin logged in")
		return PhaseUnscoped, nil
	}

	if user.OrganizationID != "" {
		if err := c.sessions.SetSession(result.Token, user); err != nil {
			return c.Phase(), err
		}
		if err := c.orgs.SetSelectedOrganizer(user.OrganizationID); err != nil {
			return c.Phase(), err
		}
		log.Info().
			Str("username", user.Username).
			Str("organizationID", user.OrganizationID).
			Msg("logged in")
		return PhaseScoped, nil
	}

	if len(result.Organizations) == 0 {
		return c.Phase(), ErrNoOrganizations
	}

	if err := c.sessions.SetSession(result.Token, user); err != nil {
		return c.Phase(), err
	}
	if err := c.sessions.SetPendingOrganizations(result.Organizations); err != nil {
		return c.Phase(), err
	}

	if len(result.Organizations) == 1 {
		// A single offered tenant needs no human choice; resolve it now.
		// On failure the pending list survives for a manual retry.
		if err := c.SelectOrganization(ctx, result.Organizations[0].ID); err != nil {
			return c.Phase(), err
		}
		return PhaseScoped, nil
	}

	log.Info().
		Str("username", user.Username).
		Int("options", len(result.Organizations)).
		Msg("logged in, organization choice pending")
	return PhasePendingOrganizationChoice, nil
}

// SelectOrganization commits one of the pending tenant options. On success
// the session is replaced with the scoped token and user, the context is
// set, and the holding area is cleared. On failure the phase and the
// pending list are untouched, so the caller can retry.
func (c *Controller) SelectOrganization(ctx context.Context, organizationID string) error {
	pending := c.sessions.PendingOrganizations()
	if len(pending) == 0 {
		return ErrNoPendingChoice
	}

	found := false
	for _, option := range pending {
		if option.ID == organizationID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrUnknownOrganization, organizationID)
	}

	scoped, err := c.authority.SelectOrganization(ctx, organizationID)
	if err != nil {
		return err
	}

	if err := c.sessions.SetSession(scoped.Token, scoped.User); err != nil {
		return err
	}
	if err := c.orgs.SetSelectedOrganizer(organizationID); err != nil {
		return err
	}
	if err := c.sessions.ClearPendingOrganizations(); err != nil {
		return err
	}

	c.fireReset()

	log.Info().
		Str("username", scoped.User.Username).
		Str("organizationID", organizationID).
		Msg("organization selected")
	return nil
}

// SwitchOrganization rescopes a global admin's session to another tenant.
// On success the session and context are replaced and the reset signal
// fires: every consumer of tenant-scoped data starts from scratch.
func (c *Controller) SwitchOrganization(ctx context.Context, organizationID string) error {
	user := c.sessions.GetCurrentUser()
	if user == nil {
		return session.ErrNotAuthenticated
	}
	if !user.IsGlobalAdmin {
		return ErrNotGlobalAdmin
	}

	scoped, err := c.authority.SwitchOrganization(ctx, organizationID)
	if err != nil {
		return err
	}

	if err := c.sessions.SetSession(scoped.Token, scoped.User); err != nil {
		return err
	}
	if err := c.orgs.SetSelectedOrganizer(organizationID); err != nil {
		return err
	}

	c.fireReset()

	log.Info().
		Str("username", scoped.User.Username).
		Str("organizationID", organizationID).
		Msg("switched organization")
	return nil
}

// Logout clears both stores unconditionally, from any phase. Idempotent.
func (c *Controller) Logout() error {
	sessErr := c.sessions.Clear()
	orgErr := c.orgs.ClearSelectedOrganizer()

	if sessErr != nil {
		return sessErr
	}
	if orgErr != nil {
		return orgErr
	}

	log.Info().Msg("logged out")
	return nil
}
