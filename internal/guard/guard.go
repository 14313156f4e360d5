// Package guard provides the admission predicates consulted before
// entering a protected console surface. Guards are pure reads over the
// session and organization-context stores; they never mutate state.
package guard

import (
	"github.com/openpos/poscon/internal/orgcontext"
	"github.com/openpos/poscon/internal/session"
)

// Route names a console entry point a denied navigation is redirected to.
type Route string

const (
	RouteLogin              Route = "login"
	RouteSelectOrganization Route = "select-organization"
	RouteOrganizers         Route = "organizers"
)

// Decision is the outcome of a guard check. Redirect is only meaningful
// when Allowed is false.
type Decision struct {
	Allowed  bool
	Redirect Route
}

// Session passes iff a valid session exists; otherwise it denies and
// points at the login entry point.
func Session(s *session.Store) Decision {
	if !s.IsAuthenticated() {
		return Decision{Redirect: RouteLogin}
	}
	return Decision{Allowed: true}
}

// OrganizerSelected passes unconditionally for authenticated non-admin
// users, whose tenant scope is fixed by the service. For global admins it
// requires a selected organizer and otherwise denies, pointing at the
// organizer listing. Unauthenticated callers are denied toward login;
// compose with Session to catch that case first.
func OrganizerSelected(s *session.Store, o *orgcontext.Store) Decision {
	user := s.GetCurrentUser()
	if user == nil {
		return Decision{Redirect: RouteLogin}
	}

	if user.IsGlobalAdmin && o.SelectedOrganizer() == "" {
		return Decision{Redirect: RouteOrganizers}
	}

	return Decision{Allowed: true}
}
