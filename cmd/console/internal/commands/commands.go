// Package commands contains the console's kong command tree.
package commands

import (
	"fmt"
	"time"

	"github.com/openpos/poscon/internal/api"
	"github.com/openpos/poscon/internal/authflow"
	"github.com/openpos/poscon/internal/guard"
	"github.com/openpos/poscon/internal/orgcontext"
	"github.com/openpos/poscon/internal/session"
	"github.com/openpos/poscon/internal/storage"
)

// Globals carries the flags shared by every command.
type Globals struct {
	Debug    bool
	Version  string
	Server   string
	StateDir string
	Timeout  time.Duration
}

// app bundles the stores, the flow controller and the API client for one
// invocation.
type app struct {
	Sessions *session.Store
	Orgs     *orgcontext.Store
	Flow     *authflow.Controller
	API      *api.Client
}

func newApp(globals *Globals) (*app, error) {
	kv, err := storage.NewFileKV(globals.StateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open state store: %w", err)
	}

	sessions, err := session.New(kv)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	orgs, err := orgcontext.New(kv)
	if err != nil {
		return nil, fmt.Errorf("failed to restore organizer selection: %w", err)
	}

	client := api.NewClient(api.Config{
		BaseURL: globals.Server,
		Timeout: globals.Timeout,
	}, sessions, orgs)

	flow := authflow.New(client, sessions, orgs)
	flow.OnReset(client.PurgeCache)

	return &app{
		Sessions: sessions,
		Orgs:     orgs,
		Flow:     flow,
		API:      client,
	}, nil
}

// denied turns a guard decision into actionable CLI guidance.
func denied(d guard.Decision) error {
	switch d.Redirect {
	case guard.RouteLogin:
		return fmt.Errorf("not logged in, run 'poscon login <username>' first")
	case guard.RouteSelectOrganization:
		return fmt.Errorf("an organization choice is pending, run 'poscon org select <id>'")
	case guard.RouteOrganizers:
		return fmt.Errorf("no organization selected, run 'poscon org list' then 'poscon org switch <id>'")
	default:
		return fmt.Errorf("access denied")
	}
}

// requireSession admits only authenticated callers.
func (a *app) requireSession() error {
	if d := guard.Session(a.Sessions); !d.Allowed {
		return denied(d)
	}
	return nil
}

// requireScoped admits only authenticated callers with a resolved tenant
// context. Tenant-scoped commands run this before touching the API.
func (a *app) requireScoped() error {
	if d := guard.Session(a.Sessions); !d.Allowed {
		return denied(d)
	}
	if d := guard.OrganizerSelected(a.Sessions, a.Orgs); !d.Allowed {
		return denied(d)
	}
	return nil
}

func pageFooter(pageNumber, totalPages, totalItems int) string {
	return fmt.Sprintf("Page %d/%d, %d items total", pageNumber, totalPages, totalItems)
}

func activeLabel(isActive bool) string {
	if isActive {
		return "active"
	}
	return "inactive"
}
