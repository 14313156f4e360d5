package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpos/poscon/internal/models"
	"github.com/openpos/poscon/internal/orgcontext"
	"github.com/openpos/poscon/internal/session"
	"github.com/openpos/poscon/internal/storage"
)

func newStores(t *testing.T) (*session.Store, *orgcontext.Store) {
	t.Helper()
	kv := storage.NewMemoryKV()
	sessions, err := session.New(kv)
	require.NoError(t, err)
	orgs, err := orgcontext.New(kv)
	require.NoError(t, err)
	return sessions, orgs
}

func TestSession(t *testing.T) {
	t.Run("denies when logged out", func(t *testing.T) {
		sessions, _ := newStores(t)

		decision := Session(sessions)
		assert.False(t, decision.Allowed)
		assert.Equal(t, RouteLogin, decision.Redirect)
	})

	t.Run("passes when logged in", func(t *testing.T) {
		sessions, _ := newStores(t)
		require.NoError(t, sessions.SetSession("tok-1", models.AuthenticatedUser{
			Username:       "alice",
			OrganizationID: "org-1",
		}))

		decision := Session(sessions)
		assert.True(t, decision.Allowed)
	})
}

func TestOrganizerSelected(t *testing.T) {
	t.Run("always passes for an authenticated non-admin", func(t *testing.T) {
		sessions, orgs := newStores(t)
		require.NoError(t, sessions.SetSession("tok-1", models.AuthenticatedUser{
			Username:       "alice",
			OrganizationID: "org-1",
		}))

		// Regardless of organization context content
		assert.True(t, OrganizerSelected(sessions, orgs).Allowed)

		require.NoError(t, orgs.SetSelectedOrganizer("org-9"))
		assert.True(t, OrganizerSelected(sessions, orgs).Allowed)

		require.NoError(t, orgs.ClearSelectedOrganizer())
		assert.True(t, OrganizerSelected(sessions, orgs).Allowed)
	})

	t.Run("gates admins on a selection", func(t *testing.T) {
		sessions, orgs := newStores(t)
		require.NoError(t, sessions.SetSession("tok-1", models.AuthenticatedUser{
			Username:      "root",
			IsGlobalAdmin: true,
		}))

		decision := OrganizerSelected(sessions, orgs)
		assert.False(t, decision.Allowed)
		assert.Equal(t, RouteOrganizers, decision.Redirect)

		// Any non-empty selection makes it pass
		require.NoError(t, orgs.SetSelectedOrganizer("org-1"))
		assert.True(t, OrganizerSelected(sessions, orgs).Allowed)

		// Clearing it denies again
		require.NoError(t, orgs.ClearSelectedOrganizer())
		assert.False(t, OrganizerSelected(sessions, orgs).Allowed)
	})

	t.Run("denies toward login when logged out", func(t *testing.T) {
		sessions, orgs := newStores(t)

		decision := OrganizerSelected(sessions, orgs)
		assert.False(t, decision.Allowed)
		assert.Equal(t, RouteLogin, decision.Redirect)
	})
}
