package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpos/poscon/internal/models"
	"github.com/openpos/poscon/internal/storage"
)

func testUser() models.AuthenticatedUser {
	return models.AuthenticatedUser{
		Username:         "alice",
		Email:            "alice@example.com",
		OrganizationID:   "org-1",
		OrganizationName: "Org One",
		Roles:            []string{"manager"},
		Permissions:      []string{"category:write"},
	}
}

func TestStore_SetSession(t *testing.T) {
	t.Run("stores token and user together", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		store, err := New(kv)
		require.NoError(t, err)

		assert.False(t, store.IsAuthenticated())
		assert.Nil(t, store.GetCurrentUser())

		require.NoError(t, store.SetSession("tok-1", testUser()))

		assert.True(t, store.IsAuthenticated())
		assert.Equal(t, "tok-1", store.Token())
		assert.Equal(t, "alice", store.GetCurrentUser().Username)
	})

	t.Run("round-trips through storage", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		store, err := New(kv)
		require.NoError(t, err)
		require.NoError(t, store.SetSession("tok-1", testUser()))

		// Fresh store over the same storage simulates a restart
		restored, err := New(kv)
		require.NoError(t, err)

		assert.True(t, restored.IsAuthenticated())
		assert.Equal(t, "tok-1", restored.Token())
		assert.Equal(t, testUser(), *restored.GetCurrentUser())
	})

	t.Run("round-trips through the filesystem", func(t *testing.T) {
		kv, err := storage.NewFileKV(t.TempDir())
		require.NoError(t, err)

		store, err := New(kv)
		require.NoError(t, err)
		require.NoError(t, store.SetSession("tok-1", testUser()))

		restored, err := New(kv)
		require.NoError(t, err)
		assert.True(t, restored.IsAuthenticated())
		assert.Equal(t, testUser(), *restored.GetCurrentUser())
	})
}

func TestStore_CorruptedState(t *testing.T) {
	t.Run("token without user is cleared", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		require.NoError(t, kv.Set("token", []byte("tok-1")))

		store, err := New(kv)
		require.NoError(t, err)

		assert.False(t, store.IsAuthenticated())
		_, ok, err := kv.Get("token")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("user without token is cleared", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		require.NoError(t, kv.Set("user", []byte(`{"username":"alice"}`)))

		store, err := New(kv)
		require.NoError(t, err)

		assert.False(t, store.IsAuthenticated())
		_, ok, err := kv.Get("user")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unparseable user is cleared", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		require.NoError(t, kv.Set("token", []byte("tok-1")))
		require.NoError(t, kv.Set("user", []byte("not json")))

		store, err := New(kv)
		require.NoError(t, err)

		assert.False(t, store.IsAuthenticated())
		assert.Nil(t, store.GetCurrentUser())
	})

	t.Run("expired JWT token is cleared", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "alice",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		signed, err := expired.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		kv := storage.NewMemoryKV()
		store, err := New(kv)
		require.NoError(t, err)
		require.NoError(t, store.SetSession(signed, testUser()))

		restored, err := New(kv)
		require.NoError(t, err)
		assert.False(t, restored.IsAuthenticated())
	})

	t.Run("opaque token is never treated as expired", func(t *testing.T) {
		kv := storage.NewMemoryKV()
		store, err := New(kv)
		require.NoError(t, err)
		require.NoError(t, store.SetSession("opaque-token", testUser()))

		restored, err := New(kv)
		require.NoError(t, err)
		assert.True(t, restored.IsAuthenticated())
	})
}

func TestStore_Clear(t *testing.T) {
	kv := storage.NewMemoryKV()
	store, err := New(kv)
	require.NoError(t, err)

	require.NoError(t, store.SetSession("tok-1", testUser()))
	require.NoError(t, store.SetPendingOrganizations([]models.UserOrganizationOption{
		{ID: "org-1", Name: "Org One"},
	}))

	require.NoError(t, store.Clear())

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.GetCurrentUser())
	assert.Empty(t, store.Token())
	assert.Nil(t, store.PendingOrganizations())

	// Clearing twice behaves the same as clearing once
	require.NoError(t, store.Clear())
	assert.False(t, store.IsAuthenticated())
}

func TestStore_Permissions(t *testing.T) {
	t.Run("membership checks for regular users", func(t *testing.T) {
		store, err := New(storage.NewMemoryKV())
		require.NoError(t, err)
		require.NoError(t, store.SetSession("tok-1", testUser()))

		assert.True(t, store.HasPermission("category:write"))
		assert.False(t, store.HasPermission("organizer:delete"))
		assert.True(t, store.HasRole("manager"))
		assert.False(t, store.HasRole("admin"))
	})

	t.Run("global admins satisfy every check", func(t *testing.T) {
		store, err := New(storage.NewMemoryKV())
		require.NoError(t, err)

		admin := models.AuthenticatedUser{Username: "root", IsGlobalAdmin: true}
		require.NoError(t, store.SetSession("tok-1", admin))

		assert.True(t, store.HasPermission("anything"))
		assert.True(t, store.HasRole("anything"))
	})

	t.Run("logged out denies every check", func(t *testing.T) {
		store, err := New(storage.NewMemoryKV())
		require.NoError(t, err)

		assert.False(t, store.HasPermission("category:write"))
		assert.False(t, store.HasRole("manager"))
	})
}

func TestStore_PendingOrganizations(t *testing.T) {
	kv := storage.NewMemoryKV()
	store, err := New(kv)
	require.NoError(t, err)

	options := []models.UserOrganizationOption{
		{ID: "org-1", Name: "Org One", Roles: []string{"manager"}},
		{ID: "org-2", Name: "Org Two", Roles: []string{"cashier"}},
	}

	require.NoError(t, store.SetSession("tok-1", models.AuthenticatedUser{Username: "bob"}))
	require.NoError(t, store.SetPendingOrganizations(options))
	assert.Equal(t, options, store.PendingOrganizations())

	// Survives a restart
	restored, err := New(kv)
	require.NoError(t, err)
	assert.Equal(t, options, restored.PendingOrganizations())

	require.NoError(t, restored.ClearPendingOrganizations())
	assert.Nil(t, restored.PendingOrganizations())
}

func TestStore_TokenExpiry(t *testing.T) {
	store, err := New(storage.NewMemoryKV())
	require.NoError(t, err)

	_, ok := store.TokenExpiry()
	assert.False(t, ok)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	require.NoError(t, store.SetSession(signed, testUser()))

	got, ok := store.TokenExpiry()
	assert.True(t, ok)
	assert.Equal(t, exp.Unix(), got.Unix())
}
