package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileKV(t *testing.T) {
	t.Run("creates directory with correct permissions", func(t *testing.T) {
		tmpDir := t.TempDir()
		stateDir := filepath.Join(tmpDir, "state")

		kv, err := NewFileKV(stateDir)
		require.NoError(t, err)
		assert.NotNil(t, kv)

		info, err := os.Stat(stateDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
		assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
	})
}

func TestFileKV_RoundTrip(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	t.Run("absent key", func(t *testing.T) {
		_, ok, err := kv.Get("token")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, kv.Set("token", []byte("tok-123")))

		value, ok, err := kv.Get("token")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("tok-123"), value)
	})

	t.Run("set overwrites", func(t *testing.T) {
		require.NoError(t, kv.Set("token", []byte("tok-456")))

		value, ok, err := kv.Get("token")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("tok-456"), value)
	})

	t.Run("values written with owner-only permissions", func(t *testing.T) {
		info, err := os.Stat(filepath.Join(kv.baseDir, "token"))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, kv.Delete("token"))

		_, ok, err := kv.Get("token")
		require.NoError(t, err)
		assert.False(t, ok)

		// Deleting again is not an error
		require.NoError(t, kv.Delete("token"))
	})
}

func TestFileKV_RejectsPathKeys(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, kv.Set("../escape", []byte("x")))
	assert.Error(t, kv.Set("a/b", []byte("x")))
	assert.Error(t, kv.Set("", []byte("x")))
}

func TestMemoryKV(t *testing.T) {
	kv := NewMemoryKV()

	_, ok, err := kv.Get("user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("user", []byte(`{"username":"alice"}`)))

	value, ok, err := kv.Get("user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"username":"alice"}`), value)

	// Mutating the returned slice must not affect the stored copy
	value[0] = 'X'
	again, _, err := kv.Get("user")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"username":"alice"}`), again)

	require.NoError(t, kv.Delete("user"))
	_, ok, err = kv.Get("user")
	require.NoError(t, err)
	assert.False(t, ok)
}
