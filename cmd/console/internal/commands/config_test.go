package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		cfg, err := LoadFileConfig()
		require.NoError(t, err)
		assert.Equal(t, DefaultServer, cfg.Server)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Empty(t, cfg.StateDir)
	})

	t.Run("values from the file win", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		require.NoError(t, os.MkdirAll(filepath.Join(home, ".poscon"), 0700))
		require.NoError(t, os.WriteFile(
			filepath.Join(home, ".poscon", "config.yaml"),
			[]byte("server: https://pos.example.com\ntimeout: 10s\nstateDir: /tmp/poscon-state\n"),
			0600))

		cfg, err := LoadFileConfig()
		require.NoError(t, err)
		assert.Equal(t, "https://pos.example.com", cfg.Server)
		assert.Equal(t, 10*time.Second, cfg.Timeout)
		assert.Equal(t, "/tmp/poscon-state", cfg.StateDir)
	})

	t.Run("unparseable file is an error", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		require.NoError(t, os.MkdirAll(filepath.Join(home, ".poscon"), 0700))
		require.NoError(t, os.WriteFile(
			filepath.Join(home, ".poscon", "config.yaml"),
			[]byte("server: [broken"),
			0600))

		_, err := LoadFileConfig()
		require.Error(t, err)
	})
}
