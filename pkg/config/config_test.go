package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.yaml")

	m, err := NewManager(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), m.Config())
	assert.NoFileExists(t, path)
}

func TestNewManager_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  level: H\nui:\n  use_color: false\n"), 0600))

	m, err := NewManager(path)
	require.NoError(t, err)

	cfg := m.Config()
	assert.Equal(t, "H", cfg.Defaults.Level)
	assert.False(t, cfg.UI.UseColor)
	assert.Equal(t, DefaultConfig().Input, cfg.Input, "unset keys keep defaults")
}

func TestNewManager_InvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "Bad level", content: "defaults:\n  level: Z\n"},
		{name: "Too many workers", content: "defaults:\n  workers: 1000\n"},
		{name: "Empty dark set", content: "input:\n  dark: \"\"\n"},
		{name: "Not yaml", content: "defaults: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := NewManager(path)
			assert.Error(t, err)
		})
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	m, err := NewManager(path)
	require.NoError(t, err)
	m.Config().Defaults.Workers = 4
	m.Config().UI.JSON = true
	require.NoError(t, m.Save())

	reloaded, err := NewManager(path)
	require.NoError(t, err)
	assert.Equal(t, 4, reloaded.Config().Defaults.Workers)
	assert.True(t, reloaded.Config().UI.JSON)
	assert.Equal(t, path, reloaded.Path())
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv("QRMETA_CONFIG", "/tmp/custom.yaml")
	path, err := getConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)

	t.Setenv("QRMETA_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	path, err = getConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "qrmeta", "config.yaml"), path)
}
