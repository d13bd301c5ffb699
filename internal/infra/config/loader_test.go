package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_missingFileFallsBackToDefaults(t *testing.T) {
	l := NewLoaderWithDir(t.TempDir())

	cfg, err := l.Load()

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoader_load(t *testing.T) {
	dir := t.TempDir()
	content := `
[api]
base_url = "http://localhost:8080"

[ui]
include_closed = true

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	cfg, err := NewLoaderWithDir(dir).Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.True(t, cfg.UI.IncludeClosed)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, Default().UI.DateFormat, cfg.UI.DateFormat)
}

func TestLoader_saveRoundTrip(t *testing.T) {
	l := NewLoaderWithDir(filepath.Join(t.TempDir(), "nested"))

	cfg := Default()
	cfg.Log.Level = "warn"
	require.NoError(t, l.Save(cfg))

	got, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoader_invalidToml(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [toml"), 0o600))

	_, err := NewLoaderWithDir(dir).Load()

	assert.Error(t, err)
}
