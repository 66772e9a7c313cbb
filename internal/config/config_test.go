package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDefaults(t *testing.T) {
	var cfg Config
	Normalize(&cfg)

	assert.Equal(t, 38572, cfg.App.Port)
	assert.Equal(t, 993, cfg.Sources.Alerts.IMAPPort)
	assert.Equal(t, "us", cfg.Sources.Adzuna.Country)
}

func TestNormalizeAssignsPrioritiesInDeclarationOrder(t *testing.T) {
	var cfg Config
	Normalize(&cfg)

	assert.Equal(t, 1, cfg.Sources.JSearch.Priority)
	assert.Equal(t, 2, cfg.Sources.Adzuna.Priority)
	assert.Equal(t, 3, cfg.Sources.Reed.Priority)
	assert.Equal(t, 4, cfg.Sources.Remotive.Priority)
	assert.Equal(t, 5, cfg.Sources.WebSearch.Priority)
	assert.Equal(t, 6, cfg.Sources.Greenhouse.Priority)
	assert.Equal(t, 7, cfg.Sources.Alerts.Priority)
}

func TestNormalizeRespectsExplicitPriorities(t *testing.T) {
	var cfg Config
	cfg.Sources.Adzuna.Priority = 1
	cfg.Sources.JSearch.Priority = 9
	Normalize(&cfg)

	// explicit values are kept, zeros fill in after the previous value
	assert.Equal(t, 9, cfg.Sources.JSearch.Priority)
	assert.Equal(t, 1, cfg.Sources.Adzuna.Priority)
	assert.Equal(t, 2, cfg.Sources.Reed.Priority)
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  port: 4000
search:
  default_query: "golang"
  refresh_minutes: 30
sources:
  jsearch:
    enabled: true
    priority: 2
  greenhouse:
    enabled: true
    boards: ["acme", "globex"]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.App.Port)
	assert.Equal(t, "golang", cfg.Search.DefaultQuery)
	assert.Equal(t, 30, cfg.Search.RefreshMinutes)
	assert.True(t, cfg.Sources.JSearch.Enabled)
	assert.Equal(t, 2, cfg.Sources.JSearch.Priority)
	assert.Equal(t, []string{"acme", "globex"}, cfg.Sources.Greenhouse.Boards)
	assert.False(t, cfg.Sources.Alerts.Enabled)
}

func TestEnsureUserConfigCopiesDefault(t *testing.T) {
	dataDir := t.TempDir()
	defDir := t.TempDir()
	defPath := filepath.Join(defDir, "config.yml")
	require.NoError(t, os.WriteFile(defPath, []byte("app:\n  port: 5000\n"), 0o644))

	userPath, err := EnsureUserConfig(dataDir, defPath)
	require.NoError(t, err)

	cfg, err := Load(userPath)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.App.Port)

	// second call must not clobber the user copy
	require.NoError(t, os.WriteFile(userPath, []byte("app:\n  port: 6000\n"), 0o644))
	again, err := EnsureUserConfig(dataDir, defPath)
	require.NoError(t, err)
	assert.Equal(t, userPath, again)

	cfg, err = Load(userPath)
	require.NoError(t, err)
	assert.Equal(t, 6000, cfg.App.Port)
}
