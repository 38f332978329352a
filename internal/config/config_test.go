package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "auto", cfg.Color)
	assert.False(t, cfg.LogUseCases)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "db_path: /tmp/test.db\nuser_email: alice@example.com\ncolor: never\nlog_use_cases: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DBPath)
	assert.Equal(t, "alice@example.com", cfg.UserEmail)
	assert.Equal(t, "never", cfg.Color)
	assert.True(t, cfg.LogUseCases)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PROJEKTOR_DB_PATH", "/tmp/env.db")
	t.Setenv("PROJEKTOR_USER_EMAIL", "bob@example.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "bob@example.com", cfg.UserEmail)
}

func TestLoadRejectsBadColorMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: sometimes\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
