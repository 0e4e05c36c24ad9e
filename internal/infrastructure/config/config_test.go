package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, []string{"https://studio.apollographql.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 20, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 100, cfg.Pagination.MaxLimit)
	assert.Same(t, cfg, Get())
}

func TestLoad_FileEnvAndModeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "custom.yaml")
	content := []byte(`
server:
  port: 8088
database:
  driver: sqlite
  path: board.db
logger:
  format: json
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("NOTICEBOARD_DATABASE_PATH", "/var/lib/board.db")

	cfg, err := Load("release", path)
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/var/lib/board.db", cfg.Database.Path)
	assert.Equal(t, "json", cfg.Logger.Format)
}

func TestLoad_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NOTICEBOARD_SERVER_PORT=9099\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("NOTICEBOARD_SERVER_PORT") })

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, 9099, cfg.Server.Port)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load("", "does-not-exist.yaml")
	assert.Error(t, err)
}
