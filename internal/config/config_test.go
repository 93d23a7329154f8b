package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "addressbook.db", cfg.StoragePath)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"env: dev\nstorage_path: book.yaml\nstorage_driver: yaml\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "book.yaml", cfg.StoragePath)
	assert.Equal(t, DriverYAML, cfg.StorageDriver)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env: dev\n"), 0o644))
	t.Setenv("STORAGE_PATH", "/tmp/other.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", cfg.StoragePath)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "does not exist")

	t.Setenv("STORAGE_DRIVER", "postgres")
	_, err = Load("")
	assert.ErrorContains(t, err, "unknown storage_driver")
}
