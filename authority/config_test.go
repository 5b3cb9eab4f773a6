package authority

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const configYAML = `
catalog_path: /var/lib/referencing/epsg.toml
version_constraint: ">= 9.0"
database_dsn: postgres://localhost:5432/referencing
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "/var/lib/referencing/epsg.toml", cfg.CatalogPath)
	require.Equal(t, ">= 9.0", cfg.VersionConstraint)
	require.Equal(t, "postgres://localhost:5432/referencing", cfg.DatabaseDSN)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o600))

	t.Setenv("AUTHORITY_CATALOG_PATH", "/tmp/override.yaml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/override.yaml", cfg.CatalogPath)
	require.Equal(t, ">= 9.0", cfg.VersionConstraint)
}

func TestLoadConfig_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("AUTHORITY_DATABASE_DSN", "postgres://env:5432/referencing")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, "postgres://env:5432/referencing", cfg.DatabaseDSN)
	require.Empty(t, cfg.CatalogPath)
}

func TestLoadConfigEnv(t *testing.T) {
	t.Setenv("AUTHORITY_CATALOG_PATH", "/etc/referencing/catalog.toml")
	t.Setenv("AUTHORITY_VERSION_CONSTRAINT", ">= 10.0")

	cfg, err := LoadConfigEnv()
	require.NoError(t, err)
	require.Equal(t, "/etc/referencing/catalog.toml", cfg.CatalogPath)
	require.Equal(t, ">= 10.0", cfg.VersionConstraint)
	require.Empty(t, cfg.DatabaseDSN)
}
