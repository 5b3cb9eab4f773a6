package authority

import (
	"errors"
	"io/fs"
	"os"
	"slices"

	"github.com/spf13/viper"
)

// Config is the configuration for wiring an authority catalog into the
// framework.
type Config struct {
	// CatalogPath is the path to a TOML or YAML catalog file.
	CatalogPath string `mapstructure:"catalog_path" yaml:"catalog_path"`
	// VersionConstraint is a semver constraint the catalog dataset version
	// must satisfy, e.g. ">= 9.0". Empty means no check.
	VersionConstraint string `mapstructure:"version_constraint" yaml:"version_constraint"`
	// DatabaseDSN is the Postgres connection string for a database-backed
	// store. Empty means an in-memory store.
	DatabaseDSN string `mapstructure:"database_dsn" yaml:"database_dsn"`
}

// envBindings maps config keys to the environment variables they may be set
// from.
var envBindings = map[string][]string{
	"catalog_path":       {"AUTHORITY_CATALOG_PATH"},
	"version_constraint": {"AUTHORITY_VERSION_CONSTRAINT"},
	"database_dsn":       {"AUTHORITY_DATABASE_DSN"},
}

// LoadConfig loads the config from the file path, falling back to env vars
// if the file does not exist. If the file exists, any env vars that are set
// override the values loaded from the file.
func LoadConfig(filePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(filePath)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadConfigEnv loads the config from the environment variables only.
func LoadConfigEnv() (*Config, error) {
	v := viper.New()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		inputs := slices.Insert(envs, 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
