package authority

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedCatalogFormat = errors.New("unsupported catalog file format")

	// ErrCatalogVersion is returned when a catalog's dataset version does not
	// satisfy the requested constraint.
	ErrCatalogVersion = errors.New("catalog dataset version does not satisfy constraint")
)

// Catalog is a versioned set of authority definitions loaded from a catalog
// file.
type Catalog struct {
	// Authority is the organization the catalog belongs to, e.g. "EPSG".
	Authority string
	// Version is the dataset version of the catalog.
	Version *semver.Version
	// Definitions holds the catalog entries. The authority field of each
	// entry defaults to the catalog authority when the entry leaves it empty.
	Definitions []Definition
}

// catalogDocument is the serialized form of a catalog file.
type catalogDocument struct {
	Authority   string       `toml:"authority" yaml:"authority"`
	Version     string       `toml:"version" yaml:"version"`
	Definitions []Definition `toml:"definitions" yaml:"definitions"`
}

// LoadCatalogFile reads a catalog from a TOML (.toml) or YAML (.yaml, .yml)
// file.
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var doc catalogDocument
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse catalog file %q: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse catalog file %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%q: %w", ext, ErrUnsupportedCatalogFormat)
	}

	version, err := semver.NewVersion(doc.Version)
	if err != nil {
		return nil, fmt.Errorf("parse catalog version %q: %w", doc.Version, err)
	}

	for i := range doc.Definitions {
		if doc.Definitions[i].Authority == "" {
			doc.Definitions[i].Authority = doc.Authority
		}
	}

	return &Catalog{
		Authority:   doc.Authority,
		Version:     version,
		Definitions: doc.Definitions,
	}, nil
}

// CheckVersion verifies that the catalog dataset version satisfies the given
// semver constraint, e.g. ">= 9.0".
func (c *Catalog) CheckVersion(constraint string) error {
	cons, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parse version constraint %q: %w", constraint, err)
	}

	if !cons.Check(c.Version) {
		return fmt.Errorf("version %s against %q: %w", c.Version, constraint, ErrCatalogVersion)
	}

	return nil
}

// Populate upserts every catalog definition into the store.
func (c *Catalog) Populate(store MutableStore) error {
	for _, def := range c.Definitions {
		if err := store.Upsert(def); err != nil {
			return fmt.Errorf("upsert definition %s: %w", def.Key(), err)
		}
	}

	return nil
}
