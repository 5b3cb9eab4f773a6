package metadata

import (
	"errors"
	"hash/fnv"
	"maps"
)

var ErrEmptyName = errors.New("metadata record name must not be empty")

// Property keys recognized in a Properties map. All secondary attributes of a
// record are string valued and live under one of these keys; PropertyWKT
// holds a precomputed textual description that takes precedence over dynamic
// rendering.
const (
	PropertyAuthority     = "authority"
	PropertyAuthorityCode = "authorityCode"
	PropertyAlias         = "alias"
	PropertyAbbreviation  = "abbreviation"
	PropertyWKT           = "WKT"
	PropertyProxy         = "proxy"
)

// Kind is a string discriminator for the concrete variant of a metadata
// record. The base WKT keyword of a record is the string form of its Kind.
type Kind string

// String returns the string form of the Kind.
func (k Kind) String() string { return string(k) }

// Kinds of the predefined variants.
const (
	KindInfo          Kind = "INFO"
	KindGeographicCS  Kind = "GEOGCS"
	KindProjectedCS   Kind = "PROJCS"
	KindPrimeMeridian Kind = "PRIMEM"
)

// Properties is a set of secondary string attributes for a metadata record,
// keyed by the Property* constants.
type Properties map[string]string

// Clone returns a copy of the Properties.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}

	return maps.Clone(p)
}

// Record is the interface all metadata record variants satisfy. The pool,
// the renderer and the remote adapter layer operate on this interface.
type Record interface {
	// Name returns the primary identifier of the record.
	Name() string
	// Remarks returns the display remarks, or "" if there are none.
	Remarks() string
	// Property returns the secondary attribute stored under key.
	Property(key string) (string, bool)
	// Properties returns a copy of all secondary attributes.
	Properties() Properties
	// Kind returns the variant discriminator.
	Kind() Kind

	// WKTKeyword returns the keyword opening the WKT description. The base
	// implementation returns the Kind; variants may override it.
	WKTKeyword() string
	// WKT returns the Well Known Text description of the record.
	WKT() string

	// StructuralEquals compares two records. With compareNames false only the
	// variant is compared, which is deliberately coarse at the base level;
	// variants carrying positional or numeric state should override it with a
	// real identity check. With compareNames true the name and all secondary
	// attributes must match as well.
	StructuralEquals(other Record, compareNames bool) bool
	// StructuralHash returns a hash consistent with
	// StructuralEquals(other, false). The base implementation hashes the Kind
	// only and ignores name and properties; this is a documented weak base
	// behavior that variants are expected to override, not a defect.
	StructuralHash() uint64

	// CachedProxy returns the remote export cached for this record, creating
	// it with create on first access. See the remote package.
	CachedProxy(create ProxyFactory) (any, error)
}

// Info is the base metadata record. It is immutable once constructed and
// safe for concurrent use.
type Info struct {
	name       string
	remarks    string
	kind       Kind
	properties Properties

	proxy proxyCache
}

var _ Record = (*Info)(nil)

// Option configures a record at construction time.
type Option func(*Info)

// WithProperties copies the recognized keys of props into the record.
func WithProperties(props Properties) Option {
	return func(i *Info) {
		for _, key := range []string{
			PropertyAuthority, PropertyAuthorityCode, PropertyAlias,
			PropertyAbbreviation, PropertyWKT,
		} {
			if v, ok := props[key]; ok {
				i.setProperty(key, v)
			}
		}
	}
}

// WithAuthority sets the authority and authority code attributes, e.g.
// ("EPSG", "4326").
func WithAuthority(authority, code string) Option {
	return func(i *Info) {
		i.setProperty(PropertyAuthority, authority)
		if code != "" {
			i.setProperty(PropertyAuthorityCode, code)
		}
	}
}

// WithAlias sets the alias attribute.
func WithAlias(alias string) Option {
	return func(i *Info) { i.setProperty(PropertyAlias, alias) }
}

// WithAbbreviation sets the abbreviation attribute.
func WithAbbreviation(abbreviation string) Option {
	return func(i *Info) { i.setProperty(PropertyAbbreviation, abbreviation) }
}

// WithWKT sets a precomputed WKT description which takes precedence over
// dynamic rendering.
func WithWKT(wkt string) Option {
	return func(i *Info) { i.setProperty(PropertyWKT, wkt) }
}

// WithRemarks sets the display remarks.
func WithRemarks(remarks string) Option {
	return func(i *Info) { i.remarks = remarks }
}

// WithProxy seeds the remote export cache with a pre-assigned export. The
// seeded export is held strongly and returned by CachedProxy without
// invoking the factory.
func WithProxy(proxy any) Option {
	return func(i *Info) { i.proxy.strong = proxy }
}

// NewInfo creates a base record of the given kind. The name is required;
// remarks default to the empty string.
func NewInfo(kind Kind, name string, opts ...Option) (*Info, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	info := &Info{name: name, kind: kind}
	for _, opt := range opts {
		opt(info)
	}

	return info, nil
}

func (i *Info) setProperty(key, value string) {
	if i.properties == nil {
		i.properties = make(Properties)
	}
	i.properties[key] = value
}

// Name returns the primary identifier given at construction time.
func (i *Info) Name() string { return i.name }

// Remarks returns the display remarks, or "" if there are none.
func (i *Info) Remarks() string { return i.remarks }

// Kind returns the variant discriminator.
func (i *Info) Kind() Kind { return i.kind }

// Property returns the secondary attribute stored under key.
func (i *Info) Property(key string) (string, bool) {
	v, ok := i.properties[key]
	return v, ok
}

// Properties returns a copy of all secondary attributes.
func (i *Info) Properties() Properties { return i.properties.Clone() }

// Authority returns the authority attribute, or "" if unspecified. An
// authority is an organization that maintains definitions of authority
// codes, e.g. the European Petroleum Survey Group (EPSG).
func (i *Info) Authority() string {
	v, _ := i.Property(PropertyAuthority)
	return v
}

// AuthorityCode returns the authority-specific identification code, or ""
// if unspecified. For example the EPSG code for a WGS84 lat/lon coordinate
// system is "4326".
func (i *Info) AuthorityCode() string {
	v, _ := i.Property(PropertyAuthorityCode)
	return v
}

// Alias returns the alias attribute, or "" if there is none.
func (i *Info) Alias() string {
	v, _ := i.Property(PropertyAlias)
	return v
}

// Abbreviation returns the abbreviation attribute, or "" if there is none.
func (i *Info) Abbreviation() string {
	v, _ := i.Property(PropertyAbbreviation)
	return v
}

// StructuralEquals implements Record. With compareNames false any two
// records of the same Kind compare equal.
func (i *Info) StructuralEquals(other Record, compareNames bool) bool {
	if other == nil || other.Kind() != i.kind {
		return false
	}
	if !compareNames {
		return true
	}

	return i.name == other.Name() && maps.Equal(i.properties, other.Properties())
}

// StructuralHash implements Record. The base implementation hashes the Kind
// only; see the Record documentation.
func (i *Info) StructuralHash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(i.kind))

	return h.Sum64()
}
