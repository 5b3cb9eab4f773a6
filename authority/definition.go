package authority

import (
	"errors"
	"fmt"
)

var ErrDefinitionNotFound = errors.New("no definition can be found for the provided key")
var ErrDefinitionExists = errors.New("a definition with the supplied key already exists")

// Definition is a single entry of an authority catalog: the identification
// metadata an authority such as EPSG publishes for one of its codes.
type Definition struct {
	// Authority is the organization that maintains the definition, e.g. "EPSG".
	Authority string `json:"authority" toml:"authority" yaml:"authority"`
	// Code is the authority-specific identification code, e.g. "4326".
	Code string `json:"code" toml:"code" yaml:"code"`
	// Kind is the variant of the defined object, e.g. "GEOGCS".
	Kind string `json:"kind" toml:"kind" yaml:"kind"`
	// Name is the display name of the defined object.
	Name string `json:"name" toml:"name" yaml:"name"`
	// WKT is the precomputed Well Known Text description, if the authority
	// publishes one.
	WKT string `json:"wkt,omitempty" toml:"wkt,omitempty" yaml:"wkt,omitempty"`
	// Remarks holds free-form display text.
	Remarks string `json:"remarks,omitempty" toml:"remarks,omitempty" yaml:"remarks,omitempty"`
}

// Key returns the DefinitionKey identifying the definition in a store.
func (d Definition) Key() DefinitionKey {
	return NewDefinitionKey(d.Authority, d.Code)
}

// DefinitionKey uniquely identifies a Definition by authority and code.
type DefinitionKey interface {
	fmt.Stringer

	// Authority returns the authority part of the key.
	Authority() string
	// Code returns the code part of the key.
	Code() string
	// Equals reports whether two keys identify the same definition.
	Equals(other DefinitionKey) bool
}

var _ DefinitionKey = definitionKey{}

type definitionKey struct {
	authority string
	code      string
}

// NewDefinitionKey creates a DefinitionKey for the given authority and code.
func NewDefinitionKey(authority, code string) DefinitionKey {
	return definitionKey{authority: authority, code: code}
}

// Authority returns the authority part of the key.
func (k definitionKey) Authority() string { return k.authority }

// Code returns the code part of the key.
func (k definitionKey) Code() string { return k.code }

// Equals reports whether two keys identify the same definition.
func (k definitionKey) Equals(other DefinitionKey) bool {
	return k.authority == other.Authority() && k.code == other.Code()
}

// String returns "<authority>:<code>".
func (k definitionKey) String() string {
	return k.authority + ":" + k.code
}
