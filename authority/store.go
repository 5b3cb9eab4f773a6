package authority

// Store is an immutable view over a set of Definition records identified by
// DefinitionKey.
type Store interface {
	// Get returns the definition with the given key, or an error if no such
	// definition exists.
	Get(key DefinitionKey) (Definition, error)
	// Fetch returns all definitions, ordered by key.
	Fetch() ([]Definition, error)
	// Filter returns all definitions that pass the provided filters, applied
	// in order. With no filters, all definitions are returned.
	Filter(filters ...FilterFunc) []Definition
}

// MutableStore is a mutable set of Definition records.
type MutableStore interface {
	Store

	// Add inserts a new definition, failing with ErrDefinitionExists when a
	// definition with the same key is already present.
	Add(def Definition) error
	// Upsert behaves like Add when no definition with the same key exists,
	// and replaces the existing definition otherwise.
	Upsert(def Definition) error
	// Delete removes the definition with the given key, failing with
	// ErrDefinitionNotFound when there is none.
	Delete(key DefinitionKey) error
}
