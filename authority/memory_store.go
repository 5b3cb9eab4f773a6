package authority

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
)

// MemoryStore is an in-memory implementation of the Store and MutableStore
// interfaces. Definitions are kept ordered by key, so Fetch returns them
// sorted by "<authority>:<code>".
type MemoryStore struct {
	mu      sync.RWMutex
	records *treemap.Map
}

var _ Store = (*MemoryStore)(nil)
var _ MutableStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: treemap.NewWithStringComparator()}
}

// Get returns the definition with the given key, or ErrDefinitionNotFound.
func (s *MemoryStore) Get(key DefinitionKey) (Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, found := s.records.Get(key.String())
	if !found {
		return Definition{}, ErrDefinitionNotFound
	}

	return v.(Definition), nil
}

// Fetch returns all definitions ordered by key.
func (s *MemoryStore) Fetch() ([]Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	defs := make([]Definition, 0, s.records.Size())
	it := s.records.Iterator()
	for it.Next() {
		defs = append(defs, it.Value().(Definition))
	}

	return defs, nil
}

// Filter returns all definitions that pass the provided filters, applied in
// order.
func (s *MemoryStore) Filter(filters ...FilterFunc) []Definition {
	defs, _ := s.Fetch()
	for _, filter := range filters {
		defs = filter(defs)
	}

	return defs
}

// Add inserts a new definition, failing with ErrDefinitionExists when a
// definition with the same key is already present.
func (s *MemoryStore) Add(def Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := def.Key().String()
	if _, found := s.records.Get(k); found {
		return ErrDefinitionExists
	}
	s.records.Put(k, def)

	return nil
}

// Upsert inserts or replaces the definition with the same key.
func (s *MemoryStore) Upsert(def Definition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records.Put(def.Key().String(), def)

	return nil
}

// Delete removes the definition with the given key, failing with
// ErrDefinitionNotFound when there is none.
func (s *MemoryStore) Delete(key DefinitionKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key.String()
	if _, found := s.records.Get(k); !found {
		return ErrDefinitionNotFound
	}
	s.records.Remove(k)

	return nil
}
