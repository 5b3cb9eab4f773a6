package group

import (
	"errors"
	"fmt"
	"iter"
)

var (
	ErrEmpty         = errors.New("group collection is empty")
	ErrIndexTooSmall = errors.New("index is too small for the collection")
	ErrIndexTooBig   = errors.New("index is too big for the collection")
	ErrNilEntry      = errors.New("stored entry is nil")
	ErrWrongFamily   = errors.New("stored entry belongs to a different family")
)

// Groups is an ordered collection of Group entries accessed by zero-based
// index. The backing storage is allocated lazily on first insertion, so the
// zero value is a usable empty collection.
//
// Groups is not safe for concurrent mutation.
type Groups struct {
	entries []Group
}

// NewGroups initializes a collection from a slice of entries. The slice is
// copied.
func NewGroups(entries []Group) *Groups {
	g := &Groups{}
	g.Append(entries...)

	return g
}

// Count returns the number of entries, or 0 if the collection was never
// populated.
func (g *Groups) Count() int {
	if g.entries == nil {
		return 0
	}

	return len(g.entries)
}

// Append adds entries to the end of the collection, allocating the backing
// storage on first use.
func (g *Groups) Append(entries ...Group) {
	if len(entries) == 0 {
		return
	}
	if g.entries == nil {
		g.entries = make([]Group, 0, len(entries))
	}
	g.entries = append(g.entries, entries...)
}

// Get returns the entry at index i. The returned value is the stored
// instance, not a copy. It fails with a descriptive error when the
// collection is empty, i is out of range, or the stored entry is nil.
func (g *Groups) Get(i int) (Group, error) {
	if g.entries == nil {
		return nil, ErrEmpty
	}
	if i < 0 {
		return nil, fmt.Errorf("index %d: %w", i, ErrIndexTooSmall)
	}
	if i >= len(g.entries) {
		return nil, fmt.Errorf("index %d of %d: %w", i, len(g.entries), ErrIndexTooBig)
	}

	entry := g.entries[i]
	if entry == nil {
		return nil, fmt.Errorf("index %d: %w", i, ErrNilEntry)
	}

	return entry, nil
}

// ByteGroupAt returns the entry at index i as a ByteGroup, failing with
// ErrWrongFamily when the stored entry belongs to another family.
func (g *Groups) ByteGroupAt(i int) (ByteGroup, error) {
	entry, err := g.Get(i)
	if err != nil {
		return ByteGroup{}, err
	}

	bg, ok := entry.(ByteGroup)
	if !ok {
		return ByteGroup{}, fmt.Errorf("index %d holds %q, want %q: %w",
			i, entry.Family(), FamilyByte, ErrWrongFamily)
	}

	return bg, nil
}

// CharGroupAt returns the entry at index i as a CharGroup, failing with
// ErrWrongFamily when the stored entry belongs to another family.
func (g *Groups) CharGroupAt(i int) (CharGroup, error) {
	entry, err := g.Get(i)
	if err != nil {
		return CharGroup{}, err
	}

	cg, ok := entry.(CharGroup)
	if !ok {
		return CharGroup{}, fmt.Errorf("index %d holds %q, want %q: %w",
			i, entry.Family(), FamilyChar, ErrWrongFamily)
	}

	return cg, nil
}

// ByteGroups returns all byte-oriented entries in order.
func (g *Groups) ByteGroups() []ByteGroup {
	var out []ByteGroup
	for _, entry := range g.entries {
		if bg, ok := entry.(ByteGroup); ok {
			out = append(out, bg)
		}
	}

	return out
}

// CharGroups returns all char-oriented entries in order.
func (g *Groups) CharGroups() []CharGroup {
	var out []CharGroup
	for _, entry := range g.entries {
		if cg, ok := entry.(CharGroup); ok {
			out = append(out, cg)
		}
	}

	return out
}

// All returns an iterator over index and entry pairs.
func (g *Groups) All() iter.Seq2[int, Group] {
	return func(yield func(int, Group) bool) {
		for i, entry := range g.entries {
			if !yield(i, entry) {
				return
			}
		}
	}
}
