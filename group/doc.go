// Package group provides an indexable collection of polymorphic group
// entries with family-checked accessors. Retrieval fails descriptively when
// the index is out of range or the stored entry does not match the
// requested family.
package group
