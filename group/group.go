package group

import "fmt"

// Families of group entries.
const (
	FamilyByte = "byte"
	FamilyChar = "char"
)

// Group is an entry of a Groups collection. An entry can be byte oriented,
// char oriented, or any other family a caller defines.
type Group interface {
	// String returns the group name and family, "<name> (<family>)".
	String() string
	// Name returns the name of the group.
	Name() string
	// Family returns the family of the group, e.g. "byte" or "char".
	Family() string
}

var _ Group = ByteGroup{}
var _ Group = CharGroup{}

// ByteGroup is a byte-oriented group entry.
type ByteGroup struct {
	name string
	data []byte
}

// NewByteGroup creates a byte-oriented group with the given name and data.
func NewByteGroup(name string, data []byte) ByteGroup {
	return ByteGroup{name: name, data: data}
}

// Name returns the name of the group.
func (g ByteGroup) Name() string { return g.name }

// Family returns FamilyByte.
func (g ByteGroup) Family() string { return FamilyByte }

// Bytes returns the stored data.
func (g ByteGroup) Bytes() []byte { return g.data }

// String implements fmt.Stringer.
func (g ByteGroup) String() string {
	return fmt.Sprintf("%s (%s)", g.name, FamilyByte)
}

// CharGroup is a char-oriented group entry.
type CharGroup struct {
	name string
	data []rune
}

// NewCharGroup creates a char-oriented group with the given name and data.
func NewCharGroup(name string, data []rune) CharGroup {
	return CharGroup{name: name, data: data}
}

// Name returns the name of the group.
func (g CharGroup) Name() string { return g.name }

// Family returns FamilyChar.
func (g CharGroup) Family() string { return FamilyChar }

// Runes returns the stored data.
func (g CharGroup) Runes() []rune { return g.data }

// String implements fmt.Stringer.
func (g CharGroup) String() string {
	return fmt.Sprintf("%s (%s)", g.name, FamilyChar)
}
