package metadata

import (
	"hash/fnv"
	"math"
	"strconv"
	"strings"

	"github.com/spatialkit/referencing-framework/units"
)

// GeographicCS is a geographic coordinate system record. It is a thin
// variant: it carries no state beyond the base record, so it inherits the
// deliberately coarse base comparison.
type GeographicCS struct {
	Info
}

var _ Record = (*GeographicCS)(nil)

// NewGeographicCS creates a geographic coordinate system record.
func NewGeographicCS(name string, opts ...Option) (*GeographicCS, error) {
	info, err := NewInfo(KindGeographicCS, name, opts...)
	if err != nil {
		return nil, err
	}

	return &GeographicCS{Info: *info}, nil
}

// WKT implements Record for the variant so body clauses of future overrides
// render through the variant, not the embedded base.
func (g *GeographicCS) WKT() string { return wktOf(g) }

// String implements fmt.Stringer.
func (g *GeographicCS) String() string { return g.WKT() }

// ProjectedCS is a projected coordinate system record with a linear unit.
type ProjectedCS struct {
	Info
	unit units.Unit
}

var _ Record = (*ProjectedCS)(nil)

// NewProjectedCS creates a projected coordinate system record. The unit must
// be a linear unit.
func NewProjectedCS(name string, unit units.Unit, opts ...Option) (*ProjectedCS, error) {
	if err := units.EnsureLinear(unit); err != nil {
		return nil, err
	}

	info, err := NewInfo(KindProjectedCS, name, opts...)
	if err != nil {
		return nil, err
	}

	return &ProjectedCS{Info: *info, unit: unit}, nil
}

// Unit returns the linear unit of the coordinate system.
func (p *ProjectedCS) Unit() units.Unit { return p.unit }

// StructuralEquals overrides the coarse base comparison with a unit check.
func (p *ProjectedCS) StructuralEquals(other Record, compareNames bool) bool {
	o, ok := other.(*ProjectedCS)
	if !ok {
		return false
	}
	if p.unit != o.unit {
		return false
	}

	return p.Info.StructuralEquals(other, compareNames)
}

// StructuralHash folds the unit into the base hash.
func (p *ProjectedCS) StructuralHash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(p.Kind()))
	h.Write([]byte(p.unit.Name()))

	return h.Sum64()
}

func (p *ProjectedCS) appendWKTBody(b *strings.Builder) {
	b.WriteString(`, `)
	b.WriteString(p.unit.WKT())
}

// WKT implements Record.
func (p *ProjectedCS) WKT() string { return wktOf(p) }

// String implements fmt.Stringer.
func (p *ProjectedCS) String() string { return p.WKT() }

// PrimeMeridian is a prime meridian record: a longitude relative to
// Greenwich expressed in an angular unit.
type PrimeMeridian struct {
	Info
	longitude float64
	unit      units.Unit
}

var _ Record = (*PrimeMeridian)(nil)

// NewPrimeMeridian creates a prime meridian record. The unit must be an
// angular unit.
func NewPrimeMeridian(name string, longitude float64, unit units.Unit, opts ...Option) (*PrimeMeridian, error) {
	if err := units.EnsureAngular(unit); err != nil {
		return nil, err
	}

	info, err := NewInfo(KindPrimeMeridian, name, opts...)
	if err != nil {
		return nil, err
	}

	return &PrimeMeridian{Info: *info, longitude: longitude, unit: unit}, nil
}

// Longitude returns the longitude relative to Greenwich, in the record's
// angular unit.
func (p *PrimeMeridian) Longitude() float64 { return p.longitude }

// Unit returns the angular unit of the longitude.
func (p *PrimeMeridian) Unit() units.Unit { return p.unit }

// StructuralEquals overrides the coarse base comparison with a positional
// identity check.
func (p *PrimeMeridian) StructuralEquals(other Record, compareNames bool) bool {
	o, ok := other.(*PrimeMeridian)
	if !ok {
		return false
	}
	if p.longitude != o.longitude || p.unit != o.unit {
		return false
	}

	return p.Info.StructuralEquals(other, compareNames)
}

// StructuralHash folds the longitude and unit into the base hash.
func (p *PrimeMeridian) StructuralHash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(p.Kind()))
	h.Write([]byte(p.unit.Name()))

	var buf [8]byte
	bits := math.Float64bits(p.longitude)
	for i := range buf {
		buf[i] = byte(bits >> (8 * i))
	}
	h.Write(buf[:])

	return h.Sum64()
}

func (p *PrimeMeridian) appendWKTBody(b *strings.Builder) {
	b.WriteString(`,`)
	b.WriteString(strconv.FormatFloat(p.longitude, 'g', -1, 64))
	b.WriteString(`, `)
	b.WriteString(p.unit.WKT())
}

// WKT implements Record.
func (p *PrimeMeridian) WKT() string { return wktOf(p) }

// String implements fmt.Stringer.
func (p *PrimeMeridian) String() string { return p.WKT() }
