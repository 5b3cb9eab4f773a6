package units

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrEmptyName    = errors.New("unit name must not be empty")
	ErrInvalidScale = errors.New("unit scale must be a positive number")

	// ErrIncompatibleUnits is returned when a conversion is requested between
	// units of different dimensions.
	ErrIncompatibleUnits = errors.New("units are not convertible")

	ErrNotLinear   = errors.New("unit is not a linear unit")
	ErrNotAngular  = errors.New("unit is not an angular unit")
	ErrNotTemporal = errors.New("unit is not a temporal unit")
)

// Dimension identifies the physical dimension of a unit.
type Dimension string

const (
	DimensionLinear   Dimension = "linear"
	DimensionAngular  Dimension = "angular"
	DimensionTemporal Dimension = "temporal"
)

// Unit is a unit of measure with a fixed scale to the base unit of its
// dimension (metre, radian or second). The zero value is not a valid unit;
// use New or one of the predefined units.
type Unit struct {
	name  string
	dim   Dimension
	scale float64
}

// Predefined units.
var (
	Metre     = Unit{name: "metre", dim: DimensionLinear, scale: 1}
	Kilometre = Unit{name: "kilometre", dim: DimensionLinear, scale: 1000}
	Foot      = Unit{name: "foot", dim: DimensionLinear, scale: 0.3048}

	Radian    = Unit{name: "radian", dim: DimensionAngular, scale: 1}
	Degree    = Unit{name: "degree", dim: DimensionAngular, scale: 0.017453292519943295}
	ArcSecond = Unit{name: "arc-second", dim: DimensionAngular, scale: 4.84813681109536e-06}

	Second = Unit{name: "second", dim: DimensionTemporal, scale: 1}
	Day    = Unit{name: "day", dim: DimensionTemporal, scale: 86400}
)

// New creates a unit with the given name, dimension and scale to the base
// unit of the dimension.
func New(name string, dim Dimension, scale float64) (Unit, error) {
	if name == "" {
		return Unit{}, ErrEmptyName
	}
	if scale <= 0 {
		return Unit{}, fmt.Errorf("%w: got %v", ErrInvalidScale, scale)
	}

	switch dim {
	case DimensionLinear, DimensionAngular, DimensionTemporal:
	default:
		return Unit{}, fmt.Errorf("unknown dimension %q", dim)
	}

	return Unit{name: name, dim: dim, scale: scale}, nil
}

// Name returns the unit name.
func (u Unit) Name() string { return u.name }

// Dimension returns the physical dimension of the unit.
func (u Unit) Dimension() Dimension { return u.dim }

// ScaleToBase returns the number of base units (metres, radians or seconds)
// per one of this unit.
func (u Unit) ScaleToBase() float64 { return u.scale }

// IsZero reports whether the unit is the invalid zero value.
func (u Unit) IsZero() bool { return u.name == "" }

// CanConvert reports whether values in from can be converted to this unit.
func (u Unit) CanConvert(from Unit) bool {
	return !u.IsZero() && !from.IsZero() && u.dim == from.dim
}

// Convert converts a value expressed in from into this unit.
func (u Unit) Convert(value float64, from Unit) (float64, error) {
	if !u.CanConvert(from) {
		return 0, fmt.Errorf("convert %q to %q: %w", from.name, u.name, ErrIncompatibleUnits)
	}

	return value * from.scale / u.scale, nil
}

// WKT returns the unit clause of a Well Known Text description,
// e.g. UNIT["metre",1].
func (u Unit) WKT() string {
	return `UNIT["` + u.name + `",` + strconv.FormatFloat(u.scale, 'g', -1, 64) + `]`
}

// String implements fmt.Stringer and returns the WKT clause.
func (u Unit) String() string { return u.WKT() }

// EnsureLinear returns an error unless u is a linear unit.
func EnsureLinear(u Unit) error {
	if !Metre.CanConvert(u) {
		return fmt.Errorf("%q: %w", u.name, ErrNotLinear)
	}

	return nil
}

// EnsureAngular returns an error unless u is an angular unit.
func EnsureAngular(u Unit) error {
	if !Radian.CanConvert(u) {
		return fmt.Errorf("%q: %w", u.name, ErrNotAngular)
	}

	return nil
}

// EnsureTemporal returns an error unless u is a temporal unit.
func EnsureTemporal(u Unit) error {
	if !Second.CanConvert(u) {
		return fmt.Errorf("%q: %w", u.name, ErrNotTemporal)
	}

	return nil
}
