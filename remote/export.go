package remote

import (
	"errors"
	"fmt"
	"weak"

	"github.com/spatialkit/referencing-framework/metadata"
)

// ErrXMLUnsupported is returned by the XML rendering path of every export.
// XML formatting is deliberately not implemented; callers detect it with
// errors.Is(err, errors.ErrUnsupported).
var ErrXMLUnsupported = fmt.Errorf("xml rendering: %w", errors.ErrUnsupported)

// InfoExport is the remote-facing surface of a metadata record. Every method
// carries an error return so implementations backed by an actual remote
// transport can surface transport failures.
type InfoExport interface {
	// ID returns the registration identifier of the export.
	ID() string

	Name() (string, error)
	Authority() (string, error)
	AuthorityCode() (string, error)
	Alias() (string, error)
	Abbreviation() (string, error)
	Remarks() (string, error)

	// WKT returns the Well Known Text description of the underlying record.
	WKT() (string, error)
	// XML always fails with ErrXMLUnsupported.
	XML() (string, error)
}

// LinearUnitExport is the remote-facing surface of a linear-unit-bearing
// record.
type LinearUnitExport interface {
	InfoExport
	MetersPerUnit() (float64, error)
}

// AngularUnitExport is the remote-facing surface of an angular-unit-bearing
// record.
type AngularUnitExport interface {
	InfoExport
	RadiansPerUnit() (float64, error)
}

// export wraps a metadata record for remote use, delegating every getter to
// the record.
type export struct {
	id     string
	record metadata.Record
}

var _ InfoExport = (*export)(nil)

func (e *export) ID() string { return e.id }

func (e *export) Name() (string, error) { return e.record.Name(), nil }

func (e *export) Authority() (string, error) {
	v, _ := e.record.Property(metadata.PropertyAuthority)
	return v, nil
}

func (e *export) AuthorityCode() (string, error) {
	v, _ := e.record.Property(metadata.PropertyAuthorityCode)
	return v, nil
}

func (e *export) Alias() (string, error) {
	v, _ := e.record.Property(metadata.PropertyAlias)
	return v, nil
}

func (e *export) Abbreviation() (string, error) {
	v, _ := e.record.Property(metadata.PropertyAbbreviation)
	return v, nil
}

func (e *export) Remarks() (string, error) { return e.record.Remarks(), nil }

func (e *export) WKT() (string, error) { return e.record.WKT(), nil }

func (e *export) XML() (string, error) { return "", ErrXMLUnsupported }

func (e *export) String() string { return e.record.WKT() }

// linearUnitExport adds the meters-per-unit scale of a linear unit record.
type linearUnitExport struct {
	export
	metersPerUnit float64
}

var _ LinearUnitExport = (*linearUnitExport)(nil)

func (e *linearUnitExport) MetersPerUnit() (float64, error) { return e.metersPerUnit, nil }

// angularUnitExport adds the radians-per-unit scale of an angular unit
// record.
type angularUnitExport struct {
	export
	radiansPerUnit float64
}

var _ AngularUnitExport = (*angularUnitExport)(nil)

func (e *angularUnitExport) RadiansPerUnit() (float64, error) { return e.radiansPerUnit, nil }

// exportRef retains a created export weakly so an export nobody uses can be
// reclaimed together with its registration.
type exportRef[T any] struct {
	w weak.Pointer[T]
}

func newExportRef[T any](e *T) exportRef[T] {
	return exportRef[T]{w: weak.Make(e)}
}

// Live implements metadata.ProxyRef.
func (r exportRef[T]) Live() any {
	if v := r.w.Value(); v != nil {
		return v
	}

	return nil
}
