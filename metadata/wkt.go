package metadata

import "strings"

// wktBodyAppender is implemented by variants that contribute extra clauses
// inside the brackets of their WKT description, between the quoted name and
// the AUTHORITY clause.
type wktBodyAppender interface {
	appendWKTBody(b *strings.Builder)
}

// Render produces the bracketed Well Known Text description of a record:
//
//	GEOGCS["WGS84", AUTHORITY["EPSG","4326"]]
//
// The AUTHORITY clause is emitted only when the record carries an authority
// attribute; the authority code is appended after the authority name when
// present. Render always formats dynamically; use Record.WKT to honor a
// cached description.
func Render(rec Record) string {
	var b strings.Builder
	b.Grow(40)

	b.WriteString(rec.WKTKeyword())
	b.WriteString(`["`)
	b.WriteString(rec.Name())
	b.WriteString(`"`)

	if appender, ok := rec.(wktBodyAppender); ok {
		appender.appendWKTBody(&b)
	}

	if authority, ok := rec.Property(PropertyAuthority); ok {
		b.WriteString(`, AUTHORITY["`)
		b.WriteString(authority)
		if code, ok := rec.Property(PropertyAuthorityCode); ok {
			b.WriteString(`","`)
			b.WriteString(code)
		}
		b.WriteString(`"]`)
	}

	b.WriteString(`]`)

	return b.String()
}

// WKTKeyword returns the keyword opening the WKT description. The base
// implementation returns the Kind.
func (i *Info) WKTKeyword() string { return string(i.kind) }

// wktOf returns the cached description when one is present, rendering
// dynamically otherwise. Variants overriding WKT call this with themselves
// so their body clauses are picked up.
func wktOf(rec Record) string {
	if wkt, ok := rec.Property(PropertyWKT); ok {
		return wkt
	}

	return Render(rec)
}

// WKT returns the Well Known Text description of the record. A precomputed
// description stored under the PropertyWKT key takes precedence over
// dynamic rendering.
func (i *Info) WKT() string { return wktOf(i) }

// String implements fmt.Stringer and returns the WKT description.
func (i *Info) String() string { return i.WKT() }
