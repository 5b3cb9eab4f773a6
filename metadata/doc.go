/*
Package metadata holds identification metadata for coordinate-system
objects: a name, an optional authority with its code, alias, abbreviation
and remarks.

# Records and variants

Every record satisfies the Record interface. Info is the base
implementation; concrete variants (GeographicCS, ProjectedCS,
PrimeMeridian) embed it and may override the structural comparison, the
hash and the WKT keyword. The base comparison with compareNames=false
treats any two records of the same variant as equal, and the base hash
covers the variant only — both are deliberately coarse defaults that
stateful variants override.

	info, err := metadata.NewInfo(metadata.KindGeographicCS, "WGS84",
		metadata.WithAuthority("EPSG", "4326"))
	fmt.Println(info.WKT()) // GEOGCS["WGS84", AUTHORITY["EPSG","4326"]]

# Canonicalization

A Pool deduplicates structurally equal records process-wide. Records are
held through weak references, so entries vanish once no caller retains
them:

	canonical := metadata.Canonicalize(metadata.DefaultPool, info)

# Remote exports

CachedProxy is the per-record single-initialization cell used by the
remote package to cache the record's remote export.
*/
package metadata
