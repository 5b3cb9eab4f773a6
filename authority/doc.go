/*
Package authority manages catalogs of authority definitions: the entries an
organization such as EPSG publishes under its codes. Definitions live in a
Store (in-memory, or Postgres-backed via the pg subpackage), are loaded from
versioned TOML or YAML catalog files or synced from a remote Source, and are
materialized into canonical metadata records by a Factory:

	catalog, err := authority.LoadCatalogFile("epsg.toml")
	if err := catalog.CheckVersion(">= 9.0"); err != nil { ... }

	store := authority.NewMemoryStore()
	if err := catalog.Populate(store); err != nil { ... }

	factory := authority.NewFactory(store, nil)
	wgs84, err := factory.Create("EPSG", "4326")
*/
package authority
