package pg_test

import (
	"database/sql"
	"testing"

	_ "github.com/proullon/ramsql/driver"
	"github.com/stretchr/testify/require"

	"github.com/spatialkit/referencing-framework/authority"
	"github.com/spatialkit/referencing-framework/authority/pg"
)

func newTestStore(t *testing.T) *pg.Store {
	t.Helper()

	db, err := sql.Open("ramsql", t.Name())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := pg.New(db)
	require.NoError(t, err)

	return store
}

func testDefinition() authority.Definition {
	return authority.Definition{
		Authority: "EPSG",
		Code:      "4326",
		Kind:      "GEOGCS",
		Name:      "WGS84",
		WKT:       `GEOGCS["WGS84", AUTHORITY["EPSG","4326"]]`,
	}
}

func TestStore_AddAndGet(t *testing.T) {
	store := newTestStore(t)

	def := testDefinition()
	require.NoError(t, store.Add(def))

	got, err := store.Get(authority.NewDefinitionKey("EPSG", "4326"))
	require.NoError(t, err)
	require.Equal(t, def, got)
}

func TestStore_Add_Duplicate(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(testDefinition()))
	require.ErrorIs(t, store.Add(testDefinition()), authority.ErrDefinitionExists)
}

func TestStore_Get_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(authority.NewDefinitionKey("EPSG", "0"))
	require.ErrorIs(t, err, authority.ErrDefinitionNotFound)
}

func TestStore_Fetch(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(authority.Definition{
		Authority: "ESRI", Code: "104199", Kind: "GEOGCS", Name: "GCS_Sphere",
	}))
	require.NoError(t, store.Add(testDefinition()))

	defs, err := store.Fetch()
	require.NoError(t, err)
	require.Len(t, defs, 2)
	require.Equal(t, "EPSG", defs[0].Authority)
	require.Equal(t, "ESRI", defs[1].Authority)
}

func TestStore_Filter(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Add(testDefinition()))
	require.NoError(t, store.Add(authority.Definition{
		Authority: "ESRI", Code: "104199", Kind: "GEOGCS", Name: "GCS_Sphere",
	}))

	defs := store.Filter(authority.DefinitionByAuthority("EPSG"))
	require.Len(t, defs, 1)
	require.Equal(t, "4326", defs[0].Code)
}

func TestStore_Upsert(t *testing.T) {
	store := newTestStore(t)

	def := testDefinition()
	require.NoError(t, store.Upsert(def))

	def.Remarks = "world geodetic system"
	require.NoError(t, store.Upsert(def))

	got, err := store.Get(def.Key())
	require.NoError(t, err)
	require.Equal(t, "world geodetic system", got.Remarks)

	defs, err := store.Fetch()
	require.NoError(t, err)
	require.Len(t, defs, 1)
}

func TestStore_Delete(t *testing.T) {
	store := newTestStore(t)

	def := testDefinition()
	require.NoError(t, store.Add(def))
	require.NoError(t, store.Delete(def.Key()))

	_, err := store.Get(def.Key())
	require.ErrorIs(t, err, authority.ErrDefinitionNotFound)

	require.ErrorIs(t, store.Delete(def.Key()), authority.ErrDefinitionNotFound)
}
