package authority

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spatialkit/referencing-framework/metadata"
)

func newPopulatedStore(t *testing.T) *MemoryStore {
	t.Helper()

	store := NewMemoryStore()
	for _, def := range testDefinitions() {
		require.NoError(t, store.Add(def))
	}
	require.NoError(t, store.Add(Definition{
		Authority: "EPSG",
		Code:      "8901",
		Kind:      "PRIMEM",
		Name:      "Greenwich",
	}))

	return store
}

func TestFactory_Create(t *testing.T) {
	t.Parallel()

	factory := NewFactory(newPopulatedStore(t), metadata.NewPool())

	rec, err := factory.Create("EPSG", "4326")
	require.NoError(t, err)

	require.Equal(t, "WGS84", rec.Name())
	require.Equal(t, metadata.KindGeographicCS, rec.Kind())
	require.IsType(t, &metadata.GeographicCS{}, rec)

	authority, _ := rec.Property(metadata.PropertyAuthority)
	require.Equal(t, "EPSG", authority)
	code, _ := rec.Property(metadata.PropertyAuthorityCode)
	require.Equal(t, "4326", code)

	// The published WKT is carried as the cached description.
	require.Equal(t, `GEOGCS["WGS84", AUTHORITY["EPSG","4326"]]`, rec.WKT())
}

func TestFactory_Create_NonGeographicKind(t *testing.T) {
	t.Parallel()

	factory := NewFactory(newPopulatedStore(t), metadata.NewPool())

	rec, err := factory.Create("EPSG", "8901")
	require.NoError(t, err)
	require.Equal(t, metadata.Kind("PRIMEM"), rec.Kind())
	require.IsType(t, &metadata.Info{}, rec)
}

func TestFactory_Create_UnknownCode(t *testing.T) {
	t.Parallel()

	factory := NewFactory(newPopulatedStore(t), metadata.NewPool())

	_, err := factory.Create("EPSG", "99999")
	require.ErrorIs(t, err, ErrDefinitionNotFound)
}

func TestFactory_Create_Canonicalizes(t *testing.T) {
	t.Parallel()

	factory := NewFactory(newPopulatedStore(t), metadata.NewPool())

	first, err := factory.Create("EPSG", "4326")
	require.NoError(t, err)
	second, err := factory.Create("EPSG", "4326")
	require.NoError(t, err)

	// Repeated lookups of the same code share one live instance.
	require.Same(t, first, second)

	other, err := factory.Create("EPSG", "4269")
	require.NoError(t, err)
	require.NotSame(t, first, other)
}

func TestFactory_NilPoolUsesDefault(t *testing.T) {
	t.Parallel()

	factory := NewFactory(newPopulatedStore(t), nil)

	rec, err := factory.Create("ESRI", "104199")
	require.NoError(t, err)
	require.Equal(t, "GCS_WGS_1984_Major_Auxiliary_Sphere", rec.Name())
}
