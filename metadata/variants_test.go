package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spatialkit/referencing-framework/units"
)

func TestNewProjectedCS_UnitCheck(t *testing.T) {
	t.Parallel()

	_, err := NewProjectedCS("UTM Zone 33N", units.Degree)
	require.ErrorIs(t, err, units.ErrNotLinear)

	_, err = NewProjectedCS("", units.Metre)
	require.ErrorIs(t, err, ErrEmptyName)

	cs, err := NewProjectedCS("UTM Zone 33N", units.Metre)
	require.NoError(t, err)
	require.Equal(t, units.Metre, cs.Unit())
	require.Equal(t, KindProjectedCS, cs.Kind())
}

func TestNewPrimeMeridian_UnitCheck(t *testing.T) {
	t.Parallel()

	_, err := NewPrimeMeridian("Greenwich", 0, units.Metre)
	require.ErrorIs(t, err, units.ErrNotAngular)

	pm, err := NewPrimeMeridian("Greenwich", 0, units.Degree)
	require.NoError(t, err)
	require.Equal(t, 0.0, pm.Longitude())
	require.Equal(t, units.Degree, pm.Unit())
}

// Stateful variants override the coarse base comparison: two meridians of
// the same variant are only equal when their positional state matches.
func TestPrimeMeridian_StructuralEquals(t *testing.T) {
	t.Parallel()

	greenwich, err := NewPrimeMeridian("Greenwich", 0, units.Degree)
	require.NoError(t, err)
	paris, err := NewPrimeMeridian("Paris", 2.5969213, units.Degree)
	require.NoError(t, err)
	greenwich2, err := NewPrimeMeridian("Greenwich", 0, units.Degree)
	require.NoError(t, err)

	require.False(t, greenwich.StructuralEquals(paris, false))
	require.True(t, greenwich.StructuralEquals(greenwich2, true))
	require.True(t, greenwich.StructuralEquals(paris, false) == paris.StructuralEquals(greenwich, false))

	require.NotEqual(t, greenwich.StructuralHash(), paris.StructuralHash())
	require.Equal(t, greenwich.StructuralHash(), greenwich2.StructuralHash())
}

func TestProjectedCS_StructuralEquals(t *testing.T) {
	t.Parallel()

	metres, err := NewProjectedCS("zone", units.Metre)
	require.NoError(t, err)
	feet, err := NewProjectedCS("zone", units.Foot)
	require.NoError(t, err)
	metres2, err := NewProjectedCS("zone", units.Metre)
	require.NoError(t, err)

	require.False(t, metres.StructuralEquals(feet, false))
	require.True(t, metres.StructuralEquals(metres2, false))
	require.True(t, metres.StructuralEquals(metres2, true))
	require.NotEqual(t, metres.StructuralHash(), feet.StructuralHash())
}

// A variant never equals a plain base record, even one sharing its kind:
// the variant side requires its own concrete type.
func TestVariant_NotEqualToBaseRecord(t *testing.T) {
	t.Parallel()

	pm, err := NewPrimeMeridian("Greenwich", 0, units.Degree)
	require.NoError(t, err)
	base, err := NewInfo(KindPrimeMeridian, "Greenwich")
	require.NoError(t, err)

	require.False(t, pm.StructuralEquals(base, false))
}
