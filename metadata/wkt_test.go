package metadata

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spatialkit/referencing-framework/units"
)

func TestInfo_WKT(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
		kind Kind
		rec  string
		want string
	}{
		{
			name: "authority and code",
			kind: KindGeographicCS,
			rec:  "WGS84",
			opts: []Option{WithAuthority("EPSG", "4326")},
			want: `GEOGCS["WGS84", AUTHORITY["EPSG","4326"]]`,
		},
		{
			name: "authority without code",
			kind: KindGeographicCS,
			rec:  "WGS84",
			opts: []Option{WithAuthority("EPSG", "")},
			want: `GEOGCS["WGS84", AUTHORITY["EPSG"]]`,
		},
		{
			name: "no authority",
			kind: KindInfo,
			rec:  "bare",
			want: `INFO["bare"]`,
		},
		{
			name: "cached description wins",
			kind: KindGeographicCS,
			rec:  "WGS84",
			opts: []Option{
				WithAuthority("EPSG", "4326"),
				WithWKT(`GEOGCS["precomputed"]`),
			},
			want: `GEOGCS["precomputed"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info, err := NewInfo(tt.kind, tt.rec, tt.opts...)
			require.NoError(t, err)
			require.Equal(t, tt.want, info.WKT())
			require.Equal(t, tt.want, info.String())
		})
	}
}

func TestGeographicCS_WKT(t *testing.T) {
	t.Parallel()

	cs, err := NewGeographicCS("WGS84", WithAuthority("EPSG", "4326"))
	require.NoError(t, err)
	require.Equal(t, `GEOGCS["WGS84", AUTHORITY["EPSG","4326"]]`, cs.WKT())
}

func TestProjectedCS_WKT(t *testing.T) {
	t.Parallel()

	cs, err := NewProjectedCS("UTM Zone 33N", units.Metre, WithAuthority("EPSG", "32633"))
	require.NoError(t, err)
	require.Equal(t, `PROJCS["UTM Zone 33N", UNIT["metre",1], AUTHORITY["EPSG","32633"]]`, cs.WKT())
}

func TestPrimeMeridian_WKT(t *testing.T) {
	t.Parallel()

	pm, err := NewPrimeMeridian("Greenwich", 0, units.Degree)
	require.NoError(t, err)
	require.Equal(t, `PRIMEM["Greenwich",0, UNIT["degree",0.017453292519943295]]`, pm.WKT())

	paris, err := NewPrimeMeridian("Paris", 2.5969213, units.Degree)
	require.NoError(t, err)
	require.Equal(t, `PRIMEM["Paris",2.5969213, UNIT["degree",0.017453292519943295]]`, paris.WKT())
}

func TestRender_IgnoresCachedDescription(t *testing.T) {
	t.Parallel()

	info, err := NewInfo(KindGeographicCS, "WGS84",
		WithAuthority("EPSG", "4326"),
		WithWKT(`GEOGCS["precomputed"]`),
	)
	require.NoError(t, err)

	require.Equal(t, `GEOGCS["precomputed"]`, info.WKT())
	require.Equal(t, `GEOGCS["WGS84", AUTHORITY["EPSG","4326"]]`, Render(info))
}
