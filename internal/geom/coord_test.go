package geom

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinateSexagesimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"242621.02N", 24 + 26.0/60 + 21.02/3600},
		{"1231508.36E", 123 + 15.0/60 + 8.36/3600},
		{"242621.02S", -(24 + 26.0/60 + 21.02/3600)},
		{"1231508.36W", -(123 + 15.0/60 + 8.36/3600)},
		{"350000n", 35},
		{" 1390000e ", 139},
		{"0000000W", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCoordinate(tt.in)
			require.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseCoordinateKnownValues(t *testing.T) {
	got, ok := ParseCoordinate("242621.02N")
	require.True(t, ok)
	assert.InDelta(t, 24.4391722, got, 1e-6)

	got, ok = ParseCoordinate("1231508.36E")
	require.True(t, ok)
	assert.InDelta(t, 123.2523222, got, 1e-6)
}

func TestParseCoordinateDecimalMatchesParseFloat(t *testing.T) {
	for _, s := range []string{"0", "35.0", "-90", "139.7671", "+12.5", "1e2", "-0.000001", "180"} {
		want, err := strconv.ParseFloat(s, 64)
		require.NoError(t, err)
		got, ok := ParseCoordinate(s)
		require.True(t, ok, s)
		assert.Equal(t, want, got, s)
	}
}

func TestParseCoordinateInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"   ",
		"undefined",
		"abc",
		"242621.02",   // no hemisphere
		"2426N",       // too few digits
		"24262102N",   // too many digits before the fraction
		"242621.02X",  // bad hemisphere
		"N242621",     // hemisphere first
		"35.0.1",
		"12,5",
		"0x1p5",
		"1_0",
		"Inf",
		"NaN",
		"1e",
		".",
	} {
		t.Run(s, func(t *testing.T) {
			_, ok := ParseCoordinate(s)
			assert.False(t, ok)
		})
	}
}
