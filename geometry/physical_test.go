package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edofret/geometry"
)

// TestFretDistance_Classic checks the 12-TET rule on a 648 mm scale.
func TestFretDistance_Classic(t *testing.T) {
	const L = 648.0
	assert.Equal(t, 0.0, geometry.FretDistance(0, 12, L))
	assert.InDelta(t, L/2, geometry.FretDistance(12, 12, L), 1e-9)
	assert.InDelta(t, 3*L/4, geometry.FretDistance(24, 12, L), 1e-9)
	assert.InDelta(t, 36.37, geometry.FretDistance(1, 12, L), 0.01)
}

// TestFretDistance_NEDO verifies octaves halve the string in any N and that
// a 24-TET fret 2k equals 12-TET fret k.
func TestFretDistance_NEDO(t *testing.T) {
	const L = 640.0
	for _, n := range []int{5, 19, 24, 31} {
		assert.InDelta(t, L/2, geometry.FretDistance(n, n, L), 1e-9, "n=%d", n)
	}
	for k := 0; k <= 24; k++ {
		assert.InDelta(t, geometry.FretDistance(k, 12, L), geometry.FretDistance(2*k, 24, L), 1e-9)
	}
}

// TestFretDistances_Monotonic verifies spacing shrinks toward the body,
// unlike the constant-width layout.
func TestFretDistances_Monotonic(t *testing.T) {
	d := geometry.FretDistances(38, 19, 650)
	require.Len(t, d, 39)
	for k := 2; k < len(d); k++ {
		require.Greater(t, d[k], d[k-1])
		require.Less(t, d[k]-d[k-1], d[k-1]-d[k-2])
	}
	assert.Nil(t, geometry.FretDistances(-1, 12, 650))
}

// TestFretDistance_Invalid verifies degenerate inputs yield 0.
func TestFretDistance_Invalid(t *testing.T) {
	assert.Equal(t, 0.0, geometry.FretDistance(-1, 12, 650))
	assert.Equal(t, 0.0, geometry.FretDistance(3, 0, 650))
	assert.Equal(t, 0.0, geometry.FretDistance(3, 12, 0))
	assert.Equal(t, 0.0, geometry.FretDistance(3, 12, math.NaN()))
	assert.Equal(t, 0.0, geometry.FretDistance(3, 12, math.Inf(1)))
}
