package theory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edofret/theory"
)

// TestProjectFrom12TET_Major24 verifies projection equals the authored 24-TET major.
func TestProjectFrom12TET_Major24(t *testing.T) {
	def, err := theory.LookupScale("major")
	require.NoError(t, err)

	projected := theory.ProjectFrom12TET(def.Steps12, 24)
	assert.Equal(t, def.Authored[24], projected)
	assert.Equal(t, []int{0, 4, 8, 10, 14, 18, 22}, projected)

	got, err := theory.ScaleIntervals("major", 24)
	require.NoError(t, err)
	assert.Equal(t, projected, got)
}

// TestProjectFrom12TET_StrictlyAscending checks every 7-note baseline in 24
// and other N yields strictly ascending, in-range, duplicate-free sets.
func TestProjectFrom12TET_StrictlyAscending(t *testing.T) {
	for _, typ := range theory.ScaleTypes() {
		def, err := theory.LookupScale(typ)
		require.NoError(t, err)
		if def.Steps12 == nil {
			continue
		}
		for _, n := range []int{5, 7, 12, 17, 19, 22, 24, 31, 53} {
			got := theory.ProjectFrom12TET(def.Steps12, n)
			require.NotEmpty(t, got)
			assert.Equal(t, 0, got[0], "%s/%d", typ, n)
			for i := 1; i < len(got); i++ {
				require.Less(t, got[i-1], got[i], "%s/%d strictly ascending", typ, n)
			}
			assert.Less(t, got[len(got)-1], n, "%s/%d in range", typ, n)
			if n >= 12 {
				assert.Len(t, got, len(def.Steps12), "%s/%d no collisions for N ≥ 12", typ, n)
			}
		}
	}
}

// TestProjectFrom12TET_ClampThenDedupe pins the round → clamp → dedupe → sort order.
func TestProjectFrom12TET_ClampThenDedupe(t *testing.T) {
	// major into 5: 0,0.83,1.67,2.08,2.92,3.75,4.58 → 0,1,2,2,3,4,5 → clamp 5→4.
	assert.Equal(t, []int{0, 1, 2, 3, 4}, theory.ProjectFrom12TET([]int{0, 2, 4, 5, 7, 9, 11}, 5))
	// unsorted and out-of-range input.
	assert.Equal(t, []int{0, 4, 23}, theory.ProjectFrom12TET([]int{2, 0, 14, -3}, 24))
	assert.Equal(t, []int{0}, theory.ProjectFrom12TET([]int{0, 3, 11}, 1))
	assert.Empty(t, theory.ProjectFrom12TET([]int{0, 4}, 0))
}

// TestScaleIntervals_Chromatic verifies the full residue set for any N.
func TestScaleIntervals_Chromatic(t *testing.T) {
	for _, n := range []int{1, 12, 19, 31} {
		got, err := theory.ScaleIntervals(theory.Chromatic, n)
		require.NoError(t, err)
		require.Len(t, got, n)
		for i, v := range got {
			assert.Equal(t, i, v)
		}
	}
	assert.Empty(t, theory.ChromaticSteps(0))
}

// TestScaleIntervals_Errors covers the sentinels.
func TestScaleIntervals_Errors(t *testing.T) {
	_, err := theory.ScaleIntervals("major", 0)
	assert.ErrorIs(t, err, theory.ErrBadDivisions)
	_, err = theory.ScaleIntervals("klingon", 12)
	assert.ErrorIs(t, err, theory.ErrUnknownScale)
	_, err = theory.ScaleIntervals("rast", 12)
	assert.ErrorIs(t, err, theory.ErrScaleUnavailable)

	rast, err := theory.ScaleIntervals("rast", 24)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 7, 10, 14, 18, 21}, rast)
}

// TestLookupScale_ReturnsCopy verifies catalog immutability.
func TestLookupScale_ReturnsCopy(t *testing.T) {
	def, err := theory.LookupScale("major")
	require.NoError(t, err)
	def.Steps12[1] = 1
	def.Authored[24][1] = 1

	again, err := theory.ScaleIntervals("major", 24)
	require.NoError(t, err)
	assert.Equal(t, 4, again[1])
	twelve, err := theory.ScaleIntervals("major", 12)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11}, twelve)

	_, err = theory.LookupScale("nope")
	assert.ErrorIs(t, err, theory.ErrUnknownScale)
}
