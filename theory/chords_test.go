package theory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edofret/theory"
)

// TestBuildChordPCsFromPc_Known pins the reference chords.
func TestBuildChordPCsFromPc_Known(t *testing.T) {
	assert.Equal(t, []int{1, 5, 10}, theory.BuildChordPCsFromPc(10, "min", 12))
	assert.Equal(t, []int{7, 13, 23}, theory.BuildChordPCsFromPc(23, "maj", 24))
	assert.Equal(t, []int{0, 7, 14}, theory.BuildChordPCsFromPc(0, "neutral", 24))
	assert.Equal(t, []int{0, 6, 11}, theory.BuildChordPCsFromPc(0, "maj", 19))
}

// TestBuildChordPCsFromPc_RootNormalised verifies roots outside [0,N) fold first.
func TestBuildChordPCsFromPc_RootNormalised(t *testing.T) {
	assert.Equal(t,
		theory.BuildChordPCsFromPc(10, "min", 12),
		theory.BuildChordPCsFromPc(-2, "min", 12))
	assert.Equal(t,
		theory.BuildChordPCsFromPc(3, "7", 24),
		theory.BuildChordPCsFromPc(27, "7", 24))
}

// TestBuildChordPCsFromPc_Unauthored verifies the empty-set contract.
func TestBuildChordPCsFromPc_Unauthored(t *testing.T) {
	for _, tc := range []struct {
		typ string
		n   int
	}{
		{"maj", 31}, {"maj", 36}, {"neutral", 12}, {"neutral", 19}, {"nope", 12}, {"maj", 0},
	} {
		got := theory.BuildChordPCsFromPc(0, tc.typ, tc.n)
		require.NotNil(t, got, "%s/%d", tc.typ, tc.n)
		assert.Empty(t, got, "%s/%d", tc.typ, tc.n)
	}
}

// TestChordFormulas_WellFormed verifies every authored chord starts at 0,
// ascends strictly and stays inside the octave.
func TestChordFormulas_WellFormed(t *testing.T) {
	for _, n := range []int{12, 19, 24} {
		types := theory.ChordTypes(n)
		require.NotEmpty(t, types)
		for _, typ := range types {
			f, ok := theory.ChordFormulaFor(typ, n)
			require.True(t, ok)
			assert.Equal(t, n, f.Divisions)
			require.NotEmpty(t, f.Steps)
			assert.Equal(t, 0, f.Steps[0], "%s/%d root", typ, n)
			for i := 1; i < len(f.Steps); i++ {
				assert.Less(t, f.Steps[i-1], f.Steps[i], "%s/%d ascending", typ, n)
			}
			assert.Less(t, f.Steps[len(f.Steps)-1], n, "%s/%d within octave", typ, n)
		}
	}
}

// TestChordFormulas_24IsNotScaled12 verifies the neutral chord exists only in 24.
func TestChordFormulas_24IsNotScaled12(t *testing.T) {
	assert.Contains(t, theory.ChordTypes(24), "neutral")
	assert.NotContains(t, theory.ChordTypes(12), "neutral")
	assert.Empty(t, theory.ChordTypes(31))

	_, ok := theory.ChordFormulaFor("neutral", 12)
	assert.False(t, ok)
}

// TestChordFormulaFor_ReturnsCopy verifies the catalog is not mutable through results.
func TestChordFormulaFor_ReturnsCopy(t *testing.T) {
	f, ok := theory.ChordFormulaFor("maj", 12)
	require.True(t, ok)
	f.Steps[1] = 99
	assert.Equal(t, []int{0, 4, 7}, theory.BuildChordPCsFromPc(0, "maj", 12))
	assert.Equal(t, "Major", f.Label)
	assert.Equal(t, "Minor 7th", theory.ChordLabel("min7"))
	assert.Equal(t, "x", theory.ChordLabel("x"))
}

// TestIsChordType verifies catalog membership is independent of divisions.
func TestIsChordType(t *testing.T) {
	assert.True(t, theory.IsChordType("neutral"))
	assert.True(t, theory.IsChordType("maj"))
	assert.False(t, theory.IsChordType("power"))
	assert.False(t, theory.IsChordType(""))
}
