package edomath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/edofret/internal/edomath"
)

// TestRound_HalfAwayFromZero pins the rounding contract at exact .5 ties.
func TestRound_HalfAwayFromZero(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0.5, 1}, {1.5, 2}, {2.5, 3}, {-0.5, -1}, {-2.5, -3},
		{0.49999, 0}, {-0.49999, 0}, {5.684, 6}, {0, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, edomath.Round(tc.in), "Round(%v)", tc.in)
	}
	assert.Equal(t, 0, edomath.Round(math.NaN()))
	assert.Equal(t, 0, edomath.Round(math.Inf(1)))
	assert.Equal(t, 0, edomath.Round(math.Inf(-1)))
}

// TestMod verifies normalisation of negative values and degenerate moduli.
func TestMod(t *testing.T) {
	assert.Equal(t, 18, edomath.Mod(-1, 19))
	assert.Equal(t, 0, edomath.Mod(-24, 24))
	assert.Equal(t, 5, edomath.Mod(29, 24))
	assert.Equal(t, 0, edomath.Mod(7, 0))
	assert.Equal(t, 0, edomath.Mod(7, -3))
	assert.Equal(t, 0, edomath.Mod(123, 1))
}

// TestGCD covers signs and zeros.
func TestGCD(t *testing.T) {
	assert.Equal(t, 6, edomath.GCD(12, 18))
	assert.Equal(t, 6, edomath.GCD(-12, 18))
	assert.Equal(t, 5, edomath.GCD(0, 5))
	assert.Equal(t, 0, edomath.GCD(0, 0))
	assert.Equal(t, 1, edomath.GCD(12, 19))
}

// TestSemitoneStep checks both conversion directions, including ties.
func TestSemitoneStep(t *testing.T) {
	assert.Equal(t, 6, edomath.SemitoneToStep(3, 24))
	assert.Equal(t, 5, edomath.SemitoneToStep(3, 19)) // 4.75
	assert.Equal(t, 8, edomath.SemitoneToStep(5, 19)) // 7.916…
	assert.Equal(t, 3, edomath.SemitoneToStep(3, 12))
	assert.Equal(t, 3, edomath.SemitoneToStep(6, 5)) // 2.5 ties upward
	assert.Equal(t, 6, edomath.StepToSemitone(9, 19))
	assert.Equal(t, 1, edomath.StepToSemitone(1, 24)) // 0.5 ties upward
	assert.Equal(t, -1, edomath.StepToSemitone(-1, 24))
	assert.Equal(t, 0, edomath.StepToSemitone(5, 0))
}

// TestClamp covers both bounds.
func TestClamp(t *testing.T) {
	assert.Equal(t, 0, edomath.Clamp(-3, 0, 10))
	assert.Equal(t, 10, edomath.Clamp(13, 0, 10))
	assert.Equal(t, 4, edomath.Clamp(4, 0, 10))
}
