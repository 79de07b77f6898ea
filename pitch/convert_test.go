package pitch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edofret/pitch"
)

var testedSystems = []string{"12tet", "19tet", "24tet"}

// TestFreqStepRoundTrip verifies FreqToStep(StepToFreq(s)) == s exactly
// for every catalog system and a wide step range.
func TestFreqStepRoundTrip(t *testing.T) {
	for _, sys := range pitch.Systems() {
		for s := -5 * sys.Divisions; s <= 5*sys.Divisions; s++ {
			f := pitch.StepToFreq(s, sys)
			require.Equal(t, s, pitch.FreqToStep(f, sys), "%s step %d (f=%v)", sys.ID, s, f)
		}
	}
}

// TestFreqToStep_NearestProjection shows StepToFreq∘FreqToStep is a projection.
func TestFreqToStep_NearestProjection(t *testing.T) {
	sys := pitch.MustLookup("12tet")
	assert.Equal(t, 9, pitch.FreqToStep(440, sys))
	assert.Equal(t, 9, pitch.FreqToStep(445, sys), "445 Hz is nearest to A4")
	assert.InDelta(t, 440.0, pitch.StepToFreq(pitch.FreqToStep(445, sys), sys), 1e-9)
	assert.NotEqual(t, 445.0, pitch.StepToFreq(pitch.FreqToStep(445, sys), sys))
}

// TestFreqToStep_InvalidInput verifies degenerate frequencies map to step 0.
func TestFreqToStep_InvalidInput(t *testing.T) {
	sys := pitch.MustLookup("19tet")
	for _, f := range []float64{0, -440, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, 0, pitch.FreqToStep(f, sys), "f=%v", f)
	}
	assert.Equal(t, 0.0, pitch.StepToFreq(3, pitch.TuningSystem{}))
}

// TestMIDIRoundTrip checks StepToMIDI(MIDIToStep(m)) == m on [60,72] for
// the systems under test.
func TestMIDIRoundTrip(t *testing.T) {
	for _, id := range testedSystems {
		sys := pitch.MustLookup(id)
		for m := 60; m <= 72; m++ {
			assert.Equal(t, m, pitch.StepToMIDI(pitch.MIDIToStep(m, sys), sys), "%s midi %d", id, m)
		}
	}
}

// TestMIDIRoundTrip_FineSystems extends the round trip to every N ≥ 12.
func TestMIDIRoundTrip_FineSystems(t *testing.T) {
	for n := 12; n <= 72; n++ {
		sys, err := pitch.ForDivisions(n)
		require.NoError(t, err)
		for m := 0; m <= 127; m++ {
			require.Equal(t, m, pitch.StepToMIDI(pitch.MIDIToStep(m, sys), sys), "N=%d midi %d", n, m)
		}
	}
}

// TestMIDIRoundTrip_CoarseSystemIsLossy documents the failure for N < 12.
func TestMIDIRoundTrip_CoarseSystemIsLossy(t *testing.T) {
	sys, err := pitch.ForDivisions(5)
	require.NoError(t, err)
	// MIDI 61 → round(5/12)=0 → back to 60.
	assert.Equal(t, 0, pitch.MIDIToStep(61, sys))
	assert.Equal(t, 60, pitch.StepToMIDI(pitch.MIDIToStep(61, sys), sys))
}

// TestMIDIToStep_Values pins a few conversions.
func TestMIDIToStep_Values(t *testing.T) {
	assert.Equal(t, 9, pitch.MIDIToStep(69, pitch.MustLookup("12tet")))
	assert.Equal(t, 18, pitch.MIDIToStep(69, pitch.MustLookup("24tet")))
	assert.Equal(t, 14, pitch.MIDIToStep(69, pitch.MustLookup("19tet"))) // 14.25
	assert.Equal(t, -19, pitch.MIDIToStep(48, pitch.MustLookup("19tet")))
}

// TestStepToPc verifies normalisation, including negative steps.
func TestStepToPc(t *testing.T) {
	sys19 := pitch.MustLookup("19tet")
	assert.Equal(t, 18, pitch.StepToPc(-1, sys19))
	assert.Equal(t, 0, pitch.StepToPc(-19, sys19))
	assert.Equal(t, 1, pitch.StepToPc(20, sys19))

	for _, sys := range pitch.Systems() {
		for s := -200; s <= 200; s++ {
			pc := pitch.StepToPc(s, sys)
			require.GreaterOrEqual(t, pc, 0)
			require.Less(t, pc, sys.Divisions)
		}
	}
}

// TestCentsFromNearest verifies nearest step and signed deviation.
func TestCentsFromNearest(t *testing.T) {
	for _, id := range []string{"12tet", "24tet"} {
		sys := pitch.MustLookup(id)
		for _, step := range []int{-7, 0, 9, 13} {
			exact := pitch.StepToFreq(step, sys)

			got, cents := pitch.CentsFromNearest(exact, sys)
			assert.Equal(t, step, got, "%s exact step", id)
			assert.InDelta(t, 0.0, cents, 1e-6, "%s exact cents", id)

			up := exact * math.Exp2(5.0/1200)
			got, cents = pitch.CentsFromNearest(up, sys)
			assert.Equal(t, step, got, "%s +5c step", id)
			assert.InDelta(t, 5.0, cents, 1e-6, "%s +5c", id)

			down := exact * math.Exp2(-5.0/1200)
			got, cents = pitch.CentsFromNearest(down, sys)
			assert.Equal(t, step, got, "%s -5c step", id)
			assert.InDelta(t, -5.0, cents, 1e-6, "%s -5c", id)
		}
	}
}

// TestCentsFromNearest_Invalid verifies degenerate inputs yield zeros.
func TestCentsFromNearest_Invalid(t *testing.T) {
	step, cents := pitch.CentsFromNearest(math.NaN(), pitch.MustLookup("12tet"))
	assert.Equal(t, 0, step)
	assert.Equal(t, 0.0, cents)
}

// TestNewTuningSystem_Errors covers the validation sentinels.
func TestNewTuningSystem_Errors(t *testing.T) {
	_, err := pitch.NewTuningSystem("x", "x", 0, 440, 69)
	assert.ErrorIs(t, err, pitch.ErrBadDivisions)
	_, err = pitch.NewTuningSystem("x", "x", 12, math.Inf(1), 69)
	assert.ErrorIs(t, err, pitch.ErrBadReference)
	_, err = pitch.NewTuningSystem("x", "x", 12, 0, 69)
	assert.ErrorIs(t, err, pitch.ErrBadReference)

	sys, err := pitch.NewTuningSystem("a440", "A440 12", 12, 440, 69)
	require.NoError(t, err)
	assert.Equal(t, 0, pitch.FreqToStep(440, sys))
	assert.Equal(t, -9, pitch.MIDIToStep(60, sys))
}

// TestLookup covers catalog hits and misses.
func TestLookup(t *testing.T) {
	sys, err := pitch.Lookup("31tet")
	require.NoError(t, err)
	assert.Equal(t, 31, sys.Divisions)

	_, err = pitch.Lookup("7tet")
	assert.ErrorIs(t, err, pitch.ErrUnknownSystem)
	assert.Panics(t, func() { pitch.MustLookup("nope") })

	adhoc, err := pitch.ForDivisions(53)
	require.NoError(t, err)
	assert.Equal(t, "53tet", adhoc.ID)
	_, err = pitch.ForDivisions(0)
	assert.ErrorIs(t, err, pitch.ErrBadDivisions)
}

// TestResolve covers catalog ids, ad-hoc "<n>tet" ids and garbage.
func TestResolve(t *testing.T) {
	sys, err := pitch.Resolve("19tet")
	require.NoError(t, err)
	assert.Equal(t, "19-TET", sys.Name)

	adhoc, err := pitch.Resolve("53EDO")
	require.NoError(t, err)
	assert.Equal(t, 53, adhoc.Divisions)
	assert.Equal(t, "53tet", adhoc.ID)

	_, err = pitch.Resolve("0tet")
	assert.ErrorIs(t, err, pitch.ErrBadDivisions)
	_, err = pitch.Resolve("just")
	assert.ErrorIs(t, err, pitch.ErrUnknownSystem)
}

// TestSystems_ReturnsCopy verifies the catalog cannot be mutated through Systems.
func TestSystems_ReturnsCopy(t *testing.T) {
	s := pitch.Systems()
	s[0].Divisions = 99
	assert.Equal(t, 12, pitch.Systems()[0].Divisions)
	assert.Equal(t, 12, pitch.MustLookup("12tet").Divisions)
}
