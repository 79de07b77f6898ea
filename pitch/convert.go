package pitch

import (
	"math"

	"github.com/katalvlaran/edofret/internal/edomath"
)

// FreqToStep returns the step nearest to f: Round(N·log2(f/RefFreq)).
// Non-finite or non-positive f (or a degenerate system) yields 0.
func FreqToStep(f float64, sys TuningSystem) int {
	raw, ok := rawSteps(f, sys)
	if !ok {
		return 0
	}
	return edomath.Round(raw)
}

// StepToFreq returns RefFreq·2^(step/N). It inverts FreqToStep exactly
// only at frequencies that are themselves steps; for any other f,
// StepToFreq(FreqToStep(f)) is the nearest step's frequency.
// A degenerate system yields 0.
func StepToFreq(step int, sys TuningSystem) float64 {
	if sys.Divisions < 1 {
		return 0
	}
	return sys.RefFreq * math.Exp2(float64(step)/float64(sys.Divisions))
}

// MIDIToStep maps a MIDI number onto the nearest step:
// Round((midi − RefMIDI)·N/12).
func MIDIToStep(midi int, sys TuningSystem) int {
	return edomath.SemitoneToStep(midi-sys.RefMIDI, sys.Divisions)
}

// StepToMIDI is the approximate inverse of MIDIToStep:
// RefMIDI + Round(step·12/N).
//
// StepToMIDI(MIDIToStep(m)) == m holds for every N ≥ 12. For N < 12 a step
// is wider than a semitone and some MIDI numbers collapse onto the same
// step; callers must not assume exactness there.
func StepToMIDI(step int, sys TuningSystem) int {
	return sys.RefMIDI + edomath.StepToSemitone(step, sys.Divisions)
}

// StepToPc folds a step into [0, N).
func StepToPc(step int, sys TuningSystem) int {
	return PitchClass(step, sys.Divisions)
}

// PitchClass folds a step into [0, n); n < 1 yields 0.
func PitchClass(step, n int) int {
	return edomath.Mod(step, n)
}

// CentsFromNearest reports the nearest step to f and how far f lies from
// it in cents. One step is 1200/N cents, so the result is within ±600/N.
// The step fraction is scaled by 1200/N rather than a bare ·1200, which
// would report fractions of a step instead of cents for every N ≠ 1.
// Used for deviation display, never for note identity.
// Invalid input yields (0, 0).
func CentsFromNearest(f float64, sys TuningSystem) (nearest int, cents float64) {
	raw, ok := rawSteps(f, sys)
	if !ok {
		return 0, 0
	}
	nearest = edomath.Round(raw)
	cents = (raw - float64(nearest)) * 1200 / float64(sys.Divisions)
	return nearest, cents
}

// rawSteps is N·log2(f/RefFreq), reporting false for unusable input.
func rawSteps(f float64, sys TuningSystem) (float64, bool) {
	if sys.Divisions < 1 || !(sys.RefFreq > 0) || math.IsInf(sys.RefFreq, 0) {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return float64(sys.Divisions) * math.Log2(f/sys.RefFreq), true
}
