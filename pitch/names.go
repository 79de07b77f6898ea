package pitch

import (
	"strconv"

	"github.com/katalvlaran/edofret/internal/edomath"
)

// Spelling tables. Only N = 12 and N = 24 are authored; there is no
// general spelling algorithm, every other N falls back to "[pc]".
// In 24-TET "+" raises and "-" lowers by a quarter tone.
var (
	names12Sharp = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	names12Flat  = []string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

	names24Sharp = []string{
		"C", "C+", "C#", "C#+", "D", "D+", "D#", "D#+", "E", "E+", "F", "F+",
		"F#", "F#+", "G", "G+", "G#", "G#+", "A", "A+", "A#", "A#+", "B", "B+",
	}
	names24Flat = []string{
		"C", "Db-", "Db", "D-", "D", "Eb-", "Eb", "E-", "E", "F-", "F", "Gb-",
		"Gb", "G-", "G", "Ab-", "Ab", "A-", "A", "Bb-", "Bb", "B-", "B", "C-",
	}
)

// HasSpelling reports whether n has an authored note-name table.
func HasSpelling(n int) bool { return n == 12 || n == 24 }

// NameForPc names pitch class pc (folded into [0, N) first) under the
// given accidental preference. Pitch class 0 is the system's reference
// note, so the tables are indexed from the reference's 12-TET pitch class:
// an A440 system names pc 0 "A". It never returns "" for a system with
// N ≥ 1; systems without a table get the placeholder "[pc]".
func (s TuningSystem) NameForPc(pc int, pref Accidental) string {
	if s.Divisions < 1 {
		return "[?]"
	}
	pc = edomath.Mod(pc, s.Divisions)
	var table []string
	switch s.Divisions {
	case 12:
		table = names12Sharp
		if pref == Flat {
			table = names12Flat
		}
	case 24:
		table = names24Sharp
		if pref == Flat {
			table = names24Flat
		}
	default:
		return "[" + strconv.Itoa(pc) + "]"
	}
	return table[edomath.Mod(pc+s.refOffset(), s.Divisions)]
}

// StepName names an absolute step with a scientific octave number
// (MIDI 60 = C4): step 0 of a system referenced to middle C is "C4",
// step 0 of an A440 system is "A4". The octave is taken from the step,
// not the spelling, so "C-" one quarter below C5 reads "C-4".
func (s TuningSystem) StepName(step int, pref Accidental) string {
	if s.Divisions < 1 {
		return "[?]"
	}
	abs := step + s.refOffset()
	octave := floorDiv(s.RefMIDI, 12) - 1 + floorDiv(abs, s.Divisions)
	return s.NameForPc(step, pref) + strconv.Itoa(octave)
}

// refOffset is the step distance from C up to the reference note within
// its octave: Round(Mod(RefMIDI, 12)·N/12).
func (s TuningSystem) refOffset() int {
	return edomath.SemitoneToStep(edomath.Mod(s.RefMIDI, 12), s.Divisions)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
