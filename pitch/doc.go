// Package pitch maps between frequencies, MIDI numbers, N-EDO steps and
// pitch classes, and names pitch classes for the tuning systems it knows.
//
// 🚀 What is a step?
//
//	In an N-EDO system the octave is split into N equal steps. Step 0 is
//	the system's reference pitch (RefFreq / RefMIDI); step s sounds at
//	RefFreq·2^(s/N). A pitch class is a step folded into [0, N).
//
// ✨ Key features:
//   - FreqToStep / StepToFreq: nearest-step projection and its inverse
//   - MIDIToStep / StepToMIDI: approximate bridge to 12-TET MIDI numbers
//   - StepToPc: always non-negative, also for negative steps
//   - CentsFromNearest: deviation reporting for tuners and overlays
//   - NameForPc: sharp/flat tables for 12 and 24, "[pc]" placeholders otherwise
//
// ⚠️ Approximations (documented contracts, not bugs):
//
//	StepToFreq(FreqToStep(f)) is a projection onto the nearest step, not
//	a lossless round-trip. StepToMIDI(MIDIToStep(m)) == m holds for every
//	N ≥ 12 (the step error is at most half of 12/N semitones) but fails
//	for coarser systems, e.g. N = 5 at MIDI 61.
//
// ⚙️ Usage:
//
//	sys := pitch.MustLookup("24tet")
//	step := pitch.FreqToStep(277.18, sys) // 2 (C#4)
//	name := sys.NameForPc(pitch.StepToPc(step, sys), pitch.Sharp) // "C#"
//
// All functions are pure; the catalog is built once at init and never
// mutated.
package pitch
