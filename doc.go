// Package edofret is a stateless engine for fretboard music theory in any
// equal division of the octave (N-EDO) — from plain 12-TET guitar charts to
// 19, 24 or 31 steps per octave.
//
// 🚀 What is edofret?
//
//	A pure-Go, allocation-light library that turns hand-memorised 12-tone
//	theory into parametric formulas with explicit rounding rules:
//		• Pitch space: frequency ⇄ MIDI ⇄ step ⇄ pitch class, note names
//		• Theory: chord tables per temperament, scale projection, degrees
//		• Labels: fret text in fraction, letter and accidental notations
//		• Geometry: fret/string pixel coordinates, inlays, start frets
//		• Semantics: note / degree / interval / step / fret display modes
//
// ✨ Why choose edofret?
//
//   - One rounding rule (half away from zero) shared by every package,
//     so a fret index always maps to the same pitch class, label and x.
//   - Lossy approximations are named contracts, not surprises.
//   - Never panics on odd input: bad numbers degrade to "" or defaults.
//
// Under the hood, everything is organized under these subpackages:
//
//	pitch/     — tuning systems, conversions, note names
//	theory/    — chord formulas, scale catalog, projection, degrees
//	label/     — fret-index text (Fractions, Letters, Accidentals)
//	geometry/  — logarithmic fret distance and the constant-width layout
//	semantics/ — per-cell label selection by display mode
//	board/     — composes everything into a renderable fretboard model
//	config/    — YAML settings for the fretboard command
//
// The fretboard command (cmd/fretboard) prints a board to the terminal.
//
// Quick ASCII example (24-TET, Letters style, first frets):
//
//	 0   0a   1   1a   2
//	‖───┼───┼───┼───┼───
//
// Logging is silent by default; see SetLogger.
//
//	go get github.com/katalvlaran/edofret
package edofret
