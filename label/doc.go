// Package label renders a fret index as text in an N-EDO system.
//
// In 12-TET a fret label is just the fret number. In finer systems most
// frets fall between 12-TET semitones, and the label says where:
//
//	Fractions   — semitone plus the reduced fraction past it:
//	              24-TET fret 3 → "1½", 19-TET fret 1 → "0+12⁄19"
//	Letters     — semitone plus "a" marks per micro-step:
//	              24-TET fret 3 → "1a", 36-TET fret 2 → "0aa"
//	Accidentals — counts "s" up from the lower semitone or "b" down from
//	              the upper one: 36-TET fret 1 → "0s" / "1bb"
//
// Systems whose N is not a multiple of 12 have no regular micro-step, so
// Letters uses rounded semitone boundaries with a single mark and
// Accidentals falls back to Fractions.
//
// Fraction labels use U+2044 FRACTION SLASH ("⁄"), never "/". Invalid
// input (negative fret, N < 1, non-finite float) yields "".
package label
