// Package geometry maps fret and string indices to pixel coordinates.
//
// 🚀 Two position models:
//
//	FretDistance is the physical rule generalised to N-EDO:
//	    distance(k) = L − L / 2^(k/N)
//	where L is the scale length. It is exact and exposed as a standalone
//	utility (for builders, or for a "realistic" view).
//
//	NewLayout is the production layout. Every fret cell has the same width,
//	chosen from the fret count, so dense necks stay legible near the body.
//	The layout never calls FretDistance.
//
// ✨ Key features:
//   - per-string start frets (banjo drone string, partial capo): frets
//     below the start are hidden, the open marker moves to the start fret,
//     and an optional ghost segment joins the nut to the start
//   - inlay markers at semitones 3 5 7 9 (single) and 12 (double), every
//     octave, converted with the same rounding as the fret labels
//   - left-handed mirroring: x → Width − x
//
// String 0 is drawn at the bottom; on most instruments it is the lowest-pitched.
// Invalid counts, sizes or metadata degrade to defaults; nothing panics.
package geometry
