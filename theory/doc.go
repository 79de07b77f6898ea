// Package theory holds chord formulas, scale definitions and the rules that
// carry them from 12-TET into any N-EDO system.
//
// 🚀 Two strategies:
//
//	Chords are authored per (type, N). Some qualities change shape in finer
//	temperaments (24-TET has a neutral third between minor and major), so
//	a chord is never derived by scaling 12-TET steps. If a (type, N) pair
//	was not authored, BuildChordPCsFromPc returns an empty set, meaning
//	"no such chord in this temperament".
//
//	Scales are authored once as 12-TET patterns and projected:
//	  p → clamp(Round(p·N/12), 0, N−1), then deduplicate, then sort.
//	The order matters: for N that does not divide evenly, clamping first
//	can create duplicates that must then collapse. Per-N overrides (e.g.
//	quarter-tone maqamat in 24-TET) take precedence over projection.
//
// ✨ Key features:
//   - BuildChordPCsFromPc: chord pitch classes from a root, or empty
//   - ScaleIntervals / ProjectFrom12TET / Chromatic
//   - DegreeForStep: interval names, lossy for N ≠ 12
//   - Scale: a rooted scale with Set, PCs, Contains and DegreeForPc
//
// All rounding follows internal/edomath (half away from zero).
package theory
