package theory

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/edofret/internal/edomath"
)

// ScaleDefinition is a catalog entry: a 12-TET baseline pattern plus any
// per-N authored overrides.
type ScaleDefinition struct {
	// Type is the catalog key, e.g. "harmonic-minor".
	Type string
	// Label is the display title.
	Label string
	// Steps12 is the 12-TET pattern (ascending, starting with 0). Nil for
	// scales that exist only in specific temperaments.
	Steps12 []int
	// Authored holds hand-written step lists keyed by N.
	Authored map[int][]int
}

// Chromatic is the catalog key of the all-steps scale.
const Chromatic = "chromatic"

var scaleCatalog = []ScaleDefinition{
	{Type: Chromatic, Label: "Chromatic"},
	{Type: "major", Label: "Major", Steps12: []int{0, 2, 4, 5, 7, 9, 11},
		Authored: map[int][]int{24: {0, 4, 8, 10, 14, 18, 22}}},
	{Type: "minor", Label: "Natural Minor", Steps12: []int{0, 2, 3, 5, 7, 8, 10}},
	{Type: "harmonic-minor", Label: "Harmonic Minor", Steps12: []int{0, 2, 3, 5, 7, 8, 11}},
	{Type: "melodic-minor", Label: "Melodic Minor", Steps12: []int{0, 2, 3, 5, 7, 9, 11}},
	{Type: "dorian", Label: "Dorian", Steps12: []int{0, 2, 3, 5, 7, 9, 10}},
	{Type: "phrygian", Label: "Phrygian", Steps12: []int{0, 1, 3, 5, 7, 8, 10}},
	{Type: "lydian", Label: "Lydian", Steps12: []int{0, 2, 4, 6, 7, 9, 11}},
	{Type: "mixolydian", Label: "Mixolydian", Steps12: []int{0, 2, 4, 5, 7, 9, 10}},
	{Type: "locrian", Label: "Locrian", Steps12: []int{0, 1, 3, 5, 6, 8, 10}},
	{Type: "pentatonic-major", Label: "Major Pentatonic", Steps12: []int{0, 2, 4, 7, 9}},
	{Type: "pentatonic-minor", Label: "Minor Pentatonic", Steps12: []int{0, 3, 5, 7, 10}},
	{Type: "blues", Label: "Blues", Steps12: []int{0, 3, 5, 6, 7, 10}},
	{Type: "whole-tone", Label: "Whole Tone", Steps12: []int{0, 2, 4, 6, 8, 10}},
	{Type: "dim-half-whole", Label: "Diminished H-W", Steps12: []int{0, 1, 3, 4, 6, 7, 9, 10}},
	{Type: "dim-whole-half", Label: "Diminished W-H", Steps12: []int{0, 2, 3, 5, 6, 8, 9, 11}},
	{Type: "hungarian-minor", Label: "Hungarian Minor", Steps12: []int{0, 2, 3, 6, 7, 8, 11}},
	{Type: "double-harmonic", Label: "Double Harmonic", Steps12: []int{0, 1, 4, 5, 7, 8, 11}},
	{Type: "phrygian-dominant", Label: "Phrygian Dominant", Steps12: []int{0, 1, 4, 5, 7, 8, 10}},
	{Type: "rast", Label: "Maqam Rast",
		Authored: map[int][]int{24: {0, 4, 7, 10, 14, 18, 21}}},
	{Type: "bayati", Label: "Maqam Bayati",
		Authored: map[int][]int{24: {0, 3, 6, 10, 14, 16, 20}}},
}

var scaleByType = func() map[string]int {
	m := make(map[string]int, len(scaleCatalog))
	for i, d := range scaleCatalog {
		m[d.Type] = i
	}
	return m
}()

// ScaleTypes lists the catalog keys in display order.
func ScaleTypes() []string {
	out := make([]string, len(scaleCatalog))
	for i, d := range scaleCatalog {
		out[i] = d.Type
	}
	return out
}

// LookupScale returns a copy of the catalog entry for typ.
func LookupScale(typ string) (ScaleDefinition, error) {
	i, ok := scaleByType[typ]
	if !ok {
		return ScaleDefinition{}, fmt.Errorf("%w: %q", ErrUnknownScale, typ)
	}
	d := scaleCatalog[i]
	cp := ScaleDefinition{Type: d.Type, Label: d.Label, Steps12: append([]int(nil), d.Steps12...)}
	if d.Authored != nil {
		cp.Authored = make(map[int][]int, len(d.Authored))
		for n, steps := range d.Authored {
			cp.Authored[n] = append([]int(nil), steps...)
		}
	}
	return cp, nil
}

// ChromaticSteps returns [0 .. n−1]; n < 1 yields an empty slice.
func ChromaticSteps(n int) []int {
	if n < 1 {
		return []int{}
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// ProjectFrom12TET carries a 12-TET pattern into an n-step system:
//
//  1. p → Round(p·n/12)   (half away from zero)
//  2. clamp to [0, n−1]
//  3. deduplicate
//  4. sort ascending
//
// n < 1 yields an empty slice.
func ProjectFrom12TET(pattern []int, n int) []int {
	if n < 1 {
		return []int{}
	}
	seen := make(map[int]bool, len(pattern))
	out := make([]int, 0, len(pattern))
	for _, p := range pattern {
		v := edomath.Clamp(edomath.SemitoneToStep(p, n), 0, n-1)
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// ScaleIntervals returns the step offsets of typ in an n-step system.
// Resolution order: chromatic → authored entry for n → projection of the
// 12-TET baseline.
//
// Errors:
//   - ErrBadDivisions      — n < 1.
//   - ErrUnknownScale      — typ is not catalogued.
//   - ErrScaleUnavailable  — typ has no baseline and nothing authored for n.
func ScaleIntervals(typ string, n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDivisions, n)
	}
	i, ok := scaleByType[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScale, typ)
	}
	if typ == Chromatic {
		return ChromaticSteps(n), nil
	}
	d := scaleCatalog[i]
	if steps, ok := d.Authored[n]; ok {
		return append([]int(nil), steps...), nil
	}
	if d.Steps12 == nil {
		return nil, fmt.Errorf("%w: %q in %d-EDO", ErrScaleUnavailable, typ, n)
	}
	return ProjectFrom12TET(d.Steps12, n), nil
}
