package geometry

import (
	"sort"

	"github.com/katalvlaran/edofret/internal/edomath"
)

// singleSemis are the single-dot positions within one octave.
var singleSemis = map[int]bool{3: true, 5: true, 7: true, 9: true}

// InlaysFor returns the marker frets of an n-step neck with fretCount frets.
//
// Single dots sit at semitones 3, 5, 7, 9 of every octave (so 15, 17, 19,
// 21 ...), double dots at every 12th semitone. Each semitone becomes fret
// Round(semitone·n/12), the same conversion the fret labels use. Results
// are restricted to 1..fretCount, deduplicated and sorted; a fret that is
// both single and double keeps only the double.
func InlaysFor(fretCount, n int) Inlays {
	if fretCount < 1 || n < 1 {
		return Inlays{Single: []int{}, Double: []int{}}
	}
	maxSemi := edomath.StepToSemitone(fretCount, n) + 12
	singles := map[int]bool{}
	doubles := map[int]bool{}
	for semi := 1; semi <= maxSemi; semi++ {
		f := edomath.SemitoneToStep(semi, n)
		if f < 1 || f > fretCount {
			continue
		}
		switch {
		case semi%12 == 0:
			doubles[f] = true
		case singleSemis[semi%12]:
			singles[f] = true
		}
	}
	for f := range doubles {
		delete(singles, f)
	}
	return Inlays{Single: sortedKeys(singles), Double: sortedKeys(doubles)}
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
