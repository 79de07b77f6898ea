package theory

import "github.com/katalvlaran/edofret/internal/edomath"

// degreeNames12 are the canonical interval names of the twelve semitones.
var degreeNames12 = [12]string{"1", "b2", "2", "b3", "3", "4", "b5", "5", "b6", "6", "b7", "7"}

// DegreeForStep names the interval of step above a root.
//
// For n = 12 it is a direct lookup. Any other n is mapped to the nearest
// 12-TET semitone with Round(step/n·12) and reuses the 12-TET names. This is
// lossy: 24-TET step 1 (a quarter tone) reads "b2" because 0.5
// rounds away from zero. Steps are folded into [0, n) first; n < 1 yields "".
func DegreeForStep(step, n int) string {
	if n < 1 {
		return ""
	}
	step = edomath.Mod(step, n)
	if n == 12 {
		return degreeNames12[step]
	}
	return degreeNames12[edomath.Mod(edomath.StepToSemitone(step, n), 12)]
}
