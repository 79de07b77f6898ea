package geometry

import "math"

// FretDistance returns the distance from the nut to fret k on a string of
// scaleLength in an n-step system: L − L/2^(k/n).
//
// This is the physically exact placement; NewLayout does not use it.
// Invalid input (k < 0, n < 1, non-finite or non-positive length) yields 0.
func FretDistance(k, n int, scaleLength float64) float64 {
	if k < 0 || n < 1 || math.IsNaN(scaleLength) || math.IsInf(scaleLength, 0) || scaleLength <= 0 {
		return 0
	}
	return scaleLength - scaleLength/math.Exp2(float64(k)/float64(n))
}

// FretDistances returns FretDistance for k = 0..count. count < 0 yields nil.
func FretDistances(count, n int, scaleLength float64) []float64 {
	if count < 0 {
		return nil
	}
	out := make([]float64, count+1)
	for k := range out {
		out[k] = FretDistance(k, n, scaleLength)
	}
	return out
}
