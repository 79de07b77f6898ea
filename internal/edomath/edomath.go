// Package edomath holds the arithmetic every edofret package must agree on:
// one rounding rule, one modulo, one semitone⇄step conversion.
//
// Rounding contract:
//
//	Round is round-half-away-from-zero (0.5 → 1, −0.5 → −1, 2.5 → 3).
//	All step, degree, boundary and inlay conversions go through it, so
//	labels and markers can never disagree about which fret a semitone is.
package edomath

import "math"

// Round rounds x half away from zero. Non-finite x yields 0.
func Round(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return int(math.Round(x))
}

// Mod returns v modulo n normalised into [0, n). n must be ≥ 1; for n < 1
// Mod returns 0.
func Mod(v, n int) int {
	if n < 1 {
		return 0
	}
	return ((v % n) + n) % n
}

// GCD returns the greatest common divisor of |a| and |b| (GCD(0,0) = 0).
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// SemitoneToStep converts a 12-TET semitone offset to the nearest step of
// an n-step octave: Round(semi·n/12).
func SemitoneToStep(semi, n int) int {
	return Round(float64(semi) * float64(n) / 12)
}

// StepToSemitone converts an n-EDO step to the nearest 12-TET semitone:
// Round(step·12/n). n < 1 yields 0.
func StepToSemitone(step, n int) int {
	if n < 1 {
		return 0
	}
	return Round(float64(step) * 12 / float64(n))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
