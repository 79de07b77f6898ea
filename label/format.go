package label

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/edofret/internal/edomath"
	"github.com/katalvlaran/edofret/pitch"
)

// fractionSlash is U+2044, used between numerator and denominator.
const fractionSlash = "⁄"

// compactGlyphs maps reduced fractions to single vulgar-fraction runes.
var compactGlyphs = map[[2]int]string{
	{1, 2}: "½",
	{1, 3}: "⅓", {2, 3}: "⅔",
	{1, 4}: "¼", {3, 4}: "¾",
	{1, 5}: "⅕", {2, 5}: "⅖", {3, 5}: "⅗", {4, 5}: "⅘",
	{1, 6}: "⅙", {5, 6}: "⅚",
	{1, 7}: "⅐",
	{1, 8}: "⅛", {3, 8}: "⅜", {5, 8}: "⅝", {7, 8}: "⅞",
	{1, 9}: "⅑",
	{1, 10}: "⅒",
}

// PerSemitone reports where fret f of an n-step system sits relative to
// 12-TET: pos12 = f·12/n, BaseSemi = floor(pos12),
// Num = Round((pos12 − BaseSemi)·n), Den = n.
//
// The fractional part is computed in integers (12f mod n), which is what
// the rounded float expression evaluates to exactly. Invalid input
// (f < 0, n < 1) returns the zero Info.
func PerSemitone(f, n int) Info {
	if f < 0 || n < 1 {
		return Info{}
	}
	return Info{BaseSemi: 12 * f / n, Num: (12 * f) % n, Den: n}
}

// Fret returns the label of fret f in an n-step system. For n = 12 it is
// the fret number in every style. pref only matters for Accidentals.
func Fret(f, n int, style Style, pref pitch.Accidental) string {
	if f < 0 || n < 1 {
		return ""
	}
	if n == 12 {
		return strconv.Itoa(f)
	}
	switch style {
	case Letters:
		return letters(f, n)
	case Accidentals:
		return accidentals(f, n, pref)
	default:
		return fractions(f, n)
	}
}

// FretFloat is Fret for a float fret position coming from transient UI
// state. NaN, ±Inf, negative or non-integral values yield "".
func FretFloat(f float64, n int, style Style, pref pitch.Accidental) string {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return ""
	}
	return Fret(int(f), n, style, pref)
}

func fractions(f, n int) string {
	info := PerSemitone(f, n)
	switch info.Num {
	case 0:
		return strconv.Itoa(info.BaseSemi)
	case info.Den:
		return strconv.Itoa(info.BaseSemi + 1)
	}
	g := edomath.GCD(info.Num, info.Den)
	num, den := info.Num/g, info.Den/g
	base := strconv.Itoa(info.BaseSemi)
	if glyph, ok := compactGlyphs[[2]int{num, den}]; ok {
		return base + glyph
	}
	return base + "+" + strconv.Itoa(num) + fractionSlash + strconv.Itoa(den)
}

func letters(f, n int) string {
	if n%12 == 0 {
		k := n / 12
		return strconv.Itoa(f/k) + strings.Repeat("a", f%k)
	}
	semi, exact := boundaryBucket(f, n)
	if exact {
		return strconv.Itoa(semi)
	}
	return strconv.Itoa(semi) + "a"
}

func accidentals(f, n int, pref pitch.Accidental) string {
	if n%12 != 0 {
		return fractions(f, n)
	}
	k := n / 12
	base, sub := f/k, f%k
	if sub == 0 {
		return strconv.Itoa(base)
	}
	if pref == pitch.Flat {
		return strconv.Itoa(base+1) + strings.Repeat("b", k-sub)
	}
	return strconv.Itoa(base) + strings.Repeat("s", sub)
}

// boundaryBucket places fret f of an irregular n-step system between the
// rounded semitone boundaries B[i] = Round(i·n/12), i = 0..12, repeated
// every octave. It returns the semitone index and whether f sits exactly
// on a boundary. When several boundaries coincide (n < 12) the lowest
// semitone wins.
func boundaryBucket(f, n int) (semi int, exact bool) {
	octave, r := f/n, f%n
	bucket := 0
	for i := 0; i < 12; i++ {
		b := edomath.SemitoneToStep(i, n)
		if b == r {
			return octave*12 + i, true
		}
		if b < r {
			bucket = i
		}
	}
	return octave*12 + bucket, false
}
