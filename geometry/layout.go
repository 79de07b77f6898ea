package geometry

import (
	"math"

	"github.com/katalvlaran/edofret"
)

// FretWidthFor returns the constant cell width used for a neck with the
// given number of frets: fewer frets get wider cells.
func FretWidthFor(frets int) float64 {
	switch {
	case frets <= 12:
		return 64
	case frets <= 24:
		return 52
	case frets <= 36:
		return 40
	default:
		return 30
	}
}

// NewLayout computes the constant-width layout.
//
// Outline:
//  1. Replace out-of-range counts and non-finite or non-positive dot size
//     with DefaultFrets / DefaultStrings / DefaultDotSize.
//  2. Padding and string spacing scale with the dot size; fret width
//     comes from FretWidthFor.
//  3. FretX[i] = Left + i·FretWidth for i = 0..Frets.
//  4. StringY[s] = Top + (Strings−1−s)·StringSpacing (string 0 at the bottom).
//  5. Meta is normalised with NormalizeStringMeta.
func NewLayout(p Params) Layout {
	frets, strs, dot := p.Frets, p.Strings, p.DotSize
	if frets < 1 || frets > MaxFrets {
		edofret.Logger().Debug("geometry: fret count defaulted", "got", frets, "default", DefaultFrets)
		frets = DefaultFrets
	}
	if strs < 1 || strs > MaxStrings {
		edofret.Logger().Debug("geometry: string count defaulted", "got", strs, "default", DefaultStrings)
		strs = DefaultStrings
	}
	if math.IsNaN(dot) || math.IsInf(dot, 0) || dot <= 0 || dot > MaxDotSize {
		edofret.Logger().Debug("geometry: dot size defaulted", "got", dot, "default", DefaultDotSize)
		dot = DefaultDotSize
	}

	l := Layout{
		Frets:         frets,
		DotSize:       dot,
		FretWidth:     FretWidthFor(frets),
		StringSpacing: math.Max(2*dot+8, 24),
		Padding: Padding{
			Top:    dot + 8,
			Right:  dot + 8,
			Bottom: 2*dot + 20,
			Left:   3*dot + 8,
		},
	}
	l.FretX = make([]float64, frets+1)
	for i := range l.FretX {
		l.FretX[i] = l.Padding.Left + float64(i)*l.FretWidth
	}
	l.StringY = make([]float64, strs)
	for s := range l.StringY {
		l.StringY[s] = l.Padding.Top + float64(strs-1-s)*l.StringSpacing
	}
	l.Width = l.Padding.Left + float64(frets)*l.FretWidth + l.Padding.Right
	l.Height = l.Padding.Top + float64(strs-1)*l.StringSpacing + l.Padding.Bottom
	l.Strings = NormalizeStringMeta(p.Meta, strs, frets)
	return l
}

// openOffset is how far left of a fret wire an open marker sits.
func (l Layout) openOffset() float64 { return l.DotSize + 4 }

// NoteX returns the x of a note marker on fret f: the cell centre for
// f ≥ 1, a spot left of the nut for f ≤ 0. f beyond the last fret is
// clamped to it.
func (l Layout) NoteX(f int) float64 {
	if len(l.FretX) == 0 {
		return 0
	}
	if f <= 0 {
		return l.FretX[0] - l.openOffset()
	}
	if f > l.Frets {
		f = l.Frets
	}
	return (l.FretX[f-1] + l.FretX[f]) / 2
}

// Y returns the y of string s and false when s is out of range.
func (l Layout) Y(s int) (float64, bool) {
	if s < 0 || s >= len(l.StringY) {
		return 0, false
	}
	return l.StringY[s], true
}

// Meta returns the normalised metadata of string s (defaults when out of range).
func (l Layout) Meta(s int) StringMeta {
	if s < 0 || s >= len(l.Strings) {
		return StringMeta{Index: s, GreyBefore: true}
	}
	return l.Strings[s]
}

// OpenX returns where the "open" marker of string s is drawn: left of the
// nut normally, left of the start fret's wire when the string starts later.
func (l Layout) OpenX(s int) float64 {
	if len(l.FretX) == 0 {
		return 0
	}
	return l.FretX[l.startFret(s)] - l.openOffset()
}

// startFret is the start fret of string s clamped to [0, Frets], so it
// always indexes FretX even for hand-built layouts.
func (l Layout) startFret(s int) int {
	start := l.Meta(s).StartFret
	if start > l.Frets {
		start = l.Frets
	}
	if start < 0 {
		start = 0
	}
	return start
}

// FretVisible reports whether fret f is rendered on string s: it must be
// on the neck and not below the string's start fret.
func (l Layout) FretVisible(s, f int) bool {
	if s < 0 || s >= len(l.StringY) || f < 0 || f > l.Frets {
		return false
	}
	return f >= l.Meta(s).StartFret
}

// StringLine describes how string s is drawn. Out-of-range s yields the
// zero value.
func (l Layout) StringLine(s int) StringLine {
	y, ok := l.Y(s)
	if !ok || len(l.FretX) == 0 {
		return StringLine{String: s}
	}
	start := l.startFret(s)
	line := StringLine{
		String: s,
		Y:      y,
		StartX: l.FretX[start],
		EndX:   l.FretX[l.Frets],
	}
	if start > 0 && l.Meta(s).GreyBefore {
		line.Ghost = &Segment{X1: l.FretX[0], X2: l.FretX[start], Y: y}
	}
	return line
}

// InlayY is the y of the inlay marker row, below the lowest string.
func (l Layout) InlayY() float64 {
	if len(l.StringY) == 0 {
		return 0
	}
	return l.StringY[0] + l.DotSize + 6
}

// LabelY is the y of the fret-number row, below the inlays.
func (l Layout) LabelY() float64 {
	return l.InlayY() + l.DotSize + 8
}

// MirrorX mirrors x across the layout width when leftHanded is set.
func (l Layout) MirrorX(x float64, leftHanded bool) float64 {
	return Mirror(x, l.Width, leftHanded)
}

// Mirror maps x to width − x for left-handed rendering and is the
// identity otherwise.
func Mirror(x, width float64, leftHanded bool) float64 {
	if leftHanded {
		return width - x
	}
	return x
}
