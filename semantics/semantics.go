package semantics

import (
	"strconv"

	"github.com/katalvlaran/edofret/internal/edomath"
	"github.com/katalvlaran/edofret/label"
	"github.com/katalvlaran/edofret/pitch"
	"github.com/katalvlaran/edofret/theory"
)

// Context carries what a label depends on besides the cell itself.
type Context struct {
	// System supplies N and note spellings.
	System pitch.TuningSystem

	// Root is the pitch class intervals and steps are measured from.
	Root int

	// Scale is the active scale; nil means no scale, so Degree labels are empty.
	Scale *theory.Scale

	// Style is the fret notation used by FretNumber.
	Style label.Style

	// Accidental is the spelling preference for NoteName and FretNumber.
	Accidental pitch.Accidental
}

// Label returns the text for the cell at pitch class pc on fret fret.
//
//   - NoteName:   System.NameForPc(pc, Accidental).
//   - Degree:     1-based degree of pc in Scale, "" outside it.
//   - Interval:   theory.DegreeForStep((pc − Root) mod N, N).
//   - Step:       (pc − Root) mod N.
//   - FretNumber: label.Fret(fret, N, Style, Accidental).
//
// pc may be any integer; it is folded into [0, N). An unknown mode or a
// system with N < 1 yields "".
func Label(ctx Context, pc, fret int, mode Mode) string {
	n := ctx.System.Divisions
	if n < 1 {
		return ""
	}
	pc = edomath.Mod(pc, n)
	rel := edomath.Mod(pc-ctx.Root, n)

	switch mode {
	case NoteName:
		return ctx.System.NameForPc(pc, ctx.Accidental)
	case Degree:
		if ctx.Scale == nil {
			return ""
		}
		d, ok := ctx.Scale.DegreeForPc(pc)
		if !ok {
			return ""
		}
		return strconv.Itoa(d)
	case Interval:
		return theory.DegreeForStep(rel, n)
	case Step:
		return strconv.Itoa(rel)
	case FretNumber:
		return label.Fret(fret, n, ctx.Style, ctx.Accidental)
	}
	return ""
}

// Labels returns Label for every pitch class 0..N−1, as seen on a single
// string tuned to pitch class 0 (fret = pc). N < 1 yields nil.
func Labels(ctx Context, mode Mode) []string {
	n := ctx.System.Divisions
	if n < 1 {
		return nil
	}
	out := make([]string, n)
	for pc := range out {
		out[pc] = Label(ctx, pc, pc, mode)
	}
	return out
}
