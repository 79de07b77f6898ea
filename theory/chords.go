package theory

import (
	"sort"

	"github.com/katalvlaran/edofret"
	"github.com/katalvlaran/edofret/internal/edomath"
)

// ChordFormula is one authored chord shape for one temperament.
type ChordFormula struct {
	// Type is the catalog key, e.g. "min7".
	Type string
	// Label is a display title, e.g. "Minor 7th".
	Label string
	// Divisions is the N this formula was written for.
	Divisions int
	// Steps are offsets from the root, ascending, starting with 0.
	Steps []int
}

// chordLabels gives every chord type its title and display order.
var chordLabels = []struct{ typ, label string }{
	{"maj", "Major"},
	{"min", "Minor"},
	{"dim", "Diminished"},
	{"aug", "Augmented"},
	{"sus2", "Suspended 2nd"},
	{"sus4", "Suspended 4th"},
	{"7", "Dominant 7th"},
	{"maj7", "Major 7th"},
	{"min7", "Minor 7th"},
	{"m7b5", "Half-diminished"},
	{"dim7", "Diminished 7th"},
	{"neutral", "Neutral"},
	{"neutral7", "Neutral 7th"},
}

// chordSteps maps divisions → chord type → steps. Only these N exist.
var chordSteps = map[int]map[string][]int{
	12: {
		"maj":  {0, 4, 7},
		"min":  {0, 3, 7},
		"dim":  {0, 3, 6},
		"aug":  {0, 4, 8},
		"sus2": {0, 2, 7},
		"sus4": {0, 5, 7},
		"7":    {0, 4, 7, 10},
		"maj7": {0, 4, 7, 11},
		"min7": {0, 3, 7, 10},
		"m7b5": {0, 3, 6, 10},
		"dim7": {0, 3, 6, 9},
	},
	19: {
		"maj":  {0, 6, 11},
		"min":  {0, 5, 11},
		"dim":  {0, 5, 10},
		"aug":  {0, 6, 12},
		"sus2": {0, 3, 11},
		"sus4": {0, 8, 11},
		"7":    {0, 6, 11, 16},
		"maj7": {0, 6, 11, 17},
		"min7": {0, 5, 11, 16},
		"m7b5": {0, 5, 10, 16},
		"dim7": {0, 5, 10, 15},
	},
	24: {
		"maj":      {0, 8, 14},
		"min":      {0, 6, 14},
		"dim":      {0, 6, 12},
		"aug":      {0, 8, 16},
		"sus2":     {0, 4, 14},
		"sus4":     {0, 10, 14},
		"7":        {0, 8, 14, 20},
		"maj7":     {0, 8, 14, 22},
		"min7":     {0, 6, 14, 20},
		"m7b5":     {0, 6, 12, 20},
		"dim7":     {0, 6, 12, 18},
		"neutral":  {0, 7, 14},
		"neutral7": {0, 7, 14, 21},
	},
}

// ChordFormulaFor returns the authored formula for (typ, n).
// ok is false when the pair was never authored.
func ChordFormulaFor(typ string, n int) (ChordFormula, bool) {
	steps, ok := chordSteps[n][typ]
	if !ok {
		return ChordFormula{}, false
	}
	return ChordFormula{
		Type:      typ,
		Label:     chordLabel(typ),
		Divisions: n,
		Steps:     append([]int(nil), steps...),
	}, true
}

// ChordTypes lists the chord types authored for n in display order.
func ChordTypes(n int) []string {
	byType := chordSteps[n]
	var out []string
	for _, cl := range chordLabels {
		if _, ok := byType[cl.typ]; ok {
			out = append(out, cl.typ)
		}
	}
	return out
}

// IsChordType reports whether typ names a chord in any temperament.
func IsChordType(typ string) bool {
	for _, cl := range chordLabels {
		if cl.typ == typ {
			return true
		}
	}
	return false
}

// ChordLabel returns the display title of a chord type, or typ itself.
func ChordLabel(typ string) string { return chordLabel(typ) }

func chordLabel(typ string) string {
	for _, cl := range chordLabels {
		if cl.typ == typ {
			return cl.label
		}
	}
	return typ
}

// BuildChordPCsFromPc returns the pitch classes of a typ chord on rootPc
// in an n-step system, sorted ascending.
//
// If (typ, n) is not authored the result is an empty, non-nil slice:
// callers render "no chord", this is not an error.
func BuildChordPCsFromPc(rootPc int, typ string, n int) []int {
	steps, ok := chordSteps[n][typ]
	if !ok {
		edofret.Logger().Debug("theory: chord not authored", "type", typ, "divisions", n)
		return []int{}
	}
	root := edomath.Mod(rootPc, n)
	out := make([]int, 0, len(steps))
	for _, s := range steps {
		out = append(out, edomath.Mod(root+s, n))
	}
	sort.Ints(out)
	return out
}
