package board

import (
	"fmt"

	"github.com/katalvlaran/edofret"
	"github.com/katalvlaran/edofret/geometry"
	"github.com/katalvlaran/edofret/internal/edomath"
	"github.com/katalvlaran/edofret/label"
	"github.com/katalvlaran/edofret/pitch"
	"github.com/katalvlaran/edofret/semantics"
	"github.com/katalvlaran/edofret/theory"
)

// Cell is one (string, fret) position.
type Cell struct {
	String int
	Fret   int

	// Step is the absolute step, 0 being the system reference pitch.
	Step int
	// PC is Step folded into [0, N).
	PC int

	// X, Y locate the note marker, already mirrored for left-handed boards.
	X, Y float64

	// Visible is false below the string's start fret.
	Visible bool
	InScale bool
	InChord bool
	IsRoot  bool

	// Label is the cell text for the board's mode; "" when hidden.
	Label string
}

// Board is a fully resolved fretboard.
type Board struct {
	Settings   Settings
	System     pitch.TuningSystem
	Instrument Instrument

	// Root is Settings.Root folded into [0, N).
	Root int
	// Scale is nil when no scale is shown.
	Scale *theory.Scale
	// ChordPCs is empty when no chord is shown or the chord is not
	// authored for this temperament.
	ChordPCs []int

	Layout geometry.Layout
	Inlays geometry.Inlays

	// OpenSteps holds the step each string sounds at its start fret.
	OpenSteps []int

	// Cells is indexed [string][fret] with frets 0..Layout.Frets.
	Cells [][]Cell
}

// Build resolves s into a Board.
//
// Steps:
//  1. Resolve the tuning system (catalog id or "<n>tet") and the
//     instrument; custom string metadata in s overrides the instrument's.
//  2. Resolve the scale and chord; a chord type that exists but was not
//     authored for this N yields an empty chord, not an error.
//  3. Compute the layout and inlays (invalid fret count or dot size fall
//     back to geometry defaults).
//  4. For every string and fret: step = openStep + fret − startFret,
//     position, membership flags and label.
//
// Errors wrap pitch.ErrUnknownSystem, ErrUnknownInstrument, ErrNoStrings,
// ErrUnknownChord and the theory scale errors.
func Build(s Settings) (*Board, error) {
	sys, err := pitch.Resolve(s.System)
	if err != nil {
		return nil, fmt.Errorf("board: resolve system: %w", err)
	}
	inst, err := LookupInstrument(s.Instrument)
	if err != nil {
		return nil, fmt.Errorf("board: resolve instrument: %w", err)
	}
	if len(inst.OpenMIDI) == 0 {
		return nil, fmt.Errorf("board: %q: %w", inst.ID, ErrNoStrings)
	}
	n := sys.Divisions

	b := &Board{
		Settings:   s.WithStrings(s.Strings),
		System:     sys,
		Instrument: inst,
		Root:       edomath.Mod(s.Root, n),
		ChordPCs:   []int{},
	}

	if s.Scale != "" {
		sc, err := theory.NewScale(s.Scale, b.Root, n)
		if err != nil {
			return nil, fmt.Errorf("board: resolve scale: %w", err)
		}
		b.Scale = &sc
	}
	if s.Chord != "" {
		if !theory.IsChordType(s.Chord) {
			return nil, fmt.Errorf("board: resolve chord: %w: %q", ErrUnknownChord, s.Chord)
		}
		b.ChordPCs = theory.BuildChordPCsFromPc(b.Root, s.Chord, n)
	}

	meta := inst.Strings
	if s.Strings != nil {
		meta = s.Strings
	}
	b.Layout = geometry.NewLayout(geometry.Params{
		Frets:   s.Frets,
		Strings: len(inst.OpenMIDI),
		DotSize: s.DotSize,
		Meta:    meta,
	})
	b.Inlays = geometry.InlaysFor(b.Layout.Frets, n)

	edofret.Logger().Debug("board: resolved",
		"system", sys.ID,
		"instrument", inst.ID,
		"frets", b.Layout.Frets,
		"root", b.Root,
		"scale", s.Scale,
		"chord", s.Chord,
		"chord_pcs", len(b.ChordPCs),
	)

	b.fill()
	return b, nil
}

func (b *Board) fill() {
	n := b.System.Divisions
	chord := make(map[int]bool, len(b.ChordPCs))
	for _, pc := range b.ChordPCs {
		chord[pc] = true
	}
	ctx := semantics.Context{
		System:     b.System,
		Root:       b.Root,
		Scale:      b.Scale,
		Style:      b.Settings.Style,
		Accidental: b.Settings.Accidental,
	}

	strs := len(b.Instrument.OpenMIDI)
	b.OpenSteps = make([]int, strs)
	b.Cells = make([][]Cell, strs)
	for s := 0; s < strs; s++ {
		open := pitch.MIDIToStep(b.Instrument.OpenMIDI[s], b.System)
		b.OpenSteps[s] = open
		start := b.Layout.Meta(s).StartFret
		y, _ := b.Layout.Y(s)

		row := make([]Cell, b.Layout.Frets+1)
		for f := range row {
			step := open + f - start
			pc := edomath.Mod(step, n)
			x := b.Layout.NoteX(f)
			if f == start {
				x = b.Layout.OpenX(s)
			}
			c := Cell{
				String:  s,
				Fret:    f,
				Step:    step,
				PC:      pc,
				X:       b.Layout.MirrorX(x, b.Settings.LeftHanded),
				Y:       y,
				Visible: b.Layout.FretVisible(s, f),
				InChord: chord[pc],
				IsRoot:  pc == b.Root,
			}
			if b.Scale != nil {
				c.InScale = b.Scale.Contains(pc)
			}
			if c.Visible {
				c.Label = semantics.Label(ctx, pc, f, b.Settings.Mode)
			}
			row[f] = c
		}
		b.Cells[s] = row
	}
}

// Row returns the cells of string s, or nil when s is out of range.
func (b *Board) Row(s int) []Cell {
	if s < 0 || s >= len(b.Cells) {
		return nil
	}
	return b.Cells[s]
}

// Cell returns the cell at (s, f) and false when it is off the board.
func (b *Board) Cell(s, f int) (Cell, bool) {
	row := b.Row(s)
	if f < 0 || f >= len(row) {
		return Cell{}, false
	}
	return row[f], true
}

// FretLabels returns the fret-number row, fret 0 included.
func (b *Board) FretLabels() []string {
	out := make([]string, b.Layout.Frets+1)
	for f := range out {
		out[f] = label.Fret(f, b.System.Divisions, b.Settings.Style, b.Settings.Accidental)
	}
	return out
}

// InlayX returns the mirrored x of the inlay marker for fret f.
func (b *Board) InlayX(f int) float64 {
	return b.Layout.MirrorX(b.Layout.NoteX(f), b.Settings.LeftHanded)
}
