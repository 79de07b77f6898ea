package board

import (
	"sort"

	"github.com/katalvlaran/edofret"
	"github.com/katalvlaran/edofret/pitch"
)

// Muted marks a string that plays nothing in a Voicing.
const Muted = -1

// Positions returns every visible cell that sounds the MIDI note m once
// rounded to the board's temperament, ordered by string then fret.
func (b *Board) Positions(m int) []Cell {
	step := pitch.MIDIToStep(m, b.System)
	var out []Cell
	for s, row := range b.Cells {
		f := step - b.OpenSteps[s] + b.Layout.Meta(s).StartFret
		if f < 0 || f >= len(row) || !row[f].Visible {
			continue
		}
		out = append(out, row[f])
	}
	return out
}

// Voicing is one fret per string; Muted strings are silent.
type Voicing struct {
	Frets []int
	// Unplaced lists the MIDI notes no free string could reach.
	Unplaced []int
}

// Voice assigns each MIDI note to the first free string that can play it,
// one note per string, lowest note first. Notes that fit nowhere are
// reported in Unplaced; duplicates are placed once.
func (b *Board) Voice(notes []int) Voicing {
	v := Voicing{Frets: make([]int, len(b.Cells))}
	for s := range v.Frets {
		v.Frets[s] = Muted
	}

	sorted := append([]int(nil), notes...)
	sort.Ints(sorted)
	log := edofret.Logger()
	for i, m := range sorted {
		if i > 0 && m == sorted[i-1] {
			continue
		}
		placed := false
		for _, c := range b.Positions(m) {
			if v.Frets[c.String] != Muted {
				continue
			}
			v.Frets[c.String] = c.Fret
			log.Debug("board: note placed", "midi", m, "string", c.String, "fret", c.Fret)
			placed = true
			break
		}
		if !placed {
			log.Debug("board: note unplaceable", "midi", m)
			v.Unplaced = append(v.Unplaced, m)
		}
	}
	return v
}
