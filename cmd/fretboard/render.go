package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/edofret/board"
	"github.com/katalvlaran/edofret/pitch"
	"github.com/katalvlaran/edofret/semantics"
	"github.com/katalvlaran/edofret/theory"
)

var (
	rootStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true)
	chordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fd75f"))
	scaleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	otherStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#555"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87afff")).Bold(true)
)

type renderOptions struct {
	// All labels every visible cell instead of scale and chord tones only.
	All bool
}

// render draws b as text: highest string on top, a nut bar after fret 0,
// then the inlay row and the fret-number row. Left-handed boards run
// from the highest fret to the nut.
func render(b *board.Board, opt renderOptions) string {
	frets := b.Layout.Frets
	width := cellWidth(b)

	order := make([]int, frets+1)
	for i := range order {
		order[i] = i
		if b.Settings.LeftHanded {
			order[i] = frets - i
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title(b)))
	sb.WriteByte('\n')

	for s := len(b.Cells) - 1; s >= 0; s-- {
		line := b.Layout.StringLine(s)
		for _, f := range order {
			c := b.Cells[s][f]
			sb.WriteString(renderCell(c, line.Ghost != nil, width, opt))
			sb.WriteString(separator(f, b.Settings.LeftHanded))
		}
		sb.WriteByte('\n')
	}

	marks := map[int]string{}
	for _, f := range b.Inlays.Single {
		marks[f] = "•"
	}
	for _, f := range b.Inlays.Double {
		marks[f] = "••"
	}
	labels := b.FretLabels()
	var inlays, numbers strings.Builder
	for _, f := range order {
		inlays.WriteString(pad(marks[f], width) + " ")
		numbers.WriteString(pad(labels[f], width) + " ")
	}
	sb.WriteString(dimStyle.Render(strings.TrimRight(inlays.String(), " ")))
	sb.WriteByte('\n')
	sb.WriteString(dimStyle.Render(strings.TrimRight(numbers.String(), " ")))
	return sb.String()
}

func title(b *board.Board) string {
	parts := []string{b.System.Name, b.Instrument.Name}
	root := b.System.NameForPc(b.Root, b.Settings.Accidental)
	if b.Scale != nil {
		if def, err := theory.LookupScale(b.Scale.Type); err == nil {
			parts = append(parts, root+" "+def.Label)
		}
	}
	if b.Settings.Chord != "" {
		chord := root + " " + theory.ChordLabel(b.Settings.Chord)
		if len(b.ChordPCs) == 0 {
			chord += " (not defined in this system)"
		}
		parts = append(parts, chord)
	}
	parts = append(parts, "mode: "+b.Settings.Mode.String())
	return strings.Join(parts, " · ")
}

func renderCell(c board.Cell, ghost bool, width int, opt renderOptions) string {
	if !c.Visible {
		fill := " "
		if ghost {
			fill = "┄"
		}
		return dimStyle.Render(strings.Repeat(fill, width))
	}
	shown := opt.All || c.InScale || c.InChord || c.IsRoot
	if !shown || c.Label == "" {
		return otherStyle.Render(strings.Repeat("─", width))
	}
	text := pad(c.Label, width)
	switch {
	case c.IsRoot:
		return rootStyle.Render(text)
	case c.InChord:
		return chordStyle.Render(text)
	case c.InScale:
		return scaleStyle.Render(text)
	}
	return otherStyle.Render(text)
}

// separator is drawn after fret f: the nut between frets 0 and 1, a fret
// wire otherwise.
func separator(f int, leftHanded bool) string {
	nut := f == 0
	if leftHanded {
		nut = f == 1
	}
	if nut {
		return "‖"
	}
	return "│"
}

// cellWidth fits the widest label of the board.
func cellWidth(b *board.Board) int {
	w := 3
	for _, row := range b.Cells {
		for _, c := range row {
			w = max(w, lipgloss.Width(c.Label))
		}
	}
	for _, l := range b.FretLabels() {
		w = max(w, lipgloss.Width(l))
	}
	return w
}

// pad centres s in width columns.
func pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// printCatalogs lists every id the flags accept.
func printCatalogs(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("systems"))
	for _, s := range pitch.Systems() {
		fmt.Fprintf(w, "  %-8s %s\n", s.ID, s.Name)
	}
	fmt.Fprintln(w, titleStyle.Render("instruments"))
	for _, in := range board.Instruments() {
		fmt.Fprintf(w, "  %-13s %s [%s]\n", in.ID, in.Name, strings.Join(pitch.MIDINames(in.OpenMIDI), " "))
	}
	fmt.Fprintln(w, titleStyle.Render("scales"))
	for _, typ := range theory.ScaleTypes() {
		def, _ := theory.LookupScale(typ)
		fmt.Fprintf(w, "  %-18s %s\n", typ, def.Label)
	}
	fmt.Fprintln(w, titleStyle.Render("chords"))
	for _, n := range []int{12, 19, 24} {
		fmt.Fprintf(w, "  %d-TET: %s\n", n, strings.Join(theory.ChordTypes(n), " "))
	}
	fmt.Fprintln(w, titleStyle.Render("modes"))
	for _, m := range semantics.Modes() {
		fmt.Fprintf(w, "  %s\n", m)
	}
}
