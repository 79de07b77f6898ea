// Package semantics chooses the text drawn on a fretboard cell.
//
// A cell is identified by its pitch class and fret. Depending on the display
// Mode the label is the note name, the degree inside the active scale, the
// interval above the root, the step distance from the root, or the fret
// number in the chosen micro-interval notation.
//
// Label never fails: anything it cannot name comes back as "".
//
//	ctx := semantics.Context{System: pitch.MustLookup("24tet"), Root: 0, Scale: &sc}
//	semantics.Label(ctx, 14, 14, semantics.Interval) // "5"
package semantics
