// Package board assembles a complete fretboard view.
//
// 🚀 What is board?
//
//	The engine packages each answer one question: pitch names steps,
//	theory knows chords and scales, label writes fret numbers, geometry
//	places things in pixels and semantics picks cell text. Build wires
//	them together for one instrument in one temperament and returns a
//	Board: one Cell per (string, fret) with its step, pitch class,
//	position, membership flags and label.
//
// ✨ Key features
//
//   - Instrument catalog: guitar, drop-D guitar, bass, ukulele and a
//     five-string banjo whose drone string starts at fret 5.
//   - Settings is a plain value; WithX methods return updated copies,
//     so a Settings can be shared and tweaked without aliasing.
//   - Any catalog temperament; chords degrade to "no chord" where they
//     were never authored.
//   - Left-handed boards mirror every x coordinate.
//   - Positions finds every playable (string, fret) for a MIDI note.
//
// ⚙️ Usage
//
//	s := board.DefaultSettings().
//		WithSystem("19tet").
//		WithScale("minor").
//		WithChord("min")
//	b, err := board.Build(s)
//	if err != nil {
//		return err
//	}
//	for _, c := range b.Row(0) {
//		fmt.Println(c.Fret, c.Label, c.InScale)
//	}
//
// Build is pure: it performs no I/O and the returned Board shares no
// mutable state with the catalogs.
package board
