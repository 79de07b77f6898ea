package board

import (
	"github.com/katalvlaran/edofret/geometry"
	"github.com/katalvlaran/edofret/label"
	"github.com/katalvlaran/edofret/pitch"
	"github.com/katalvlaran/edofret/semantics"
)

// Settings selects what Build renders. It is a plain value: the WithX
// methods return a modified copy and never touch the receiver.
type Settings struct {
	// System is a pitch catalog id, e.g. "24tet".
	System string
	// Instrument is a board catalog id, e.g. "guitar".
	Instrument string
	// Frets is the number of frets drawn; invalid values fall back to the
	// geometry default.
	Frets int
	// DotSize is the note marker radius in pixels.
	DotSize float64
	// Root is the root pitch class (folded into [0, N)).
	Root int
	// Scale is a theory scale type; "" shows no scale.
	Scale string
	// Chord is a theory chord type; "" shows no chord.
	Chord string
	// Mode picks the cell text.
	Mode semantics.Mode
	// Style is the fret-number notation.
	Style label.Style
	// Accidental is the spelling preference.
	Accidental pitch.Accidental
	// LeftHanded mirrors the board horizontally.
	LeftHanded bool
	// Strings overrides the instrument's string metadata when non-nil.
	Strings []geometry.RawStringMeta
}

// DefaultSettings returns a 24-TET guitar showing C major note names.
func DefaultSettings() Settings {
	return Settings{
		System:     "24tet",
		Instrument: "guitar",
		Frets:      24,
		DotSize:    geometry.DefaultDotSize,
		Root:       0,
		Scale:      "major",
		Mode:       semantics.NoteName,
		Style:      label.Fractions,
		Accidental: pitch.Sharp,
	}
}

// WithSystem returns a copy using tuning system id.
func (s Settings) WithSystem(id string) Settings { s.System = id; return s }

// WithInstrument returns a copy using instrument id.
func (s Settings) WithInstrument(id string) Settings { s.Instrument = id; return s }

// WithFrets returns a copy with n frets.
func (s Settings) WithFrets(n int) Settings { s.Frets = n; return s }

// WithDotSize returns a copy with marker radius d.
func (s Settings) WithDotSize(d float64) Settings { s.DotSize = d; return s }

// WithRoot returns a copy rooted on pitch class pc.
func (s Settings) WithRoot(pc int) Settings { s.Root = pc; return s }

// WithScale returns a copy showing scale typ ("" for none).
func (s Settings) WithScale(typ string) Settings { s.Scale = typ; return s }

// WithChord returns a copy showing chord typ ("" for none).
func (s Settings) WithChord(typ string) Settings { s.Chord = typ; return s }

// WithMode returns a copy labelling cells in mode m.
func (s Settings) WithMode(m semantics.Mode) Settings { s.Mode = m; return s }

// WithStyle returns a copy using fret notation st.
func (s Settings) WithStyle(st label.Style) Settings { s.Style = st; return s }

// WithAccidental returns a copy with spelling preference a.
func (s Settings) WithAccidental(a pitch.Accidental) Settings { s.Accidental = a; return s }

// WithLeftHanded returns a copy with mirroring set to left.
func (s Settings) WithLeftHanded(left bool) Settings { s.LeftHanded = left; return s }

// WithStrings returns a copy whose string metadata is a deep copy of raw.
// A nil raw restores the instrument's own metadata.
func (s Settings) WithStrings(raw []geometry.RawStringMeta) Settings {
	if raw == nil {
		s.Strings = nil
		return s
	}
	s.Strings = cloneMeta(raw)
	return s
}
