package geometry

// Layout defaults, used whenever a Params field is missing or out of range.
const (
	DefaultFrets   = 12
	DefaultStrings = 6
	DefaultDotSize = 10.0

	// MaxFrets and MaxStrings bound the layout; larger requests fall back
	// to the defaults.
	MaxFrets   = 512
	MaxStrings = 64

	// MaxDotSize bounds the marker radius in pixels.
	MaxDotSize = 64.0
)

// StringMeta describes where a string's playable range begins.
type StringMeta struct {
	// Index is the string number, 0 = bottom.
	Index int
	// StartFret is the first fret that exists on this string (0 = nut).
	StartFret int
	// GreyBefore draws a muted segment from the nut to StartFret.
	GreyBefore bool
}

// RawStringMeta is StringMeta as it arrives from presets or config files:
// any field may be absent. See NormalizeStringMeta.
type RawStringMeta struct {
	Index      *int  `yaml:"index" json:"index"`
	StartFret  *int  `yaml:"startFret,omitempty" json:"startFret,omitempty"`
	GreyBefore *bool `yaml:"greyBefore,omitempty" json:"greyBefore,omitempty"`
}

// Params are the inputs of NewLayout.
type Params struct {
	Frets   int
	Strings int
	// DotSize is the note-marker radius in pixels.
	DotSize float64
	// Meta may be partial; missing strings get defaults.
	Meta []RawStringMeta
}

// Padding is the margin around the neck, in pixels.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Layout is the derived pixel model of one fretboard. Recompute it with
// NewLayout whenever a Params field changes; never mutate it.
type Layout struct {
	Width, Height float64
	FretWidth     float64
	StringSpacing float64
	DotSize       float64
	Padding       Padding

	// Frets is the number of fret cells; FretX has Frets+1 entries and
	// FretX[0] is the nut.
	Frets int
	FretX []float64

	// StringY[s] is the y of string s.
	StringY []float64

	// Strings holds one normalised StringMeta per string.
	Strings []StringMeta
}

// Segment is a horizontal line piece.
type Segment struct {
	X1, X2, Y float64
}

// StringLine describes how one string is drawn.
type StringLine struct {
	String       int
	Y            float64
	StartX, EndX float64
	// Ghost is the muted nut→start segment, nil when not drawn.
	Ghost *Segment
}

// Inlays lists the fret indices that carry position markers.
type Inlays struct {
	Single []int
	Double []int
}
