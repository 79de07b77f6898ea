package label

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle indicates an unparsable label style name.
var ErrUnknownStyle = errors.New("label: unknown style")

// Style selects the micro-interval notation.
type Style int

const (
	// Fractions writes the offset past the semitone as a reduced fraction.
	Fractions Style = iota
	// Letters appends one "a" per micro-step.
	Letters
	// Accidentals counts "s" (sharp) up or "b" (flat) down.
	Accidentals
)

var styleNames = [...]string{"fractions", "letters", "accidentals"}

// String returns the lower-case style name.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle accepts the names returned by String (case-insensitive).
func ParseStyle(s string) (Style, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return Fractions, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// Info locates a fret relative to 12-TET: the enclosing semitone BaseSemi
// and the offset past it as the unreduced fraction Num/Den (Den = N).
type Info struct {
	BaseSemi int
	Num      int
	Den      int
}
