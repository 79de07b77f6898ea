package pitch

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pitch operations.
var (
	// ErrUnknownSystem indicates a tuning-system id that is not in the catalog.
	ErrUnknownSystem = errors.New("pitch: unknown tuning system")

	// ErrBadDivisions indicates a division count below 1.
	ErrBadDivisions = errors.New("pitch: divisions must be at least 1")

	// ErrBadReference indicates a non-finite or non-positive reference frequency.
	ErrBadReference = errors.New("pitch: reference frequency must be finite and positive")

	// ErrUnknownAccidental indicates an unparsable accidental preference.
	ErrUnknownAccidental = errors.New("pitch: unknown accidental preference")
)

// Accidental selects sharp- or flat-oriented spellings.
type Accidental int

const (
	// Sharp spells raised notes from the letter below (C#, C+).
	Sharp Accidental = iota
	// Flat spells lowered notes from the letter above (Db, D-).
	Flat
)

// String returns "sharp" or "flat".
func (a Accidental) String() string {
	if a == Flat {
		return "flat"
	}
	return "sharp"
}

// ParseAccidental accepts "sharp", "#", "flat", "b" (case-insensitive).
// The empty string means Sharp.
func ParseAccidental(s string) (Accidental, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sharp", "sharps", "#", "s":
		return Sharp, nil
	case "flat", "flats", "b":
		return Flat, nil
	}
	return Sharp, fmt.Errorf("%w: %q", ErrUnknownAccidental, s)
}

// TuningSystem is one N-EDO system. Values are immutable once built;
// copy them freely.
type TuningSystem struct {
	// ID is the catalog key, e.g. "24tet".
	ID string

	// Name is a human-readable title.
	Name string

	// Divisions is N, the number of equal steps per octave (N ≥ 1).
	Divisions int

	// RefFreq is the frequency in Hz of step 0.
	RefFreq float64

	// RefMIDI is the MIDI number of step 0.
	RefMIDI int
}

// String returns the system id.
func (s TuningSystem) String() string { return s.ID }
