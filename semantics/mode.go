package semantics

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode indicates an unparsable display mode name.
var ErrUnknownMode = errors.New("semantics: unknown display mode")

// Mode selects what a cell label shows.
type Mode int

const (
	// NoteName shows the spelled note ("C#", "Db-", "[5]").
	NoteName Mode = iota
	// Degree shows the 1-based position in the active scale.
	Degree
	// Interval shows the interval above the root ("1", "b3", "5").
	Interval
	// Step shows the number of steps above the root.
	Step
	// FretNumber shows the fret in the configured label style.
	FretNumber
)

var modeNames = [...]string{"note", "degree", "interval", "step", "fret"}

// Modes lists every display mode in declaration order.
func Modes() []Mode {
	return []Mode{NoteName, Degree, Interval, Step, FretNumber}
}

// String returns the short mode name used in configs and flags.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode accepts the names returned by String, case-insensitive.
// "name" and "notes" are accepted for NoteName.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "name", "notes":
		return NoteName, nil
	}
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return NoteName, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}
