package pitch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Reference pitch shared by the catalog: middle C, so pitch class 0 is C.
const (
	// MiddleCFreq is C4 in 12-TET with A4 = 440 Hz.
	MiddleCFreq = 261.6255653005986

	// MiddleCMIDI is the MIDI number of C4.
	MiddleCMIDI = 60
)

// NewTuningSystem validates and builds a TuningSystem outside the catalog.
//
// Errors:
//   - ErrBadDivisions — n < 1.
//   - ErrBadReference — refFreq is NaN, ±Inf or ≤ 0.
func NewTuningSystem(id, name string, n int, refFreq float64, refMIDI int) (TuningSystem, error) {
	if n < 1 {
		return TuningSystem{}, fmt.Errorf("%w: got %d", ErrBadDivisions, n)
	}
	if math.IsNaN(refFreq) || math.IsInf(refFreq, 0) || refFreq <= 0 {
		return TuningSystem{}, ErrBadReference
	}
	return TuningSystem{ID: id, Name: name, Divisions: n, RefFreq: refFreq, RefMIDI: refMIDI}, nil
}

// catalog lists every built-in system in display order.
var catalog = []TuningSystem{
	edo("12tet", "12-TET (standard)", 12),
	edo("19tet", "19-TET", 19),
	edo("22tet", "22-TET", 22),
	edo("24tet", "24-TET (quarter tones)", 24),
	edo("31tet", "31-TET", 31),
	edo("36tet", "36-TET (sixth tones)", 36),
}

var catalogByID = func() map[string]TuningSystem {
	m := make(map[string]TuningSystem, len(catalog))
	for _, s := range catalog {
		m[s.ID] = s
	}
	return m
}()

func edo(id, name string, n int) TuningSystem {
	return TuningSystem{ID: id, Name: name, Divisions: n, RefFreq: MiddleCFreq, RefMIDI: MiddleCMIDI}
}

// Systems returns a copy of the catalog in display order.
func Systems() []TuningSystem {
	out := make([]TuningSystem, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog system with the given id.
func Lookup(id string) (TuningSystem, error) {
	s, ok := catalogByID[id]
	if !ok {
		return TuningSystem{}, fmt.Errorf("%w: %q", ErrUnknownSystem, id)
	}
	return s, nil
}

// MustLookup is Lookup for ids known at compile time; it panics on a miss.
func MustLookup(id string) TuningSystem {
	s, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return s
}

// ForDivisions returns the catalog system with N = n, or an ad-hoc system
// referenced to middle C when none is catalogued. n < 1 is an error.
func ForDivisions(n int) (TuningSystem, error) {
	for _, s := range catalog {
		if s.Divisions == n {
			return s, nil
		}
	}
	return NewTuningSystem(fmt.Sprintf("%dtet", n), fmt.Sprintf("%d-TET", n), n, MiddleCFreq, MiddleCMIDI)
}

// Resolve is Lookup that also accepts uncatalogued ids of the form "<n>tet"
// (or "<n>edo"), built with ForDivisions.
func Resolve(id string) (TuningSystem, error) {
	if s, err := Lookup(id); err == nil {
		return s, nil
	}
	lower := strings.ToLower(strings.TrimSpace(id))
	for _, suffix := range []string{"tet", "edo"} {
		if digits, ok := strings.CutSuffix(lower, suffix); ok {
			if n, err := strconv.Atoi(digits); err == nil {
				return ForDivisions(n)
			}
		}
	}
	return TuningSystem{}, fmt.Errorf("%w: %q", ErrUnknownSystem, id)
}
