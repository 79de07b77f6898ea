package board

import (
	"fmt"

	"github.com/katalvlaran/edofret/geometry"
)

// Instrument describes the open strings of a fretted instrument.
type Instrument struct {
	// ID is the catalog key, e.g. "banjo5".
	ID string `yaml:"id" json:"id"`

	// Name is a display title.
	Name string `yaml:"name" json:"name"`

	// OpenMIDI holds the MIDI note each string sounds when played open at
	// its start fret. Index 0 is the string drawn at the bottom.
	OpenMIDI []int `yaml:"openMidi" json:"openMidi"`

	// Strings is per-string metadata, e.g. a drone string that starts later.
	Strings []geometry.RawStringMeta `yaml:"strings,omitempty" json:"strings,omitempty"`
}

func intp(v int) *int { return &v }

var instruments = []Instrument{
	{ID: "guitar", Name: "Guitar (EADGBE)", OpenMIDI: []int{40, 45, 50, 55, 59, 64}},
	{ID: "guitar-dropd", Name: "Guitar (Drop D)", OpenMIDI: []int{38, 45, 50, 55, 59, 64}},
	{ID: "bass", Name: "Bass (EADG)", OpenMIDI: []int{28, 33, 38, 43}},
	{ID: "ukulele", Name: "Ukulele (gCEA)", OpenMIDI: []int{67, 60, 64, 69}},
	{
		ID:       "banjo5",
		Name:     "5-string Banjo (gDGBD)",
		OpenMIDI: []int{67, 50, 55, 59, 62},
		Strings:  []geometry.RawStringMeta{{Index: intp(0), StartFret: intp(5)}},
	},
}

// Instruments returns a copy of the catalog in display order.
func Instruments() []Instrument {
	out := make([]Instrument, len(instruments))
	for i, in := range instruments {
		out[i] = in.clone()
	}
	return out
}

// LookupInstrument returns the catalog instrument with the given id.
func LookupInstrument(id string) (Instrument, error) {
	for _, in := range instruments {
		if in.ID == id {
			return in.clone(), nil
		}
	}
	return Instrument{}, fmt.Errorf("%w: %q", ErrUnknownInstrument, id)
}

func (in Instrument) clone() Instrument {
	out := in
	out.OpenMIDI = append([]int(nil), in.OpenMIDI...)
	if in.Strings != nil {
		out.Strings = cloneMeta(in.Strings)
	}
	return out
}

// cloneMeta deep-copies raw metadata, pointers included.
func cloneMeta(raw []geometry.RawStringMeta) []geometry.RawStringMeta {
	out := make([]geometry.RawStringMeta, len(raw))
	for i, r := range raw {
		if r.Index != nil {
			v := *r.Index
			out[i].Index = &v
		}
		if r.StartFret != nil {
			v := *r.StartFret
			out[i].StartFret = &v
		}
		if r.GreyBefore != nil {
			v := *r.GreyBefore
			out[i].GreyBefore = &v
		}
	}
	return out
}
