package pitch

import (
	"strconv"

	"gitlab.com/gomidi/midi/v2"
)

// MIDIName returns the 12-TET note name with octave for a MIDI number,
// spelled by gomidi with flats ("Db"). Octaves follow the package
// convention MIDI 60 = C4, one below gomidi's own numbering.
// Numbers outside [0, 127] yield "".
func MIDIName(m int) string {
	if m < 0 || m > 127 {
		return ""
	}
	n := midi.Note(uint8(m))
	return n.Name() + strconv.Itoa(int(n.Octave())-1)
}

// MIDINames returns MIDIName for each number, e.g. an instrument's open
// strings.
func MIDINames(ms []int) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = MIDIName(m)
	}
	return out
}
