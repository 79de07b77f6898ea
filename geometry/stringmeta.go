package geometry

import "github.com/katalvlaran/edofret/internal/edomath"

// NormalizeStringMeta turns partial metadata into exactly one StringMeta
// per string, in index order.
//
// Rules:
//   - entries with a missing or out-of-range Index are ignored;
//   - a later entry for the same index overrides an earlier one;
//   - StartFret defaults to 0 and is clamped to [0, frets];
//   - GreyBefore defaults to true;
//   - strings without an entry get {StartFret: 0, GreyBefore: true}.
//
// strings < 1 yields nil; frets < 0 is treated as 0.
func NormalizeStringMeta(raw []RawStringMeta, strings, frets int) []StringMeta {
	if strings < 1 {
		return nil
	}
	if frets < 0 {
		frets = 0
	}
	out := make([]StringMeta, strings)
	for i := range out {
		out[i] = StringMeta{Index: i, GreyBefore: true}
	}
	for _, r := range raw {
		if r.Index == nil || *r.Index < 0 || *r.Index >= strings {
			continue
		}
		m := StringMeta{Index: *r.Index, GreyBefore: true}
		if r.StartFret != nil {
			m.StartFret = edomath.Clamp(*r.StartFret, 0, frets)
		}
		if r.GreyBefore != nil {
			m.GreyBefore = *r.GreyBefore
		}
		out[m.Index] = m
	}
	return out
}

// Raw converts a normalised StringMeta back to its raw form.
func (m StringMeta) Raw() RawStringMeta {
	idx, start, grey := m.Index, m.StartFret, m.GreyBefore
	return RawStringMeta{Index: &idx, StartFret: &start, GreyBefore: &grey}
}
