package theory

import (
	"sort"

	"github.com/katalvlaran/edofret/internal/edomath"
)

// Scale is a scale type placed on a root in an n-step system.
// Build it with NewScale; the zero value is an empty scale.
type Scale struct {
	Type      string
	Root      int
	Divisions int
	Intervals []int
}

// NewScale resolves typ for n and roots it on root (folded into [0, n)).
// Errors are those of ScaleIntervals.
func NewScale(typ string, root, n int) (Scale, error) {
	iv, err := ScaleIntervals(typ, n)
	if err != nil {
		return Scale{}, err
	}
	return Scale{Type: typ, Root: edomath.Mod(root, n), Divisions: n, Intervals: iv}, nil
}

// Set returns {(v + root) mod n : v ∈ intervals}.
func (s Scale) Set() map[int]bool {
	set := make(map[int]bool, len(s.Intervals))
	for _, v := range s.Intervals {
		set[edomath.Mod(v+s.Root, s.Divisions)] = true
	}
	return set
}

// PCs returns the scale's pitch classes sorted ascending.
func (s Scale) PCs() []int {
	set := s.Set()
	out := make([]int, 0, len(set))
	for pc := range set {
		out = append(out, pc)
	}
	sort.Ints(out)
	return out
}

// Contains reports whether pc (any integer) belongs to the scale.
func (s Scale) Contains(pc int) bool {
	_, ok := s.DegreeForPc(pc)
	return ok
}

// DegreeForPc returns the 1-based scale degree of pc, i.e. the position of
// (pc − root + n) mod n in Intervals, and false if pc is not in the scale.
func (s Scale) DegreeForPc(pc int) (int, bool) {
	if s.Divisions < 1 {
		return 0, false
	}
	rel := edomath.Mod(pc-s.Root, s.Divisions)
	for i, v := range s.Intervals {
		if v == rel {
			return i + 1, true
		}
	}
	return 0, false
}
