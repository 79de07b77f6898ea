package semantics_test

import (
	"fmt"

	"github.com/katalvlaran/edofret/pitch"
	"github.com/katalvlaran/edofret/semantics"
	"github.com/katalvlaran/edofret/theory"
)

// ExampleLabel labels E in C major under each mode.
func ExampleLabel() {
	sc, _ := theory.NewScale("major", 0, 12)
	ctx := semantics.Context{System: pitch.MustLookup("12tet"), Scale: &sc}
	for _, m := range semantics.Modes() {
		fmt.Printf("%s=%s\n", m, semantics.Label(ctx, 4, 4, m))
	}

	// Output:
	// note=E
	// degree=3
	// interval=3
	// step=4
	// fret=4
}
