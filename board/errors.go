package board

import "errors"

var (
	// ErrUnknownInstrument indicates an instrument id missing from the catalog.
	ErrUnknownInstrument = errors.New("board: unknown instrument")

	// ErrUnknownChord indicates a chord type that no temperament defines.
	ErrUnknownChord = errors.New("board: unknown chord type")

	// ErrNoStrings indicates an instrument without open strings.
	ErrNoStrings = errors.New("board: instrument has no strings")
)
