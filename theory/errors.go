package theory

import "errors"

var (
	// ErrUnknownScale indicates a scale type that is not in the catalog.
	ErrUnknownScale = errors.New("theory: unknown scale type")

	// ErrScaleUnavailable indicates a scale that has neither a 12-TET
	// baseline nor an authored entry for the requested divisions.
	ErrScaleUnavailable = errors.New("theory: scale not available in this temperament")

	// ErrBadDivisions indicates a division count below 1.
	ErrBadDivisions = errors.New("theory: divisions must be at least 1")
)
