package orbit

import "errors"

// Domain errors for model construction.
var (
	// ErrParameterBounds indicates a coefficient or initial population
	// outside the valid (positive) range.
	ErrParameterBounds = errors.New("orbit: parameter out of valid bounds")
)
