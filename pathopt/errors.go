package pathopt

import "errors"

// Sentinel errors for Optimize configuration.
var (
	// ErrNilGrid indicates a nil grid was passed to Optimize.
	ErrNilGrid = errors.New("pathopt: grid is nil")
	// ErrBadSmoothingFactor indicates SmoothingFactor is outside (0, 1).
	ErrBadSmoothingFactor = errors.New("pathopt: SmoothingFactor must be in (0, 1)")
)
