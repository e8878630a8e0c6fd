package flowfield

import "errors"

// Sentinel errors for Flow Field configuration.
var (
	// ErrNilGrid indicates a nil grid was passed to Generate.
	ErrNilGrid = errors.New("flowfield: grid is nil")
	// ErrNoGoals indicates an empty goal slice was passed to Generate.
	ErrNoGoals = errors.New("flowfield: at least one goal is required")
	// ErrBadMaxIterations indicates MaxIterations <= 0.
	ErrBadMaxIterations = errors.New("flowfield: MaxIterations must be positive")
	// ErrFieldDimensionMismatch indicates two fields passed to Compose
	// have different Width/Height.
	ErrFieldDimensionMismatch = errors.New("flowfield: fields have mismatched dimensions")
	// ErrNoFields indicates an empty field slice was passed to Compose.
	ErrNoFields = errors.New("flowfield: at least one field is required")
)
