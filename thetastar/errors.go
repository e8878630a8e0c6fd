package thetastar

import "errors"

// Sentinel errors for Theta* configuration.
var (
	// ErrNilGrid indicates a nil grid was passed to FindPath.
	ErrNilGrid = errors.New("thetastar: grid is nil")
	// ErrBadMaxIterations indicates MaxIterations <= 0.
	ErrBadMaxIterations = errors.New("thetastar: MaxIterations must be positive")
)

// ErrMaxIterationsExceeded is the stable Result.Error wording for
// resource exhaustion once the search exceeds its iteration budget.
const ErrMaxIterationsExceeded = "max iterations exceeded"
