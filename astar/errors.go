package astar

import "errors"

// Sentinel errors for A* configuration. Domain/validation failures
// (blocked start, out-of-bounds goal, no path) are reported through
// Result.Error using validate's stable message vocabulary instead.
var (
	// ErrNilGrid indicates a nil grid was passed to FindPath.
	ErrNilGrid = errors.New("astar: grid is nil")
	// ErrBadMaxIterations indicates MaxIterations <= 0.
	ErrBadMaxIterations = errors.New("astar: MaxIterations must be positive")
)

// ErrMaxIterationsExceeded is the stable Result.Error wording for
// resource exhaustion once the search exceeds its iteration budget.
const ErrMaxIterationsExceeded = "max iterations exceeded"
