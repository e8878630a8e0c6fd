package hpastar

import "errors"

// Sentinel errors for HPA* configuration and index state.
var (
	// ErrNilGrid indicates a nil grid was passed to Build or FindPath.
	ErrNilGrid = errors.New("hpastar: grid is nil")
	// ErrBadClusterSize indicates ClusterSize <= 0.
	ErrBadClusterSize = errors.New("hpastar: ClusterSize must be positive")
	// ErrBadMaxIterations indicates MaxIterations <= 0.
	ErrBadMaxIterations = errors.New("hpastar: MaxIterations must be positive")
	// ErrIndexNotReady indicates a query against an UNBUILT, BUILDING,
	// or STALE index with build-on-demand disabled.
	ErrIndexNotReady = errors.New("hpastar: index is not ready and build-on-demand is disabled")
	// ErrNoGoals indicates an empty goal slice was passed to
	// FindPathToNearestGoal.
	ErrNoGoals = errors.New("hpastar: at least one goal is required")
)
