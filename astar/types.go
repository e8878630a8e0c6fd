package astar

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/pathstats"
	"github.com/katalvlaran/gridpath/rescache"
)

// Config configures a FindPath call. Construct with DefaultConfig and
// override fields directly, mirroring dijkstra.Options/DefaultOptions.
type Config struct {
	Movement gridmodel.MovementOptions
	// UseTieBreaking prefers the deeper (larger g) node on an f tie.
	UseTieBreaking bool
	// MaxIterations caps the search; exceeding it is a failure.
	MaxIterations int
	// ValidateInput runs validate.Grid before searching.
	ValidateInput bool
	// CheckConnectivity additionally runs the BFS connectivity check
	// inside validation (expensive; off by default).
	CheckConnectivity bool
	// EnableCaching consults/populates a shared rescache.Cache.
	EnableCaching bool
	// Cache is the shared result cache; required when EnableCaching is
	// true. Typically owned by the caller's long-lived pathfinder
	// instance so repeated queries reuse it.
	Cache *rescache.Cache
	// RetainExploredSet keeps the set of expanded cells in Result.
	// Off by default: most callers only need the path.
	RetainExploredSet bool
}

// DefaultConfig returns the default A* configuration: 8-connected
// movement with corner-cutting disallowed, tie-breaking enabled,
// 100000 max iterations, validation on, caching off.
func DefaultConfig() Config {
	return Config{
		Movement:          gridmodel.DefaultMovementOptions(),
		UseTieBreaking:    true,
		MaxIterations:     100_000,
		ValidateInput:     true,
		CheckConnectivity: false,
		EnableCaching:     false,
	}
}

// Result is the outcome of FindPath.
type Result struct {
	Success       bool
	Path          []geom.Point
	TotalCost     float64
	Stats         pathstats.Stats
	ExploredSet   []geom.Point
	Error         string
}
