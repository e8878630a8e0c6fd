package thetastar

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/los"
	"github.com/katalvlaran/gridpath/pathstats"
	"github.com/katalvlaran/gridpath/rescache"
)

// Config configures a FindPath call. Construct with DefaultConfig and
// override fields directly.
type Config struct {
	Movement gridmodel.MovementOptions
	// LOS configures the line-of-sight check used by parent update.
	// CheckEndpoints is forced true regardless of the supplied value,
	// since an endpoint obstacle must block a shortcut.
	LOS los.Options
	// UseTieBreaking prefers the deeper (larger g) node on an f tie.
	UseTieBreaking bool
	// MaxIterations caps the search; exceeding it is a failure.
	MaxIterations int
	// ValidateInput runs validate.Grid before searching.
	ValidateInput bool
	// CheckConnectivity additionally runs the BFS connectivity check
	// inside validation.
	CheckConnectivity bool
	// EnableCaching consults/populates a shared rescache.Cache.
	EnableCaching bool
	// Cache is the shared result cache; required when EnableCaching is
	// true.
	Cache *rescache.Cache
	// RetainExploredSet keeps the set of expanded cells in Result.
	RetainExploredSet bool
}

// DefaultConfig returns 8-connected movement with corner-cutting
// disallowed, tie-breaking enabled, Bresenham line of sight, 100000 max
// iterations, validation on, caching off.
func DefaultConfig() Config {
	return Config{
		Movement:          gridmodel.DefaultMovementOptions(),
		LOS:               los.DefaultOptions(),
		UseTieBreaking:    true,
		MaxIterations:     100_000,
		ValidateInput:     true,
		CheckConnectivity: false,
		EnableCaching:     false,
	}
}

// Result is the outcome of FindPath.
type Result struct {
	Success     bool
	Path        []geom.Point
	TotalCost   float64
	Stats       pathstats.Stats
	ExploredSet []geom.Point
	Error       string
}
