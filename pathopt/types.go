package pathopt

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/los"
)

// Config configures an Optimize call. Construct with DefaultConfig and
// override fields directly.
type Config struct {
	// LOS configures the line-of-sight check used by both phases.
	LOS los.Options
	// UseRedundancyRemoval runs the line-of-sight collapsing phase.
	UseRedundancyRemoval bool
	// PreserveEndpoints additionally pins the first and last point
	// against smoothing drift; smoothing only ever relaxes interior
	// points, so this guards against a future phase touching them.
	PreserveEndpoints bool
	// UsePathSmoothing runs the iterative Laplacian relaxation phase.
	UsePathSmoothing bool
	// SmoothingFactor is the relaxation weight, in (0, 1). Default 0.5.
	SmoothingFactor float64
	// MaxSmoothingIterations caps smoothing passes.
	MaxSmoothingIterations int
	// PreserveLOSOnSmooth additionally requires a smoothed point to keep
	// line of sight to both its neighbours, not just stay walkable.
	PreserveLOSOnSmooth bool
}

// DefaultConfig returns both phases enabled, endpoints preserved,
// Bresenham line of sight, SmoothingFactor 0.5, and 10 smoothing
// iterations.
func DefaultConfig() Config {
	return Config{
		LOS:                    los.DefaultOptions(),
		UseRedundancyRemoval:   true,
		PreserveEndpoints:      true,
		UsePathSmoothing:       true,
		SmoothingFactor:        0.5,
		MaxSmoothingIterations: 10,
		PreserveLOSOnSmooth:    false,
	}
}

// Stats reports how much an Optimize call changed its input path.
type Stats struct {
	OriginalLength          int
	OptimizedLength         int
	Reduction               int
	PointsRemoved           int
	SmoothingIterationsUsed int
	PointsMoved             int
}

// Result is the outcome of Optimize.
type Result struct {
	Path          []geom.Point
	PointsRemoved int
	Stats         Stats
	Error         string
}
