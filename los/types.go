package los

import "github.com/katalvlaran/gridpath/geom"

// Algorithm selects which line-of-sight implementation to run.
type Algorithm int

const (
	// Bresenham is the default: integer-only grid traversal visiting
	// every cell the segment enters.
	Bresenham Algorithm = iota
	// DDA is floating-point stepped traversal.
	DDA
	// RayCast is fixed-step sampling along the segment.
	RayCast
)

// Options configures a line-of-sight check.
type Options struct {
	// Algorithm selects Bresenham, DDA, or RayCast.
	Algorithm Algorithm
	// CheckEndpoints also validates the from/to cells themselves, not
	// just the cells strictly between them.
	CheckEndpoints bool
	// UseEarlyTermination makes Bresenham stop after more than 10 clear
	// steps and report HasLOS=true, for callers that only need a cheap
	// approximation; obstacles beyond that point are not inspected.
	UseEarlyTermination bool
	// MaxDistance caps the segment length; exceeding it yields
	// HasLOS=false without inspecting any cell. Zero means unbounded.
	MaxDistance float64
	// RayCastStep is the fixed sampling step for the RayCast algorithm.
	// Defaults to 0.5 grid units when zero.
	RayCastStep float64
}

// DefaultOptions returns Bresenham with endpoint checking enabled and no
// distance cap.
func DefaultOptions() Options {
	return Options{
		Algorithm:      Bresenham,
		CheckEndpoints: true,
		MaxDistance:    0,
		RayCastStep:    0.5,
	}
}

// Result is the outcome of a line-of-sight check.
type Result struct {
	// HasLOS reports whether the segment from→to is unobstructed.
	HasLOS bool
	// Distance is the Euclidean length of the segment when HasLOS is
	// true; otherwise the distance travelled before the block was found,
	// or MaxDistance when the segment exceeded it.
	Distance float64
	// BlockedAt identifies the first non-walkable cell encountered, the
	// zero value if HasLOS is true.
	BlockedAt geom.Point
	// Blocked reports whether BlockedAt is meaningful (HasLOS is false
	// because of an obstacle, not because of a MaxDistance cutoff).
	Blocked bool
}
