package los

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

// Check evaluates line of sight between from and to on grid using opts.
// It dispatches to Bresenham, DDA, or RayCast per opts.Algorithm; all
// three honour the shared contract.
func Check(grid *gridmodel.Grid, from, to geom.Point, opts Options) Result {
	if from.Equal(to) {
		return Result{HasLOS: true, Distance: 0}
	}
	dist := geom.Euclidean(from, to)
	if opts.MaxDistance > 0 && dist > opts.MaxDistance {
		return Result{HasLOS: false, Distance: opts.MaxDistance}
	}

	switch opts.Algorithm {
	case DDA:
		return checkDDA(grid, from, to, opts)
	case RayCast:
		return checkRayCast(grid, from, to, opts)
	default:
		return checkBresenham(grid, from, to, opts)
	}
}
