package pathopt

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

// Optimize post-processes path in two phases — redundancy removal then
// smoothing, each individually toggleable via config — and reports how
// much the path shrank and moved. path is never mutated; Optimize
// always returns a fresh slice.
func Optimize(path []geom.Point, grid *gridmodel.Grid, config Config) *Result {
	if grid == nil {
		return &Result{Error: ErrNilGrid.Error()}
	}
	if config.UsePathSmoothing && (config.SmoothingFactor <= 0 || config.SmoothingFactor >= 1) {
		return &Result{Error: ErrBadSmoothingFactor.Error()}
	}

	originalLength := len(path)
	out := make([]geom.Point, len(path))
	copy(out, path)

	removed := 0
	if config.UseRedundancyRemoval {
		out, removed = removeRedundant(out, grid, config)
	}

	iterations, moved := 0, 0
	if config.UsePathSmoothing {
		out, iterations, moved = smooth(out, grid, config)
	}

	if config.PreserveEndpoints && originalLength > 0 {
		out[0] = path[0]
		out[len(out)-1] = path[originalLength-1]
	}

	return &Result{
		Path:          out,
		PointsRemoved: removed,
		Stats: Stats{
			OriginalLength:          originalLength,
			OptimizedLength:         len(out),
			Reduction:               originalLength - len(out),
			PointsRemoved:           removed,
			SmoothingIterationsUsed: iterations,
			PointsMoved:             moved,
		},
	}
}
