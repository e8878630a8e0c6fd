// Package testmaze generates deterministic randomized obstacle grids
// for benchmarks and tests across the pathfinder packages. It is the
// one place that owns an rngutil.LCG instead of math/rand, matching
// the module-wide ban on a global PRNG.
package testmaze

import (
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/internal/rngutil"
)

// Generate returns a width*height row-major CellState slice with
// approximately obstacleRatio of its cells set to Obstacle, seeded
// deterministically from seed. The top-left and bottom-right corners
// are always left walkable so callers can path-find corner to corner
// without special-casing a blocked endpoint.
func Generate(width, height int, obstacleRatio float64, seed int64) []gridmodel.CellState {
	cells := make([]gridmodel.CellState, width*height)
	rng := rngutil.NewLCG(seed)
	for i := range cells {
		if rng.Float64() < obstacleRatio {
			cells[i] = gridmodel.Obstacle
		}
	}

	cells[0] = gridmodel.Walkable
	cells[len(cells)-1] = gridmodel.Walkable

	return cells
}

// NewGrid builds a *gridmodel.Grid directly from Generate's output.
func NewGrid(width, height int, obstacleRatio float64, seed int64) (*gridmodel.Grid, error) {
	return gridmodel.NewGrid(Generate(width, height, obstacleRatio, seed), width, height)
}
