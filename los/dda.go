package los

import (
	"math"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

// checkDDA steps along the segment from→to in floating-point unit
// increments (digital differential analyzer), sampling the cell under
// the current position at every step.
func checkDDA(grid *gridmodel.Grid, from, to geom.Point, opts Options) Result {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		steps = 1
	}
	xInc := dx / float64(steps)
	yInc := dy / float64(steps)

	x, y := float64(from.X), float64(from.Y)
	for i := 0; i <= steps; i++ {
		cur := geom.Point{X: int(math.Round(x)), Y: int(math.Round(y))}
		isEndpoint := cur.Equal(from) || cur.Equal(to)
		if !isEndpoint || opts.CheckEndpoints {
			if !grid.Walkable(cur) {
				return Result{
					HasLOS:    false,
					Distance:  geom.Euclidean(from, cur),
					BlockedAt: cur,
					Blocked:   true,
				}
			}
		}
		x += xInc
		y += yInc
	}

	return Result{HasLOS: true, Distance: geom.Euclidean(from, to)}
}
