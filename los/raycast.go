package los

import (
	"math"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

// checkRayCast samples the segment from→to at a fixed step size,
// rounding each sample to the nearest cell. Coarser than Bresenham/DDA
// but cheaper when a caller only needs an approximate check.
func checkRayCast(grid *gridmodel.Grid, from, to geom.Point, opts Options) Result {
	step := opts.RayCastStep
	if step <= 0 {
		step = 0.5
	}
	dist := geom.Euclidean(from, to)
	dirX := (float64(to.X) - float64(from.X)) / dist
	dirY := (float64(to.Y) - float64(from.Y)) / dist

	var traveled float64
	var lastCell geom.Point
	haveLast := false
	for traveled <= dist {
		x := float64(from.X) + dirX*traveled
		y := float64(from.Y) + dirY*traveled
		cur := geom.Point{X: int(math.Round(x)), Y: int(math.Round(y))}
		if !haveLast || !cur.Equal(lastCell) {
			isEndpoint := cur.Equal(from) || cur.Equal(to)
			if !isEndpoint || opts.CheckEndpoints {
				if !grid.Walkable(cur) {
					return Result{
						HasLOS:    false,
						Distance:  traveled,
						BlockedAt: cur,
						Blocked:   true,
					}
				}
			}
			lastCell, haveLast = cur, true
		}
		traveled += step
	}
	// Always sample the exact endpoint in case the last step overshot it.
	if !haveLast || !lastCell.Equal(to) {
		if opts.CheckEndpoints && !grid.Walkable(to) {
			return Result{HasLOS: false, Distance: dist, BlockedAt: to, Blocked: true}
		}
	}

	return Result{HasLOS: true, Distance: dist}
}
