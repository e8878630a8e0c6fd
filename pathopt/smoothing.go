package pathopt

import (
	"math"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/los"
)

// smooth relaxes each interior point toward the midpoint of its
// neighbours: candidate = current + factor*((prev+next)/2 - current),
// rounded to the nearest grid cell. A candidate is accepted only if it
// stays walkable and, when config.PreserveLOSOnSmooth is set, keeps
// line of sight to both neighbours. Relaxation repeats until a full
// pass moves no point or config.MaxSmoothingIterations is reached.
func smooth(path []geom.Point, grid *gridmodel.Grid, config Config) ([]geom.Point, int, int) {
	if len(path) < 3 {
		return path, 0, 0
	}

	out := make([]geom.Point, len(path))
	copy(out, path)

	totalMoved := 0
	iterations := 0
	for ; iterations < config.MaxSmoothingIterations; iterations++ {
		movedThisPass := 0
		for i := 1; i < len(out)-1; i++ {
			prev, cur, next := out[i-1], out[i], out[i+1]
			mid := geom.Vec2{X: float64(prev.X+next.X) / 2, Y: float64(prev.Y+next.Y) / 2}
			candidate := geom.Point{
				X: cur.X + round(config.SmoothingFactor*(mid.X-float64(cur.X))),
				Y: cur.Y + round(config.SmoothingFactor*(mid.Y-float64(cur.Y))),
			}
			if candidate.Equal(cur) || !grid.Walkable(candidate) {
				continue
			}
			if config.PreserveLOSOnSmooth {
				if !los.Check(grid, prev, candidate, config.LOS).HasLOS {
					continue
				}
				if !los.Check(grid, candidate, next, config.LOS).HasLOS {
					continue
				}
			}

			out[i] = candidate
			movedThisPass++
		}

		totalMoved += movedThisPass
		if movedThisPass == 0 {
			iterations++
			break
		}
	}

	return out, iterations, totalMoved
}

func round(x float64) int {
	return int(math.Round(x))
}
