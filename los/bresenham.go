package los

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

// checkBresenham walks the integer grid cells the segment from→to
// enters, in the manner of gridgraph's 0-1 BFS cell walk, failing the
// moment a non-walkable cell is encountered.
func checkBresenham(grid *gridmodel.Grid, from, to geom.Point, opts Options) Result {
	x0, y0 := from.X, from.Y
	x1, y1 := to.X, to.Y

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	steps := 0
	for {
		cur := geom.Point{X: x, Y: y}
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
		if cur.Equal(to) {
			break
		}
		if opts.UseEarlyTermination && steps > 10 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		steps++
	}

	return Result{HasLOS: true, Distance: geom.Euclidean(from, to)}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
