package pathopt

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/los"
)

// removeRedundant collapses any run of points a single line-of-sight
// segment can replace. It walks the path from an anchor, greedily
// extending to the farthest still-visible point, and jumps there
// directly, dropping everything skipped in between.
//
// Applying removeRedundant a second time to its own output removes
// nothing further: every surviving consecutive pair already lacks a
// visible intermediate, or the anchor would have jumped past it.
func removeRedundant(path []geom.Point, grid *gridmodel.Grid, config Config) ([]geom.Point, int) {
	if len(path) < 3 {
		return path, 0
	}

	out := make([]geom.Point, 0, len(path))
	out = append(out, path[0])

	anchor := 0
	for anchor < len(path)-1 {
		next := anchor + 1
		for candidate := len(path) - 1; candidate > anchor+1; candidate-- {
			if los.Check(grid, path[anchor], path[candidate], config.LOS).HasLOS {
				next = candidate
				break
			}
		}
		out = append(out, path[next])
		anchor = next
	}

	return out, len(path) - len(out)
}
