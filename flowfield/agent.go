package flowfield

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

// FindAgentPath walks start forward by following result's flow vector at
// each step, rounding to the nearest walkable neighbour, until reaching
// a zero-vector cell (a goal) or detecting a cycle. It returns the
// walked path and whether it reached a goal.
//
// If config.UseAStarFallback is set and the walk cannot progress (no
// improving neighbour, or a revisited cell), config.AStarFallback is
// consulted for a concrete path from start to the goal cell (cost 0)
// nearest the stalled cell; that path replaces the walked path.
func FindAgentPath(start geom.Point, result *Result, grid *gridmodel.Grid, config Config) ([]geom.Point, bool) {
	if result == nil || !result.Success || !result.inBounds(start) {
		return nil, false
	}

	path := []geom.Point{start}
	visited := map[geom.Point]bool{start: true}
	cur := start

	for {
		idx := result.index(cur)
		if result.IntegrationField[idx] == 0 {
			return path, true // reached a goal
		}
		if !result.Valid[idx] {
			return fallback(start, result, grid, config, path)
		}

		next := step(cur, result.FlowField[idx], grid, config.Movement)
		if !grid.InBounds(next) || !grid.Walkable(next) || visited[next] {
			return fallback(start, result, grid, config, path)
		}

		path = append(path, next)
		visited[next] = true
		cur = next

		if len(path) > grid.Width*grid.Height {
			return fallback(start, result, grid, config, path)
		}
	}
}

// step rounds a (possibly normalized) flow vector to the neighbour
// offset in its direction. It does not check walkability; callers do.
func step(from geom.Point, v geom.Vec2, grid *gridmodel.Grid, movement gridmodel.MovementOptions) geom.Point {
	dx, dy := roundSign(v.X), roundSign(v.Y)

	return from.Add(geom.Point{X: dx, Y: dy})
}

func roundSign(x float64) int {
	switch {
	case x > 0.25:
		return 1
	case x < -0.25:
		return -1
	default:
		return 0
	}
}

// fallback retries with config.AStarFallback when the flow-following
// walk has stalled; returns the original (failed) path when no fallback
// is configured or the fallback itself fails.
func fallback(start geom.Point, result *Result, grid *gridmodel.Grid, config Config, stalledPath []geom.Point) ([]geom.Point, bool) {
	if !config.UseAStarFallback || config.AStarFallback == nil {
		return stalledPath, false
	}

	goal := nearestGoal(result, stalledPath[len(stalledPath)-1])
	if !goal.found {
		return stalledPath, false
	}

	fallbackPath, ok := config.AStarFallback(start, goal.pos)
	if !ok {
		return stalledPath, false
	}

	return fallbackPath, true
}

type goalHit struct {
	pos   geom.Point
	found bool
}

// nearestGoal scans the integration field for a cost-0 cell, used as a
// concrete target for the A* fallback. Flow Field supports multiple
// simultaneous goals; any one of them is an acceptable fallback target.
func nearestGoal(result *Result, from geom.Point) goalHit {
	best := goalHit{}
	bestDist := -1.0
	for idx, cost := range result.IntegrationField {
		if cost != 0 {
			continue
		}
		p := geom.Point{X: idx % result.Width, Y: idx / result.Width}
		d := geom.Euclidean(from, p)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = goalHit{pos: p, found: true}
		}
	}

	return best
}
