package flowfield

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

// SimulateCrowd replays FindAgentPath independently for each start
// position. When config.UseCollisionAvoidance is set, each agent's
// per-step neighbour choice is biased away from the other agents'
// current positions within config.CollisionAvoidanceRadius: simple
// uniform separation weighting, not continuous dynamics.
func SimulateCrowd(starts []geom.Point, result *Result, grid *gridmodel.Grid, config Config) [][]geom.Point {
	paths := make([][]geom.Point, len(starts))
	if !config.UseCollisionAvoidance {
		for i, s := range starts {
			p, _ := FindAgentPath(s, result, grid, config)
			paths[i] = p
		}

		return paths
	}

	positions := make([]geom.Point, len(starts))
	copy(positions, starts)
	active := make([]bool, len(starts))
	for i := range active {
		active[i] = true
		paths[i] = []geom.Point{starts[i]}
	}

	maxSteps := grid.Width * grid.Height
	for step := 0; step < maxSteps; step++ {
		anyActive := false
		for i := range starts {
			if !active[i] {
				continue
			}
			anyActive = true
			next, done := stepWithSeparation(positions[i], positions, i, result, grid, config)
			positions[i] = next
			paths[i] = append(paths[i], next)
			if done {
				active[i] = false
			}
		}
		if !anyActive {
			break
		}
	}

	return paths
}

// stepWithSeparation advances one agent by one flow-field step, biasing
// the candidate neighbour away from any other agent within
// CollisionAvoidanceRadius. done reports whether the agent has reached
// a goal cell.
func stepWithSeparation(cur geom.Point, positions []geom.Point, self int, result *Result, grid *gridmodel.Grid, config Config) (geom.Point, bool) {
	idx := result.index(cur)
	if result.IntegrationField[idx] == 0 {
		return cur, true
	}
	if !result.inBounds(cur) || !result.Valid[idx] {
		return cur, true
	}

	candidates := grid.Neighbours(cur, config.Movement)
	if len(candidates) == 0 {
		return cur, true
	}

	preferred := step(cur, result.FlowField[idx], grid, config.Movement)

	best := preferred
	bestScore := -1.0
	for _, c := range candidates {
		cost := result.IntegrationField[result.index(c)]
		if cost == Unreachable {
			continue
		}
		score := -cost // lower integration cost scores higher
		if c.Equal(preferred) {
			score += 1000 // strong preference for the flow direction
		}
		for j, p := range positions {
			if j == self {
				continue
			}
			if geom.Euclidean(c, p) < config.CollisionAvoidanceRadius {
				score -= 1
			}
		}
		if score > bestScore {
			bestScore = score
			best = c
		}
	}

	return best, false
}
