package validate

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

// connected reports whether goal is reachable from start by a
// breadth-first flood over grid's walkable cells under movement's
// neighbour model.
//
// Grounded on bfs.BFS's queue/visited walker shape, adapted to walk
// gridmodel.Grid.Neighbours directly instead of a *corepath.Graph — the
// connectivity check runs once per validation call and a direct grid
// walk avoids paying ToGraph's O(Width*Height*d) conversion cost on
// every query.
func connected(grid *gridmodel.Grid, start, goal geom.Point, movement gridmodel.MovementOptions) bool {
	if start.Equal(goal) {
		return true
	}

	visited := make([]bool, grid.Width*grid.Height)
	queue := make([]geom.Point, 0, grid.Width*grid.Height)
	visited[grid.Index(start)] = true
	queue = append(queue, start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range grid.Neighbours(cur, movement) {
			idx := grid.Index(n)
			if visited[idx] {
				continue
			}
			if n.Equal(goal) {
				return true
			}
			visited[idx] = true
			queue = append(queue, n)
		}
	}

	return false
}
