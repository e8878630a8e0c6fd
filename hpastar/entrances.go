package hpastar

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

// detectEntrances scans every border between adjacent clusters for
// maximal runs of walkable cell pairs (one cell from each cluster) and
// emits one or more entrance points per run, per config.MinEntranceWidth
// and config.MaxEntranceWidth. It also emits interior entrances when
// config.DetectInteriorEntrances finds a cluster split into more than
// one internally-connected region.
func detectEntrances(grid *gridmodel.Grid, clusters []cluster, clusterOf []int, config Config) []entrance {
	var out []entrance
	out = append(out, verticalBorderEntrances(grid, clusterOf, config)...)
	out = append(out, horizontalBorderEntrances(grid, clusterOf, config)...)

	if config.DetectInteriorEntrances {
		out = append(out, interiorEntrances(grid, clusters, clusterOf, config)...)
	}

	return out
}

type borderRun struct {
	clusterA, clusterB int
	fixed               int // the shared x (vertical border) or y (horizontal border)
	start, end          int // inclusive cell range along the border, in the orthogonal axis
}

// verticalBorderEntrances scans columns x, x+1 for horizontally-adjacent
// cells in different clusters.
func verticalBorderEntrances(grid *gridmodel.Grid, clusterOf []int, config Config) []entrance {
	var runs []borderRun
	var cur *borderRun

	for x := 0; x < grid.Width-1; x++ {
		cur = nil
		for y := 0; y < grid.Height; y++ {
			a := clusterOf[y*grid.Width+x]
			b := clusterOf[y*grid.Width+x+1]
			if a >= 0 && b >= 0 && a != b {
				if cur != nil && cur.clusterA == a && cur.clusterB == b && cur.end == y-1 {
					cur.end = y
					continue
				}
				if cur != nil {
					runs = append(runs, *cur)
				}
				cur = &borderRun{clusterA: a, clusterB: b, fixed: x, start: y, end: y}

				continue
			}
			if cur != nil {
				runs = append(runs, *cur)
				cur = nil
			}
		}
		if cur != nil {
			runs = append(runs, *cur)
		}
	}

	var out []entrance
	for _, r := range runs {
		for _, y := range entrancePositions(r.start, r.end, config) {
			out = append(out, entrance{
				Pos:      geom.Point{X: r.fixed, Y: y},
				PosB:     geom.Point{X: r.fixed + 1, Y: y},
				ClusterA: r.clusterA,
				ClusterB: r.clusterB,
			})
		}
	}

	return out
}

// horizontalBorderEntrances scans rows y, y+1 for vertically-adjacent
// cells in different clusters.
func horizontalBorderEntrances(grid *gridmodel.Grid, clusterOf []int, config Config) []entrance {
	var runs []borderRun
	var cur *borderRun

	for y := 0; y < grid.Height-1; y++ {
		cur = nil
		for x := 0; x < grid.Width; x++ {
			a := clusterOf[y*grid.Width+x]
			b := clusterOf[(y+1)*grid.Width+x]
			if a >= 0 && b >= 0 && a != b {
				if cur != nil && cur.clusterA == a && cur.clusterB == b && cur.end == x-1 {
					cur.end = x
					continue
				}
				if cur != nil {
					runs = append(runs, *cur)
				}
				cur = &borderRun{clusterA: a, clusterB: b, fixed: y, start: x, end: x}

				continue
			}
			if cur != nil {
				runs = append(runs, *cur)
				cur = nil
			}
		}
		if cur != nil {
			runs = append(runs, *cur)
		}
	}

	var out []entrance
	for _, r := range runs {
		for _, x := range entrancePositions(r.start, r.end, config) {
			out = append(out, entrance{
				Pos:      geom.Point{X: x, Y: r.fixed},
				PosB:     geom.Point{X: x, Y: r.fixed + 1},
				ClusterA: r.clusterA,
				ClusterB: r.clusterB,
			})
		}
	}

	return out
}

// entrancePositions picks one or more positions along [start,end] for a
// border run of that length, respecting MinEntranceWidth/MaxEntranceWidth.
func entrancePositions(start, end int, config Config) []int {
	length := end - start + 1
	if length < config.MinEntranceWidth {
		return nil
	}
	maxWidth := config.MaxEntranceWidth
	if maxWidth <= 0 {
		maxWidth = length
	}
	segments := (length + maxWidth - 1) / maxWidth
	if segments < 1 {
		segments = 1
	}

	positions := make([]int, 0, segments)
	segLen := length / segments
	for i := 0; i < segments; i++ {
		segStart := start + i*segLen
		segEnd := segStart + segLen - 1
		if i == segments-1 {
			segEnd = end
		}
		positions = append(positions, (segStart+segEnd)/2)
	}

	return positions
}

// interiorEntrances flags one representative cell per internally
// disconnected region of a cluster, so the abstract graph keeps at
// least one anchor inside every reachable sub-region even when a
// cluster's walkable cells split into pieces no border run touches.
func interiorEntrances(grid *gridmodel.Grid, clusters []cluster, clusterOf []int, config Config) []entrance {
	var out []entrance

	for _, c := range clusters {
		components := clusterComponents(grid, c, clusterOf, config.Movement)
		if len(components) <= 1 {
			continue
		}
		for _, comp := range components {
			out = append(out, entrance{Pos: comp, ClusterA: c.ID, ClusterB: -1})
		}
	}

	return out
}

// clusterComponents returns one representative cell per connected
// component of c's walkable cells, restricted to c's bounds.
func clusterComponents(grid *gridmodel.Grid, c cluster, clusterOf []int, movement gridmodel.MovementOptions) []geom.Point {
	visited := make(map[int]bool)
	var reps []geom.Point

	for y := c.MinY; y < c.MaxY; y++ {
		for x := c.MinX; x < c.MaxX; x++ {
			idx := y*grid.Width + x
			if clusterOf[idx] != c.ID || visited[idx] {
				continue
			}
			reps = append(reps, geom.Point{X: x, Y: y})
			floodWithinCluster(grid, c, clusterOf, idx, movement, visited)
		}
	}

	return reps
}

func floodWithinCluster(grid *gridmodel.Grid, c cluster, clusterOf []int, startIdx int, movement gridmodel.MovementOptions, visited map[int]bool) {
	queue := []int{startIdx}
	visited[startIdx] = true
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		p := grid.Coordinate(idx)
		for _, n := range grid.Neighbours(p, movement) {
			if !c.contains(n) {
				continue
			}
			nIdx := grid.Index(n)
			if clusterOf[nIdx] != c.ID || visited[nIdx] {
				continue
			}
			visited[nIdx] = true
			queue = append(queue, nIdx)
		}
	}
}
