package hpastar

import "github.com/katalvlaran/gridpath/gridmodel"

// clusterize partitions grid into axis-aligned clusters of side
// clusterSize. Trailing clusters at the right/bottom edge may be
// smaller; when mergeSmallClusters is set, a trailing row/column
// narrower than clusterSize/2 is folded into its preceding neighbour
// instead of kept as its own thin cluster.
func clusterize(grid *gridmodel.Grid, clusterSize int, mergeSmallClusters bool) ([]cluster, []int) {
	colBounds := splitAxis(grid.Width, clusterSize, mergeSmallClusters)
	rowBounds := splitAxis(grid.Height, clusterSize, mergeSmallClusters)

	var clusters []cluster
	id := 0
	for _, ry := range rowBounds {
		for _, cx := range colBounds {
			clusters = append(clusters, cluster{
				ID:   id,
				MinX: cx[0], MaxX: cx[1],
				MinY: ry[0], MaxY: ry[1],
			})
			id++
		}
	}

	clusterOf := make([]int, grid.Width*grid.Height)
	for i := range clusterOf {
		clusterOf[i] = -1
	}
	for _, c := range clusters {
		for y := c.MinY; y < c.MaxY; y++ {
			for x := c.MinX; x < c.MaxX; x++ {
				idx := y*grid.Width + x
				if grid.Cells[idx] != gridmodel.Obstacle {
					clusterOf[idx] = c.ID
				}
			}
		}
	}

	return clusters, clusterOf
}

// splitAxis divides [0, length) into clusterSize-wide spans, optionally
// merging an undersized trailing span (narrower than clusterSize/2)
// into its predecessor. Returns [start, end) pairs.
func splitAxis(length, clusterSize int, mergeSmall bool) [][2]int {
	var spans [][2]int
	for start := 0; start < length; start += clusterSize {
		end := start + clusterSize
		if end > length {
			end = length
		}
		spans = append(spans, [2]int{start, end})
	}

	if mergeSmall && len(spans) > 1 {
		last := spans[len(spans)-1]
		if last[1]-last[0] < clusterSize/2 {
			spans[len(spans)-2][1] = last[1]
			spans = spans[:len(spans)-1]
		}
	}

	return spans
}
