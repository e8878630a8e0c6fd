package hpastar

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

// clusterGrid extracts c's cells into a standalone grid with its own
// (0,0) origin, so astar.FindPath can be bounded to one cluster without
// needing a windowed view over gridmodel.Grid. toLocal/toWorld translate
// between world and cluster-local coordinates.
func clusterGrid(grid *gridmodel.Grid, c cluster) (*gridmodel.Grid, error) {
	w := c.MaxX - c.MinX
	h := c.MaxY - c.MinY
	cells := make([]gridmodel.CellState, 0, w*h)
	for y := c.MinY; y < c.MaxY; y++ {
		for x := c.MinX; x < c.MaxX; x++ {
			cells = append(cells, grid.At(geom.Point{X: x, Y: y}))
		}
	}

	return gridmodel.NewGrid(cells, w, h)
}

func toLocal(c cluster, p geom.Point) geom.Point {
	return geom.Point{X: p.X - c.MinX, Y: p.Y - c.MinY}
}

func toWorld(c cluster, p geom.Point) geom.Point {
	return geom.Point{X: p.X + c.MinX, Y: p.Y + c.MinY}
}
