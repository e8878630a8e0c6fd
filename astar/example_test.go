package astar_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

func ExampleFindPath() {
	cells := make([]gridmodel.CellState, 5*5)
	cells[1*5+2] = gridmodel.Obstacle
	cells[2*5+2] = gridmodel.Obstacle
	cells[3*5+2] = gridmodel.Obstacle
	grid, err := gridmodel.NewGrid(cells, 5, 5)
	if err != nil {
		panic(err)
	}

	res := astar.FindPath(geom.Point{X: 0, Y: 2}, geom.Point{X: 4, Y: 2}, grid, astar.DefaultConfig())
	fmt.Println(res.Success, len(res.Path) > 0)
	// Output: true true
}
