package pathopt_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/pathopt"
)

func ExampleOptimize() {
	cells := make([]gridmodel.CellState, 10*10)
	grid, _ := gridmodel.NewGrid(cells, 10, 10)

	path := []geom.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0},
	}
	res := pathopt.Optimize(path, grid, pathopt.DefaultConfig())
	fmt.Println(res.Stats.OriginalLength, res.Stats.OptimizedLength, res.PointsRemoved)
	// Output: 5 2 3
}
