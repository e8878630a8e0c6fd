package validate_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearGrid(t *testing.T, w, h int) *gridmodel.Grid {
	t.Helper()
	g, err := gridmodel.NewGrid(make([]gridmodel.CellState, w*h), w, h)
	require.NoError(t, err)

	return g
}

func TestGrid_StartBlocked(t *testing.T) {
	g := clearGrid(t, 5, 5)
	g.Cells[g.Index(geom.Point{X: 0, Y: 0})] = gridmodel.Obstacle
	res := validate.Grid(g, geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 4}, gridmodel.DefaultMovementOptions(), validate.DefaultOptions())
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, validate.MsgStartBlocked)
}

func TestGrid_GoalOutOfBounds(t *testing.T) {
	g := clearGrid(t, 5, 5)
	res := validate.Grid(g, geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}, gridmodel.DefaultMovementOptions(), validate.DefaultOptions())
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, validate.MsgGoalOutOfBounds)
}

func TestGrid_ConnectivityWalledRow(t *testing.T) {
	g := clearGrid(t, 10, 10)
	for x := 0; x < 9; x++ {
		g.Cells[g.Index(geom.Point{X: x, Y: 5})] = gridmodel.Obstacle
	}
	opts := validate.DefaultOptions()
	opts.CheckConnectivity = true
	res := validate.Grid(g, geom.Point{X: 0, Y: 0}, geom.Point{X: 9, Y: 9}, gridmodel.DefaultMovementOptions(), opts)
	assert.True(t, res.IsValid, "column x=9 remains open, start and goal must stay connected")
}

func TestGrid_ConnectivityFullyWalled(t *testing.T) {
	g := clearGrid(t, 10, 10)
	for x := 0; x < 10; x++ {
		g.Cells[g.Index(geom.Point{X: x, Y: 5})] = gridmodel.Obstacle
	}
	opts := validate.DefaultOptions()
	opts.CheckConnectivity = true
	res := validate.Grid(g, geom.Point{X: 0, Y: 0}, geom.Point{X: 9, Y: 9}, gridmodel.DefaultMovementOptions(), opts)
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, validate.MsgNoPath)
}

func TestGrid_SameStartGoal(t *testing.T) {
	g := clearGrid(t, 5, 5)
	opts := validate.DefaultOptions()
	opts.CheckConnectivity = true
	res := validate.Grid(g, geom.Point{X: 2, Y: 2}, geom.Point{X: 2, Y: 2}, gridmodel.DefaultMovementOptions(), opts)
	assert.True(t, res.IsValid)
}

func TestGridShape_LengthMismatch(t *testing.T) {
	res := validate.GridShape(make([]gridmodel.CellState, 5), 3, 3)
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Errors, validate.MsgGridLengthMismatch)
}
