package flowfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/flowfield"
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

func openGrid(w, h int) *gridmodel.Grid {
	cells := make([]gridmodel.CellState, w*h)
	g, err := gridmodel.NewGrid(cells, w, h)
	if err != nil {
		panic(err)
	}

	return g
}

func TestGenerate_GoalCellIsZeroCost(t *testing.T) {
	g := openGrid(5, 5)
	goal := geom.Point{X: 2, Y: 2}
	res := flowfield.Generate(g, []geom.Point{goal}, flowfield.DefaultConfig())
	require.True(t, res.Success)
	assert.Equal(t, 0.0, res.IntegrationField[g.Index(goal)])
}

func TestGenerate_UnreachableCellsStayUnreachable(t *testing.T) {
	w, h := 5, 5
	cells := make([]gridmodel.CellState, w*h)
	for x := 0; x < w; x++ {
		cells[2*w+x] = gridmodel.Obstacle
	}
	g, err := gridmodel.NewGrid(cells, w, h)
	require.NoError(t, err)

	cfg := flowfield.DefaultConfig()
	cfg.Movement.Conn = gridmodel.Four
	res := flowfield.Generate(g, []geom.Point{{X: 0, Y: 0}}, cfg)
	require.True(t, res.Success)
	assert.Equal(t, flowfield.Unreachable, res.IntegrationField[g.Index(geom.Point{X: 0, Y: 4})])
}

func TestGenerate_FlowVectorPointsDownhill(t *testing.T) {
	g := openGrid(5, 1)
	goal := geom.Point{X: 4, Y: 0}
	res := flowfield.Generate(g, []geom.Point{goal}, flowfield.DefaultConfig())
	require.True(t, res.Success)

	idx := g.Index(geom.Point{X: 0, Y: 0})
	assert.True(t, res.Valid[idx])
	assert.Equal(t, geom.Vec2{X: 1, Y: 0}, res.FlowField[idx])
}

func TestGenerate_NormalizedVectorsAreUnitLength(t *testing.T) {
	g := openGrid(5, 5)
	cfg := flowfield.DefaultConfig()
	cfg.NormalizeFlowVectors = true
	res := flowfield.Generate(g, []geom.Point{{X: 4, Y: 4}}, cfg)
	require.True(t, res.Success)

	idx := g.Index(geom.Point{X: 0, Y: 0})
	require.True(t, res.Valid[idx])
	mag := res.FlowField[idx].X*res.FlowField[idx].X + res.FlowField[idx].Y*res.FlowField[idx].Y
	assert.InDelta(t, 1.0, mag, 1e-9)
}

func TestGenerate_ObstacleGoalsIgnored(t *testing.T) {
	cells := make([]gridmodel.CellState, 9)
	cells[4] = gridmodel.Obstacle
	g, err := gridmodel.NewGrid(cells, 3, 3)
	require.NoError(t, err)

	res := flowfield.Generate(g, []geom.Point{{X: 1, Y: 1}}, flowfield.DefaultConfig())
	require.True(t, res.Success)
	for _, c := range res.IntegrationField {
		assert.Equal(t, flowfield.Unreachable, c)
	}
}

func TestGenerate_NilGridFails(t *testing.T) {
	res := flowfield.Generate(nil, []geom.Point{{X: 0, Y: 0}}, flowfield.DefaultConfig())
	assert.False(t, res.Success)
	assert.Equal(t, flowfield.ErrNilGrid.Error(), res.Error)
}

func TestGenerate_NoGoalsFails(t *testing.T) {
	g := openGrid(3, 3)
	res := flowfield.Generate(g, nil, flowfield.DefaultConfig())
	assert.False(t, res.Success)
	assert.Equal(t, flowfield.ErrNoGoals.Error(), res.Error)
}

func TestGenerate_MultiGoalTakesNearestCost(t *testing.T) {
	g := openGrid(10, 1)
	res := flowfield.Generate(g, []geom.Point{{X: 0, Y: 0}, {X: 9, Y: 0}}, flowfield.DefaultConfig())
	require.True(t, res.Success)
	mid := g.Index(geom.Point{X: 4, Y: 0})
	assert.Equal(t, 4.0, res.IntegrationField[mid])
}
