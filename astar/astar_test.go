package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/rescache"
)

func openGrid(w, h int) *gridmodel.Grid {
	cells := make([]gridmodel.CellState, w*h)
	g, err := gridmodel.NewGrid(cells, w, h)
	if err != nil {
		panic(err)
	}

	return g
}

func TestFindPath_SameStartGoal(t *testing.T) {
	g := openGrid(5, 5)
	res := astar.FindPath(geom.Point{X: 2, Y: 2}, geom.Point{X: 2, Y: 2}, g, astar.DefaultConfig())
	require.True(t, res.Success)
	assert.Equal(t, []geom.Point{{X: 2, Y: 2}}, res.Path)
	assert.Equal(t, 0.0, res.TotalCost)
}

func TestFindPath_OpenGridEndpointsMatch(t *testing.T) {
	g := openGrid(10, 10)
	start, goal := geom.Point{X: 0, Y: 0}, geom.Point{X: 9, Y: 9}
	res := astar.FindPath(start, goal, g, astar.DefaultConfig())
	require.True(t, res.Success)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, goal, res.Path[len(res.Path)-1])
}

func TestFindPath_PathIsContiguous(t *testing.T) {
	g := openGrid(8, 8)
	res := astar.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 7, Y: 6}, g, astar.DefaultConfig())
	require.True(t, res.Success)
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
		assert.LessOrEqual(t, dx, 1)
		assert.LessOrEqual(t, dy, 1)
		assert.True(t, dx != 0 || dy != 0)
	}
}

func TestFindPath_AdmissibleHeuristicFindsOptimalCost(t *testing.T) {
	g := openGrid(5, 1)
	cfg := astar.DefaultConfig()
	res := astar.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 0}, g, cfg)
	require.True(t, res.Success)
	assert.Equal(t, 4.0, res.TotalCost)
}

func TestFindPath_BlockedStartFails(t *testing.T) {
	cells := make([]gridmodel.CellState, 9)
	cells[0] = gridmodel.Obstacle
	g, err := gridmodel.NewGrid(cells, 3, 3)
	require.NoError(t, err)
	res := astar.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 2}, g, astar.DefaultConfig())
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Error)
}

func TestFindPath_NoPathWhenWalledOff(t *testing.T) {
	w, h := 5, 5
	cells := make([]gridmodel.CellState, w*h)
	for x := 0; x < w; x++ {
		cells[2*w+x] = gridmodel.Obstacle
	}
	g, err := gridmodel.NewGrid(cells, w, h)
	require.NoError(t, err)
	cfg := astar.DefaultConfig()
	cfg.Movement.Conn = gridmodel.Four
	res := astar.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 4}, g, cfg)
	assert.False(t, res.Success)
}

func TestFindPath_MaxIterationsExceeded(t *testing.T) {
	g := openGrid(50, 50)
	cfg := astar.DefaultConfig()
	cfg.MaxIterations = 1
	res := astar.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 49, Y: 49}, g, cfg)
	assert.False(t, res.Success)
	assert.Equal(t, astar.ErrMaxIterationsExceeded, res.Error)
}

func TestFindPath_BadMaxIterationsPanics(t *testing.T) {
	g := openGrid(3, 3)
	cfg := astar.DefaultConfig()
	cfg.MaxIterations = 0
	assert.Panics(t, func() {
		astar.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1}, g, cfg)
	})
}

func TestFindPath_NilGridFails(t *testing.T) {
	res := astar.FindPath(geom.Point{}, geom.Point{X: 1, Y: 1}, nil, astar.DefaultConfig())
	assert.False(t, res.Success)
	assert.Equal(t, astar.ErrNilGrid.Error(), res.Error)
}

func TestFindPath_CacheHitReturnsEquivalentPath(t *testing.T) {
	g := openGrid(10, 10)
	cfg := astar.DefaultConfig()
	cfg.EnableCaching = true
	cfg.Cache = rescache.New(rescache.DefaultCapacity)

	start, goal := geom.Point{X: 0, Y: 0}, geom.Point{X: 9, Y: 0}
	first := astar.FindPath(start, goal, g, cfg)
	require.True(t, first.Success)
	hits, misses := cfg.Cache.HitMiss()
	assert.Equal(t, 0, hits)
	assert.Equal(t, 1, misses)

	second := astar.FindPath(start, goal, g, cfg)
	require.True(t, second.Success)
	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, first.TotalCost, second.TotalCost)
	hits, misses = cfg.Cache.HitMiss()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestFindPath_RetainExploredSet(t *testing.T) {
	g := openGrid(5, 5)
	cfg := astar.DefaultConfig()
	cfg.RetainExploredSet = true
	res := astar.FindPath(geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 4}, g, cfg)
	require.True(t, res.Success)
	assert.NotEmpty(t, res.ExploredSet)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
