package hpastar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/hpastar"
)

func openGrid(w, h int) *gridmodel.Grid {
	cells := make([]gridmodel.CellState, w*h)
	g, err := gridmodel.NewGrid(cells, w, h)
	if err != nil {
		panic(err)
	}

	return g
}

func smallConfig() hpastar.Config {
	cfg := hpastar.DefaultConfig()
	cfg.ClusterSize = 4
	cfg.MaxEntranceWidth = 2

	return cfg
}

func TestBuild_NilGridFails(t *testing.T) {
	_, err := hpastar.Build(nil, hpastar.DefaultConfig())
	assert.ErrorIs(t, err, hpastar.ErrNilGrid)
}

func TestBuild_BadClusterSizeFails(t *testing.T) {
	cfg := hpastar.DefaultConfig()
	cfg.ClusterSize = 0
	_, err := hpastar.Build(openGrid(10, 10), cfg)
	assert.ErrorIs(t, err, hpastar.ErrBadClusterSize)
}

func TestBuild_IndexIsReady(t *testing.T) {
	idx, err := hpastar.Build(openGrid(20, 20), smallConfig())
	require.NoError(t, err)
	assert.Equal(t, hpastar.Ready, idx.State())
}

func TestState_NilIndexIsUnbuilt(t *testing.T) {
	var idx *hpastar.Index
	assert.Equal(t, hpastar.Unbuilt, idx.State())
}

func TestFindPath_SameClusterShortcut(t *testing.T) {
	g := openGrid(20, 20)
	idx, err := hpastar.Build(g, smallConfig())
	require.NoError(t, err)

	start, goal := geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 1}
	res := hpastar.FindPath(&idx, start, goal, g, smallConfig())
	require.True(t, res.Success)
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, goal, res.Path[len(res.Path)-1])
	assert.Empty(t, res.AbstractPath)
}

func TestFindPath_CrossClusterEndpointsMatch(t *testing.T) {
	g := openGrid(20, 20)
	idx, err := hpastar.Build(g, smallConfig())
	require.NoError(t, err)

	start, goal := geom.Point{X: 0, Y: 0}, geom.Point{X: 19, Y: 19}
	res := hpastar.FindPath(&idx, start, goal, g, smallConfig())
	require.True(t, res.Success)
	require.NotEmpty(t, res.Path)
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, goal, res.Path[len(res.Path)-1])
	assert.NotEmpty(t, res.AbstractPath)
}

func TestFindPath_PathIsContiguous(t *testing.T) {
	g := openGrid(24, 24)
	idx, err := hpastar.Build(g, smallConfig())
	require.NoError(t, err)

	res := hpastar.FindPath(&idx, geom.Point{X: 0, Y: 0}, geom.Point{X: 23, Y: 20}, g, smallConfig())
	require.True(t, res.Success)
	for i := 1; i < len(res.Path); i++ {
		assert.Equal(t, 1, geom.Chebyshev(res.Path[i-1], res.Path[i]))
	}
}

func TestFindPath_BuildOnDemandWhenUnbuilt(t *testing.T) {
	g := openGrid(16, 16)
	var idx *hpastar.Index
	res := hpastar.FindPath(&idx, geom.Point{X: 0, Y: 0}, geom.Point{X: 15, Y: 15}, g, smallConfig())
	require.True(t, res.Success)
	assert.Equal(t, hpastar.Ready, idx.State())
}

func TestFindPath_NotReadyFailsWhenBuildOnDemandDisabled(t *testing.T) {
	g := openGrid(16, 16)
	cfg := smallConfig()
	cfg.DisableBuildOnDemand = true
	var idx *hpastar.Index
	res := hpastar.FindPath(&idx, geom.Point{X: 0, Y: 0}, geom.Point{X: 15, Y: 15}, g, cfg)
	assert.False(t, res.Success)
	assert.Equal(t, hpastar.ErrIndexNotReady.Error(), res.Error)
}

func TestFindPath_BlockedStartFails(t *testing.T) {
	w, h := 16, 16
	cells := make([]gridmodel.CellState, w*h)
	cells[0] = gridmodel.Obstacle
	g, err := gridmodel.NewGrid(cells, w, h)
	require.NoError(t, err)
	cfg := smallConfig()
	cfg.ValidateInput = false
	idx, err := hpastar.Build(g, cfg)
	require.NoError(t, err)

	res := hpastar.FindPath(&idx, geom.Point{X: 0, Y: 0}, geom.Point{X: 15, Y: 15}, g, cfg)
	assert.False(t, res.Success)
}

func TestFindPath_NoPathWhenFullyWalled(t *testing.T) {
	w, h := 16, 16
	cells := make([]gridmodel.CellState, w*h)
	for x := 0; x < w; x++ {
		cells[8*w+x] = gridmodel.Obstacle
	}
	g, err := gridmodel.NewGrid(cells, w, h)
	require.NoError(t, err)
	cfg := smallConfig()
	cfg.Movement.Conn = gridmodel.Four
	cfg.ValidateInput = false
	idx, err := hpastar.Build(g, cfg)
	require.NoError(t, err)

	res := hpastar.FindPath(&idx, geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 15}, g, cfg)
	assert.False(t, res.Success)
}

func TestFindPathToNearestGoal_PicksCheapest(t *testing.T) {
	g := openGrid(20, 20)
	idx, err := hpastar.Build(g, smallConfig())
	require.NoError(t, err)

	start := geom.Point{X: 0, Y: 0}
	near := geom.Point{X: 3, Y: 0}
	far := geom.Point{X: 19, Y: 19}
	res := hpastar.FindPathToNearestGoal(&idx, start, []geom.Point{far, near}, g, smallConfig())
	require.True(t, res.Success)
	assert.Equal(t, near, res.GoalReached)
}

func TestFindPathToNearestGoal_NoGoalsFails(t *testing.T) {
	g := openGrid(10, 10)
	idx, err := hpastar.Build(g, smallConfig())
	require.NoError(t, err)
	res := hpastar.FindPathToNearestGoal(&idx, geom.Point{X: 0, Y: 0}, nil, g, smallConfig())
	assert.False(t, res.Success)
	assert.Equal(t, hpastar.ErrNoGoals.Error(), res.Error)
}

func TestFindPath_RebuildsWhenGridShapeChanges(t *testing.T) {
	cfg := smallConfig()
	idx, err := hpastar.Build(openGrid(16, 16), cfg)
	require.NoError(t, err)

	bigger := openGrid(20, 20)
	res := hpastar.FindPath(&idx, geom.Point{X: 0, Y: 0}, geom.Point{X: 19, Y: 19}, bigger, cfg)
	require.True(t, res.Success)
}

func TestFindPath_SmoothHookApplied(t *testing.T) {
	g := openGrid(20, 20)
	cfg := smallConfig()
	called := false
	cfg.Smooth = func(path []geom.Point, grid *gridmodel.Grid) []geom.Point {
		called = true

		return path
	}
	idx, err := hpastar.Build(g, cfg)
	require.NoError(t, err)

	res := hpastar.FindPath(&idx, geom.Point{X: 0, Y: 0}, geom.Point{X: 19, Y: 19}, g, cfg)
	require.True(t, res.Success)
	assert.True(t, called)
}
