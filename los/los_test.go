package los_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/los"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearGrid(w, h int) *gridmodel.Grid {
	g, err := gridmodel.NewGrid(make([]gridmodel.CellState, w*h), w, h)
	if err != nil {
		panic(err)
	}

	return g
}

func TestCheck_EndpointsEqual(t *testing.T) {
	g := clearGrid(5, 5)
	for _, alg := range []los.Algorithm{los.Bresenham, los.DDA, los.RayCast} {
		opts := los.DefaultOptions()
		opts.Algorithm = alg
		res := los.Check(g, geom.Point{X: 2, Y: 2}, geom.Point{X: 2, Y: 2}, opts)
		assert.True(t, res.HasLOS)
		assert.Equal(t, 0.0, res.Distance)
	}
}

func TestCheck_ClearSegmentAllAlgorithms(t *testing.T) {
	g := clearGrid(10, 10)
	from, to := geom.Point{X: 0, Y: 0}, geom.Point{X: 9, Y: 9}
	for _, alg := range []los.Algorithm{los.Bresenham, los.DDA, los.RayCast} {
		opts := los.DefaultOptions()
		opts.Algorithm = alg
		res := los.Check(g, from, to, opts)
		require.True(t, res.HasLOS, "algorithm %v", alg)
		assert.InDelta(t, geom.Euclidean(from, to), res.Distance, 1e-6)
	}
}

func TestCheck_BlockedSegment(t *testing.T) {
	g := clearGrid(5, 5)
	g.Cells[g.Index(geom.Point{X: 2, Y: 2})] = gridmodel.Obstacle
	from, to := geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 4}
	opts := los.DefaultOptions()
	res := los.Check(g, from, to, opts)
	assert.False(t, res.HasLOS)
	assert.True(t, res.Blocked)
	assert.Equal(t, geom.Point{X: 2, Y: 2}, res.BlockedAt)
}

func TestCheck_MaxDistanceExceeded(t *testing.T) {
	g := clearGrid(20, 20)
	opts := los.DefaultOptions()
	opts.MaxDistance = 2
	res := los.Check(g, geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10}, opts)
	assert.False(t, res.HasLOS)
	assert.False(t, res.Blocked)
}

func TestCheck_CheckEndpointsFalseIgnoresBlockedStart(t *testing.T) {
	g := clearGrid(5, 5)
	g.Cells[g.Index(geom.Point{X: 0, Y: 0})] = gridmodel.Obstacle
	opts := los.DefaultOptions()
	opts.CheckEndpoints = false
	res := los.Check(g, geom.Point{X: 0, Y: 0}, geom.Point{X: 4, Y: 4}, opts)
	assert.True(t, res.HasLOS)
}
