package flowfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/flowfield"
	"github.com/katalvlaran/gridpath/geom"
)

func TestCompose_MinimumTakesLowestCost(t *testing.T) {
	g := openGrid(5, 5)
	a := flowfield.Generate(g, []geom.Point{{X: 0, Y: 0}}, flowfield.DefaultConfig())
	b := flowfield.Generate(g, []geom.Point{{X: 4, Y: 4}}, flowfield.DefaultConfig())
	require.True(t, a.Success)
	require.True(t, b.Success)

	composed, err := flowfield.Compose([]*flowfield.Result{a, b}, flowfield.Minimum, nil, g, flowfield.DefaultConfig())
	require.NoError(t, err)

	idx := g.Index(geom.Point{X: 0, Y: 0})
	assert.Equal(t, 0.0, composed.IntegrationField[idx])
}

func TestCompose_DimensionMismatchErrors(t *testing.T) {
	g5 := openGrid(5, 5)
	g3 := openGrid(3, 3)
	a := flowfield.Generate(g5, []geom.Point{{X: 0, Y: 0}}, flowfield.DefaultConfig())
	b := flowfield.Generate(g3, []geom.Point{{X: 0, Y: 0}}, flowfield.DefaultConfig())

	_, err := flowfield.Compose([]*flowfield.Result{a, b}, flowfield.Minimum, nil, g5, flowfield.DefaultConfig())
	assert.ErrorIs(t, err, flowfield.ErrFieldDimensionMismatch)
}

func TestCompose_WeightedAverage(t *testing.T) {
	g := openGrid(10, 1)
	a := flowfield.Generate(g, []geom.Point{{X: 0, Y: 0}}, flowfield.DefaultConfig())
	b := flowfield.Generate(g, []geom.Point{{X: 9, Y: 0}}, flowfield.DefaultConfig())
	require.True(t, a.Success)
	require.True(t, b.Success)

	composed, err := flowfield.Compose([]*flowfield.Result{a, b}, flowfield.WeightedAverage, []float64{1, 1}, g, flowfield.DefaultConfig())
	require.NoError(t, err)

	idx := g.Index(geom.Point{X: 4, Y: 0})
	// a.cost=4, b.cost=5 at x=4 under equal weighting → average 4.5
	assert.InDelta(t, 4.5, composed.IntegrationField[idx], 1e-9)
}
