package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEuclidean(t *testing.T) {
	got := geom.Euclidean(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 4})
	require.InDelta(t, 5.0, got, 1e-9)
}

func TestManhattan(t *testing.T) {
	got := geom.Manhattan(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: -4})
	assert.Equal(t, 7.0, got)
}

func TestChebyshev(t *testing.T) {
	assert.Equal(t, 3, geom.Chebyshev(geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 2}))
	assert.Equal(t, 1, geom.Chebyshev(geom.Point{X: 5, Y: 5}, geom.Point{X: 6, Y: 6}))
}

func TestOctileMatchesDiagonalCost(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 4, Y: 1}
	require.InDelta(t, geom.Octile(a, b), geom.DiagonalCost(a, b), 1e-9)
}

func TestDiagonalCostTriangle(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 2, Y: 2}
	got := geom.DiagonalCost(a, b)
	require.InDelta(t, 2*math.Sqrt2, got, 1e-9)
}

func TestVec2EqualTol(t *testing.T) {
	v := geom.Vec2{X: 1.0001, Y: 2.0}
	w := geom.Vec2{X: 1.0, Y: 2.0}
	assert.True(t, v.EqualTol(w, 1e-3))
	assert.False(t, v.EqualTol(w, 1e-6))
}

func TestPointAddSub(t *testing.T) {
	p := geom.Point{X: 2, Y: 3}
	q := geom.Point{X: 1, Y: 1}
	assert.Equal(t, geom.Point{X: 3, Y: 4}, p.Add(q))
	assert.Equal(t, geom.Point{X: 1, Y: 2}, p.Sub(q))
	assert.True(t, p.Equal(geom.Point{X: 2, Y: 3}))
}
