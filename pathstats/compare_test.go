package pathstats_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/pathstats"
	"github.com/stretchr/testify/assert"
)

func TestComparePaths_Identical(t *testing.T) {
	p := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}
	cmp := pathstats.ComparePaths(p, p, 2.83, 2.83, 0)
	assert.Equal(t, 1.0, cmp.Similarity)
	assert.Zero(t, cmp.LengthDifference)
	assert.Zero(t, cmp.CostDifference)
}

func TestComparePaths_Different(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 2}}
	b := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 2}}
	cmp := pathstats.ComparePaths(a, b, 2.83, 3.0, 0)
	assert.Less(t, cmp.Similarity, 1.0)
	assert.Equal(t, -1, cmp.LengthDifference)
}

func TestCompareFlowFields_IdenticalVectors(t *testing.T) {
	a := []geom.Vec2{{X: 1, Y: 0}, {X: 0, Y: 1}}
	cmp := pathstats.CompareFlowFields(a, a, 1e-6, 1e-6)
	assert.Zero(t, cmp.DifferencesCount)
	assert.InDelta(t, 1.0, cmp.MeanCosineSimilarity, 1e-9)
}

func TestCompareFlowFields_DirectionMismatch(t *testing.T) {
	a := []geom.Vec2{{X: 1, Y: 0}}
	b := []geom.Vec2{{X: 0, Y: 1}}
	cmp := pathstats.CompareFlowFields(a, b, 1e-6, math.Pi/4)
	assert.Equal(t, 1, cmp.DifferencesCount)
}

func TestCombineHPA_Average(t *testing.T) {
	cmp := pathstats.CombineHPA(1, 1, 1, 1)
	assert.Equal(t, 1.0, cmp.OverallSimilarity)
	cmp = pathstats.CombineHPA(1, 0, 1, 0)
	assert.InDelta(t, 0.5, cmp.OverallSimilarity, 1e-9)
}

func TestStatsReset(t *testing.T) {
	s := &pathstats.Stats{Iterations: 5, Success: true}
	s.Reset()
	assert.Zero(t, s.Iterations)
	assert.False(t, s.Success)
}
