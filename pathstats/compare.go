package pathstats

import (
	"math"

	"github.com/katalvlaran/gridpath/geom"
)

// PathComparison reports how two paths (or two runs over the same
// query) differ.
type PathComparison struct {
	LengthDifference int
	CostDifference   float64
	// Similarity is 1 when both paths are equal under tolerance. Unequal
	// paths with equal length, equal cost and equal endpoints also
	// score 1.
	Similarity float64
}

// ComparePaths compares path a against path b, given their reported
// total costs. Similarity is 1 when both paths are point-for-point equal
// within tolerance; otherwise it blends length agreement, cost
// agreement, and endpoint agreement.
func ComparePaths(a, b []geom.Point, costA, costB, tolerance float64) PathComparison {
	cmp := PathComparison{
		LengthDifference: len(a) - len(b),
		CostDifference:   costA - costB,
	}

	if pathsEqual(a, b, tolerance) {
		cmp.Similarity = 1
		return cmp
	}

	lenScore := agreementScore(float64(len(a)), float64(len(b)))
	costScore := agreementScore(costA, costB)
	endpointScore := 0.0
	if len(a) > 0 && len(b) > 0 && a[0].Equal(b[0]) {
		endpointScore += 0.5
	}
	if len(a) > 0 && len(b) > 0 && a[len(a)-1].Equal(b[len(b)-1]) {
		endpointScore += 0.5
	}
	cmp.Similarity = (lenScore + costScore + endpointScore) / 3

	return cmp
}

func pathsEqual(a, b []geom.Point, tolerance float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(float64(a[i].X-b[i].X)) > tolerance || math.Abs(float64(a[i].Y-b[i].Y)) > tolerance {
			return false
		}
	}

	return true
}

// agreementScore returns 1 when x and y are identical, decaying toward 0
// as their relative difference grows; both non-negative.
func agreementScore(x, y float64) float64 {
	if x == 0 && y == 0 {
		return 1
	}
	denom := math.Max(math.Abs(x), math.Abs(y))
	if denom == 0 {
		return 1
	}

	return 1 - math.Min(1, math.Abs(x-y)/denom)
}

// CellDifference describes one disagreeing cell in a flow-field
// comparison.
type CellDifference struct {
	Index  int
	Reason string
}

// FlowFieldComparison reports cell-by-cell vector agreement between two
// flow fields of identical dimensions.
type FlowFieldComparison struct {
	DifferencesCount   int
	Differences        []CellDifference
	MeanCosineSimilarity float64
}

// CompareFlowFields compares two flow fields' vectors cell by cell.
// magnitudeTolerance bounds acceptable magnitude difference;
// directionTolerance bounds acceptable angular difference in radians.
// When a and b differ in length, the common prefix is compared and
// every index beyond it is reported as a "length mismatch" difference.
func CompareFlowFields(a, b []geom.Vec2, magnitudeTolerance, directionTolerance float64) FlowFieldComparison {
	var cmp FlowFieldComparison
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var cosineSum float64
	for i := 0; i < n; i++ {
		magA := math.Hypot(a[i].X, a[i].Y)
		magB := math.Hypot(b[i].X, b[i].Y)
		cos := cosineSimilarity(a[i], b[i])
		cosineSum += cos

		if math.Abs(magA-magB) > magnitudeTolerance {
			cmp.Differences = append(cmp.Differences, CellDifference{Index: i, Reason: "magnitude"})
			cmp.DifferencesCount++

			continue
		}
		if magA > 0 && magB > 0 {
			angle := math.Acos(clamp(cos, -1, 1))
			if angle > directionTolerance {
				cmp.Differences = append(cmp.Differences, CellDifference{Index: i, Reason: "direction"})
				cmp.DifferencesCount++
			}
		}
	}
	for i := n; i < len(a) || i < len(b); i++ {
		cmp.Differences = append(cmp.Differences, CellDifference{Index: i, Reason: "length mismatch"})
		cmp.DifferencesCount++
	}
	if n > 0 {
		cmp.MeanCosineSimilarity = cosineSum / float64(n)
	}

	return cmp
}

func cosineSimilarity(a, b geom.Vec2) float64 {
	magA := math.Hypot(a.X, a.Y)
	magB := math.Hypot(b.X, b.Y)
	if magA == 0 || magB == 0 {
		if magA == 0 && magB == 0 {
			return 1
		}

		return 0
	}

	return (a.X*b.X + a.Y*b.Y) / (magA * magB)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// HPAComparison combines cluster/entrance/abstract-graph/path
// sub-similarities into one overall score.
type HPAComparison struct {
	ClusterSimilarity  float64
	EntranceSimilarity float64
	GraphSimilarity    float64
	PathSimilarity     float64
	OverallSimilarity  float64
}

// CombineHPA averages the four sub-similarities into OverallSimilarity.
func CombineHPA(cluster, entrance, graphSim, path float64) HPAComparison {
	return HPAComparison{
		ClusterSimilarity:  cluster,
		EntranceSimilarity: entrance,
		GraphSimilarity:    graphSim,
		PathSimilarity:     path,
		OverallSimilarity:  (cluster + entrance + graphSim + path) / 4,
	}
}
