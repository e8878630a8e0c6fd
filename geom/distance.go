package geom

import "math"

// SqrtTwo is the diagonal step length used by the default diagonal cost
// model: cardinal steps cost 1, diagonal steps cost sqrt(2).
const SqrtTwo = math.Sqrt2

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)

	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan returns |dx| + |dy|, the admissible heuristic for 4-connected
// grids.
func Manhattan(a, b Point) float64 {
	return float64(absInt(a.X-b.X) + absInt(a.Y-b.Y))
}

// Chebyshev returns max(|dx|, |dy|), used to verify path contiguity:
// consecutive path cells must satisfy chebyshev == 1.
func Chebyshev(a, b Point) int {
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)
	if dx > dy {
		return dx
	}

	return dy
}

// Octile returns max(dx,dy) + (sqrt(2)-1)*min(dx,dy), the admissible
// heuristic for 8-connected grids with the default diagonal cost model.
func Octile(a, b Point) float64 {
	dx, dy := float64(absInt(a.X-b.X)), float64(absInt(a.Y-b.Y))
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}

	return hi + (SqrtTwo-1)*lo
}

// DiagonalCost returns sqrt(2)*min(dx,dy) + (max(dx,dy)-min(dx,dy)), the
// exact cost of an optimal cardinal/diagonal walk between a and b under
// the default cardinalCost=1, diagonalCost=sqrt(2) movement model.
// Equivalent in value to Octile but expressed in additive form.
func DiagonalCost(a, b Point) float64 {
	dx, dy := float64(absInt(a.X-b.X)), float64(absInt(a.Y-b.Y))
	lo, hi := dx, dy
	if lo > hi {
		lo, hi = hi, lo
	}

	return SqrtTwo*lo + (hi - lo)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
