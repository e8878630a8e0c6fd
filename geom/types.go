package geom

// Point is an integer grid coordinate. Origin (0,0) is top-left; x grows
// right, y grows down.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Equal reports whether p and q denote the same cell.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Vec2 is a real-valued 2D vector, used for Theta* any-angle segments and
// Flow Field direction vectors.
type Vec2 struct {
	X, Y float64
}

// EqualTol reports whether v and w are equal within the given tolerance
// on each component, for comparing real-valued results across runs.
func (v Vec2) EqualTol(w Vec2, tolerance float64) bool {
	return absf(v.X-w.X) <= tolerance && absf(v.Y-w.Y) <= tolerance
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
