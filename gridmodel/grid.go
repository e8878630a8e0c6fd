package gridmodel

import "github.com/katalvlaran/gridpath/geom"

// Grid is a flat, row-major sequence of CellState, borrowed read-only by
// every pathfinder call. It is never mutated by the core once built.
type Grid struct {
	Width, Height int
	Cells         []CellState
}

// NewGrid builds a Grid from a flat row-major slice of cell codes.
// Returns ErrInvalidDimensions if width or height is non-positive,
// ErrGridLengthMismatch if len(cells) != width*height, and
// ErrInvalidCellState if any value lies outside the CellState domain.
// The input slice is copied; the caller's slice may be freely reused.
func NewGrid(cells []CellState, width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(cells) != width*height {
		return nil, ErrGridLengthMismatch
	}
	for _, c := range cells {
		if !c.Valid() {
			return nil, ErrInvalidCellState
		}
	}
	cp := make([]CellState, len(cells))
	copy(cp, cells)

	return &Grid{Width: width, Height: height, Cells: cp}, nil
}

// Index maps (x,y) to its row-major slice index: y*Width + x.
func (g *Grid) Index(p geom.Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate maps a row-major slice index back to (x,y).
func (g *Grid) Coordinate(idx int) geom.Point {
	return geom.Point{X: idx % g.Width, Y: idx / g.Width}
}

// InBounds reports whether p lies within [0,Width) x [0,Height).
func (g *Grid) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the CellState at p. Panics if p is out of bounds; callers
// that cannot guarantee bounds should check InBounds first.
func (g *Grid) At(p geom.Point) CellState {
	return g.Cells[g.Index(p)]
}

// Walkable reports whether p is in bounds and its cell state is one of
// {Walkable, Goal, Start, Agent}.
func (g *Grid) Walkable(p geom.Point) bool {
	if !g.InBounds(p) {
		return false
	}

	return g.At(p) != Obstacle
}

// Neighbours returns the walkable neighbours of p under opts, applying
// the corner-cutting guard when opts.DiagonalOnlyWhenClear is set.
// The returned slice is ordered N, NE, E, SE, S, SW, W,
// NW (or the cardinal subset), matching the fixed tie-break order Flow
// Field direction selection relies on.
func (g *Grid) Neighbours(p geom.Point, opts MovementOptions) []geom.Point {
	offsets := fourOffsets[:]
	if opts.Conn == Eight {
		offsets = eightOffsets[:]
	}
	out := make([]geom.Point, 0, len(offsets))
	for _, d := range offsets {
		n := p.Add(d)
		if !g.Walkable(n) {
			continue
		}
		if opts.Conn == Eight && d.X != 0 && d.Y != 0 && opts.DiagonalOnlyWhenClear {
			if !g.Walkable(p.Add(geom.Point{X: d.X, Y: 0})) || !g.Walkable(p.Add(geom.Point{X: 0, Y: d.Y})) {
				continue // corner-cut: blocked orthogonal neighbour
			}
		}
		out = append(out, n)
	}

	return out
}

// MovementCost returns the edge weight of moving between adjacent cells
// from and to, using opts.CardinalCost for orthogonal steps and
// opts.DiagonalCost for diagonal steps. from and to must be
// Chebyshev-adjacent (the caller guarantees this via Neighbours).
func MovementCost(from, to geom.Point, opts MovementOptions) float64 {
	if from.X != to.X && from.Y != to.Y {
		return opts.DiagonalCost
	}

	return opts.CardinalCost
}
