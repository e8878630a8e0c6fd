package gridmodel

import "github.com/katalvlaran/gridpath/geom"

// CellState tags the semantic role of a grid cell. GOAL/AGENT/START are
// markers layered on top of walkable terrain; they never block movement.
type CellState int

const (
	// Walkable is open terrain with no semantic marker.
	Walkable CellState = iota
	// Obstacle blocks movement; never matches the walkability predicate.
	Obstacle
	// Goal marks a cell as a search target; walkable.
	Goal
	// Agent marks a cell as currently occupied by an agent; walkable.
	Agent
	// Start marks a cell as a search origin; walkable.
	Start
)

// Valid reports whether s is one of the declared CellState values.
func (s CellState) Valid() bool {
	return s >= Walkable && s <= Start
}

// Connectivity selects the neighbour model: four cardinal directions or
// eight including diagonals.
type Connectivity int

const (
	// Four restricts movement to N, E, S, W.
	Four Connectivity = iota
	// Eight allows the four diagonal directions in addition to cardinal.
	Eight
)

// MovementOptions configures neighbour enumeration and edge cost for
// every pathfinder.
type MovementOptions struct {
	// Conn selects Four or Eight connectivity.
	Conn Connectivity
	// DiagonalOnlyWhenClear forbids a diagonal move when either adjacent
	// orthogonal cell is non-walkable (corner-cutting guard).
	DiagonalOnlyWhenClear bool
	// CardinalCost is the edge weight of an orthogonal step. Default 1.
	CardinalCost float64
	// DiagonalCost is the edge weight of a diagonal step. Default sqrt(2).
	DiagonalCost float64
}

// DefaultMovementOptions returns the default movement model:
// 8-connectivity, corner-cutting disallowed, cardinalCost=1,
// diagonalCost=sqrt(2).
func DefaultMovementOptions() MovementOptions {
	return MovementOptions{
		Conn:                  Eight,
		DiagonalOnlyWhenClear: true,
		CardinalCost:          1,
		DiagonalCost:          geom.SqrtTwo,
	}
}

// eightOffsets lists the 8-neighbourhood in a fixed order (N, NE, E, SE,
// S, SW, W, NW); ties in Flow Field direction selection break by this
// order.
var eightOffsets = [8]geom.Point{
	{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1},
	{X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0}, {X: -1, Y: -1},
}

// fourOffsets lists the 4-neighbourhood in a fixed order (N, E, S, W).
var fourOffsets = [4]geom.Point{
	{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0},
}
