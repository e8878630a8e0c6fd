package flowfield

import (
	"math"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/pathstats"
)

// Unreachable is the integration-field cost of a cell that could not be
// reached from any goal, or of an obstacle cell.
const Unreachable = math.MaxFloat64

// Config configures Generate, FindAgentPath, and SimulateCrowd.
type Config struct {
	Movement gridmodel.MovementOptions
	// MaxIterations caps the Dijkstra-style expansion; defaults to
	// Width*Height when zero, per cell-budget semantics.
	MaxIterations int
	// NormalizeFlowVectors rescales each non-zero flow vector to unit
	// length. Off by default (vectors point toward the lowest neighbour
	// with magnitude equal to the step distance).
	NormalizeFlowVectors bool
	// UseGoalBounding is accepted but has no effect and is not checked:
	// a bounding-box pruning pass is not implemented.
	UseGoalBounding bool
	// UseAStarFallback makes FindAgentPath retry with astar.FindPath
	// when the flow-following walk cannot progress (cycle or dead end).
	// The caller supplies the fallback via AStarFallback since flowfield
	// does not import astar directly.
	UseAStarFallback bool
	// AStarFallback is consulted when UseAStarFallback is set; it should
	// return a concrete path from start to goal, or (nil, false).
	AStarFallback func(start, goal geom.Point) ([]geom.Point, bool)
	// UseCollisionAvoidance biases each agent's step away from other
	// agents within CollisionAvoidanceRadius during SimulateCrowd.
	UseCollisionAvoidance bool
	// CollisionAvoidanceRadius is the separation radius used when
	// UseCollisionAvoidance is set.
	CollisionAvoidanceRadius float64
	// ValidateInput runs validate.GridShape-equivalent checks on grid
	// shape before generating; start/goal placement checks do not apply
	// since Flow Field has no single start.
	ValidateInput bool
}

// DefaultConfig returns 8-connected movement with corner-cutting
// disallowed, unbounded iterations (Width*Height), no normalization, no
// collision avoidance.
func DefaultConfig() Config {
	return Config{
		Movement:      gridmodel.DefaultMovementOptions(),
		ValidateInput: true,
	}
}

// Result is the outcome of Generate.
type Result struct {
	Width, Height   int
	IntegrationField []float64
	FlowField       []geom.Vec2
	// Valid marks, per cell, whether FlowField[i] is a meaningful
	// direction. Obstacles, unreachable cells, and goal cells (which
	// have arrived) are false.
	Valid []bool
	Stats pathstats.Stats
	Success bool
	Error   string
}

// index maps (x,y) to its row-major slice index.
func (r *Result) index(p geom.Point) int {
	return p.Y*r.Width + p.X
}

// inBounds reports whether p lies within the field's dimensions.
func (r *Result) inBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < r.Width && p.Y >= 0 && p.Y < r.Height
}

// CompositionRule selects how Compose combines multiple integration
// fields cell-by-cell.
type CompositionRule int

const (
	// Minimum takes the lowest cost across input fields per cell.
	Minimum CompositionRule = iota
	// Maximum takes the highest cost across input fields per cell.
	Maximum
	// WeightedAverage takes a weights-proportional average per cell.
	WeightedAverage
)
