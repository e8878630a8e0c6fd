// Package geom provides the 2D point, vector, and distance-metric
// primitives shared by every pathfinder in gridpath.
//
// What:
//
//   - Point: an integer grid coordinate (x, y).
//   - Vec2: a real-valued 2D vector used for Theta* segments and Flow
//     Field direction vectors.
//   - Distance metrics: Euclidean, Manhattan, Chebyshev, Octile, and the
//     diagonal-movement cost model (DiagonalCost). A* and Theta* use
//     Euclidean or Manhattan as their default heuristics.
//
// Why:
//
//   - Every higher package (gridmodel, los, astar, thetastar, flowfield,
//     hpastar, pathopt) needs the same coordinate type and the same
//     handful of distance formulas; centralizing them keeps a search's
//     heuristic and its movement-cost model consistent with each other.
//
// Complexity:
//
//   - All functions in this package are O(1).
package geom
