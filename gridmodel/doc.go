// Package gridmodel defines the shared grid representation used by every
// pathfinder in gridpath: CellState, the flat row-major Grid, walkability,
// neighbour enumeration, and movement cost.
//
// What:
//
//   - CellState: a tagged variant {Walkable, Obstacle, Goal, Start, Agent}.
//   - Grid: a flat, row-major []CellState of length Width*Height, borrowed
//     read-only by every pathfinder call.
//   - Neighbour enumeration: 4- or 8-connectivity, with an optional
//     corner-cut guard for diagonal moves.
//   - Movement cost: cardinal/diagonal edge weights feeding every search.
//
// Why:
//
//   - gridgraph.GridGraph wraps a [][]int grid with a land/water
//     threshold and precomputed neighbour offsets; gridmodel generalizes
//     that exact shape to a tagged CellState grid and a full
//     cardinal+diagonal neighbour model.
//
// Complexity:
//
//   - InBounds, Walkable, Index, Coordinate: O(1).
//   - Neighbours: O(1) amortized, at most 8 candidates per cell.
//
// Errors:
//
//   - ErrGridLengthMismatch: len(cells) != width*height.
//   - ErrInvalidDimensions: width <= 0 or height <= 0.
//   - ErrInvalidCellState: a cell value outside the CellState domain.
package gridmodel
