// Package astar implements A* grid search: an optimal grid-step
// shortest path under an admissible heuristic, f = g + h.
//
// What:
//
//   - FindPath(start, goal, grid, config) → Result{Success, Path,
//     TotalCost, Stats}.
//   - Open set ordered by f ascending, tie-broken by larger g (deeper
//     nodes) when config.UseTieBreaking is set.
//   - Default heuristic: Euclidean on 8-connected grids, Manhattan on
//     4-connected grids — both admissible under the default movement
//     cost model.
//
// Why:
//
//   - Grounded on dijkstra.Dijkstra's runner/heap/lazy-decrease-key
//     shape (container/heap, "push duplicates, skip stale pops on
//     relaxation"), adapted from a string-keyed weighted graph to a
//     flat grid of geom.Point cells with a search-local node arena:
//     nodes live in a flat per-call slice, with integer indices
//     replacing pointer cross-references.
//
// Complexity:
//
//   - Time: O(E log V) where V, E bound the explored frontier.
//   - Space: O(V) for the node arena and open/closed sets.
//
// Errors and failure semantics:
//
//   - Validation failures populate Result.Error with validate's stable
//     message vocabulary; Result.Success is false, Path is empty.
//   - Exhausting config.MaxIterations yields Success=false and
//     Error="max iterations exceeded", Stats.Iterations at the cap.
package astar
