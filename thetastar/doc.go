// Package thetastar implements Theta*: any-angle grid search producing
// shorter, more natural paths than A* by allowing a node's parent to be
// any ancestor with line of sight, not just its immediate predecessor.
//
// What:
//
//   - FindPath(start, goal, grid, config) → Result{Success, Path,
//     TotalCost, Stats}, contract-identical to astar.Result except Path
//     may contain non-adjacent consecutive points and Stats reports
//     LineOfSightChecks.
//   - Relaxation adds one step over plain A*, parent update: before
//     accepting the current node as a neighbour's parent, test whether
//     the current node's own parent has line of sight to the neighbour;
//     if so and cheaper, adopt the grandparent as parent directly.
//
// Why:
//
//   - Grounded on astar's runner/openSet/arena shape (same
//     container/heap discipline, same search-local node arena indexed
//     by integer) with the parent-update test spliced into relaxation,
//     using los.Check for the line-of-sight predicate.
//
// Complexity:
//
//   - Time: O(E log V) search plus one LOS check per relaxation
//     attempt, each O(max(|dx|,|dy|)).
//   - Space: O(V) for the node arena and open/closed sets.
//
// Invariant: every consecutive pair in a successful Result.Path has
// line of sight on the supplied grid. Failure semantics mirror astar's:
// empty path, zero cost, Error populated with a stable message.
package thetastar
