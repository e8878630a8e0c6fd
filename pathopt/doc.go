// Package pathopt post-processes a cell-by-cell path into a shorter,
// straighter one without changing its endpoints or leaving the walkable
// area. Two phases run in sequence: redundancy removal collapses any
// run of points a single line-of-sight segment can replace, then
// iterative Laplacian smoothing nudges the survivors toward the
// midpoint of their neighbours while staying walkable.
//
// What:
//
//   - Optimize(path, grid, config) → Result{Path, PointsRemoved, Stats}.
//   - Redundancy removal walks the path greedily: from the current
//     anchor, find the farthest point still in line of sight and jump
//     to it directly, dropping everything in between.
//   - Smoothing relaxes each interior point toward
//     current + factor*((prev+next)/2 - current), rounded to the grid,
//     accepting the candidate only if it stays walkable (and, if
//     configured, keeps line of sight to both neighbours). It repeats
//     until no point moves or MaxSmoothingIterations is reached.
//
// Why:
//
//   - Grounded on gridgraph's ExpandIsland for the idiom of walking a
//     path by index while rewriting it into a shorter reconstruction,
//     and on los.Check for every line-of-sight predicate.
//
// Complexity:
//
//   - Redundancy removal: O(n^2) line-of-sight checks worst case over a
//     path of n points (each check itself O(max(|dx|,|dy|))).
//   - Smoothing: O(n * MaxSmoothingIterations) candidate evaluations.
//
// Invariant: Optimize is idempotent on its own output — redundancy
// removal run a second time removes zero further points, since every
// surviving pair already lacks a skippable intermediate.
package pathopt
