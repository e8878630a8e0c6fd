// Package pathstats defines the per-run counters every pathfinder
// accumulates, and the comparison utilities used to judge two paths,
// two flow fields, or two HPA* runs against each other.
//
// What:
//
//   - Stats: write-only hot-path counters (iterations, nodes explored,
//     LOS checks, parent updates, diagonal/cardinal steps, execution
//     time, success, last error).
//   - ComparePaths: similarity in [0,1] blending length, cost, and
//     endpoint agreement.
//   - CompareFlowFields: per-cell magnitude/direction differences and
//     the mean cosine similarity of corresponding vectors.
//   - CombineHPA: averages four HPA* sub-similarities into one score.
//
// Why:
//
//   - dijkstra's doc.go documents complexity and behaviour in the same
//     plain, load-bearing register this package's comments follow;
//     Stats keeps counters as plain integer fields updated in-place
//     rather than allocating a stats object per node.
//
// Complexity:
//
//   - Stats field updates: O(1) each.
//   - ComparePaths: O(max(len(a), len(b))).
//   - CompareFlowFields: O(Width*Height).
package pathstats
