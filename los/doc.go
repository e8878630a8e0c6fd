// Package los implements the line-of-sight engine shared by Theta*, HPA*
// refinement, and path optimization: deciding whether the straight
// segment between two grid cells crosses only walkable cells.
//
// What:
//
//   - Three interchangeable algorithms with an identical contract:
//     Bresenham (default, integer grid traversal), DDA (floating-point
//     stepped), and Ray-cast (fixed-step sampling).
//   - All three return {HasLOS, Distance, BlockedAt, Blocked}.
//
// Why:
//
//   - gridgraph/expand.go's 0-1 BFS walks the grid cell-by-cell along
//     candidate moves exactly the way Bresenham must: los generalizes
//     that walking discipline into a reusable segment test three ways.
//
// Complexity:
//
//   - Bresenham/DDA: O(max(|dx|,|dy|)).
//   - Ray-cast: O(segment length / RayCastStep).
//
// Contract:
//
//   - Endpoints equal ⇒ HasLOS=true, Distance=0.
//   - Clear segment ⇒ HasLOS=true, Distance=Euclidean(from,to).
//   - Blocked segment ⇒ HasLOS=false, BlockedAt identifies the first
//     non-walkable cell encountered.
//   - Exceeding MaxDistance ⇒ HasLOS=false without inspection.
package los
