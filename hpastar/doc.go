// Package hpastar implements hierarchical pathfinding: a grid is
// partitioned into clusters, clusters expose entrances to their
// neighbours, and an abstract graph over those entrances lets long
// queries search a small graph instead of the whole grid. A query both
// returns the abstract path (entrance nodes) and a refined, cell-by-
// cell path built by re-running A* within each cluster.
//
// What:
//
//   - Build(grid, config) caches clustering, entrances, and the
//     abstract graph on an *Index; a query consults the index,
//     rebuilding on demand if needed.
//   - FindPath(&index, start, goal, grid, config) → Result{AbstractPath,
//     Path, Success, Stats}. The double pointer lets a query rebuild a
//     stale or unbuilt index in place.
//   - FindPathToNearestGoal(&index, start, goals, grid, config) treats
//     every goal as a candidate and reports the cheapest one reached;
//     goals in the start's own cluster, when there are any, are the only
//     ones searched.
//
// Why:
//
//   - Grounded on gridgraph's clustering/connected-components idiom for
//     partitioning a grid into regions, builder's functional-options
//     config pattern for Config/Option, and astar.FindPath reused
//     directly for both intra-cluster edge costs and path refinement.
//     The abstract graph itself is internal/corepath.Graph, adapted
//     from core.Graph.
//
// Complexity:
//
//   - Build: O(Width*Height) clustering and entrance scan, plus
//     O(entrances^2) intra-cluster A* per cluster in the worst case.
//   - Query: O(abstract graph size) for the abstract search, plus one
//     A* refinement per consecutive abstract-node pair.
//
// State machine: an Index moves UNBUILT -> BUILDING -> READY ->
// (STALE on a dimension/clusterSize change) -> BUILDING. Queries
// against an UNBUILT or STALE index build on demand unless
// config.DisableBuildOnDemand is set, in which case they fail fast.
package hpastar
