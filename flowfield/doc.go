// Package flowfield implements Dijkstra-style integration-field
// pathfinding: a single computation serves many agents converging on
// the same goal set, trading per-query cost for a one-time field build.
//
// What:
//
//   - Generate(grid, goals, config) → *Result{IntegrationField,
//     FlowField, Valid, Stats}: best-first expansion from every walkable
//     goal cell (cost 0), producing a per-cell cost field and a per-cell
//     direction-to-lowest-neighbour vector field.
//   - FindAgentPath(start, result, grid, config): walks an agent from
//     start by following the flow vector at each step, rounded to the
//     nearest walkable neighbour, until a goal or a cycle is detected.
//   - SimulateCrowd: replays FindAgentPath for many agents, optionally
//     biasing each agent's chosen neighbour away from nearby agents.
//   - Compose: combines several fields cell-by-cell under a
//     minimum/maximum/weighted-average rule, recomputing flow vectors
//     from the composed integration field.
//
// Why:
//
//   - Grounded on dijkstra.Dijkstra's best-first expansion
//     (container/heap priority queue keyed by tentative cost, relax on
//     pop) run with every goal cell pre-seeded at cost 0 instead of a
//     single source; bfs.BFS's queue/walker shape informs the simpler
//     single-pass agent-walk and crowd-replay loops, which need no
//     priority queue.
//
// Complexity:
//
//   - Generate: O(Width*Height*log(Width*Height)).
//   - FindAgentPath: O(path length), bounded by Width*Height to detect
//     a cycle.
//   - Compose: O(Width*Height).
package flowfield
