// Package validate provides the single, uniform validation surface every
// pathfinder in gridpath calls before searching: grid shape, start/goal
// placement, and (optionally) start-goal connectivity.
//
// What:
//
//   - Grid(…) returns a Result{IsValid, Errors, Warnings} built from a
//     fixed, stable vocabulary of error strings so callers may assert
//     identical messages across A*, Theta*, Flow Field, and HPA*.
//   - Connectivity is determined by a breadth-first flood from start
//     directly over the grid's neighbour model, in the same
//     queue-and-visited-set shape bfs.BFS walks over a *core.Graph.
//
// Why:
//
//   - Early drafts of this library called it validateInput in some
//     places and validateGrid in others, with the error vocabulary
//     expected to match regardless of caller. This package resolves
//     that by being the only validator any algorithm calls.
//
// Complexity:
//
//   - Shape/placement checks: O(1).
//   - Connectivity check: O(Width*Height*d), d = neighbour count.
package validate
