// Package gridpath is a 2D grid pathfinding library: a family of
// interchangeable search algorithms over a shared grid and geometry
// substrate, plus the collaborators every one of them needs — line of
// sight, input validation, result caching, path optimization, and
// run statistics.
//
// What:
//
//	geom/, gridmodel/ — coordinates, distances, and the flat-array grid
//	los/              — Bresenham/DDA/ray-cast line-of-sight checks
//	validate/         — one validation entry point shared by every search
//	rescache/         — bounded result cache keyed on grid+endpoints+params
//	pathstats/        — per-run counters, timing, and path/field comparison
//	astar/            — A* grid search
//	thetastar/        — Theta*, any-angle search via line-of-sight shortcuts
//	flowfield/        — integration field + flow field + steering, for
//	                    many agents sharing one goal
//	hpastar/          — hierarchical pathfinding: clusters, entrances, an
//	                    abstract graph, and cell-level refinement
//	pathopt/          — redundancy removal and Laplacian smoothing for
//	                    any of the above algorithms' output
//
// Why: every algorithm borrows the caller's grid read-only for the
// duration of one call and returns a self-contained Result; none of
// them is safe to share across goroutines without external
// serialization, and none retains a reference to the grid afterward.
//
// go get github.com/katalvlaran/gridpath
package gridpath
