package hpastar

import (
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/internal/corepath"
	"github.com/katalvlaran/gridpath/pathstats"
)

// State is the lifecycle of an Index.
type State int

const (
	// Unbuilt: no clustering, entrances, or abstract graph exist yet.
	Unbuilt State = iota
	// Building: a Build call is constructing the index. Build sets it on
	// an Index that is not returned until it is Ready, so callers never
	// observe it; it is provided for completeness with the documented
	// state machine.
	Building
	// Ready: clustering, entrances, and the abstract graph are current.
	Ready
	// Stale: the index was built against a different grid shape or
	// ClusterSize and must be rebuilt before it can be trusted.
	Stale
)

// Config configures Build and FindPath.
type Config struct {
	Movement gridmodel.MovementOptions
	// ClusterSize is the side length of a cluster in cells.
	ClusterSize int
	// MergeSmallClusters merges an undersized trailing row/column of
	// clusters into their neighbours instead of keeping them as
	// separate small clusters.
	MergeSmallClusters bool
	// MinEntranceWidth is the minimum run length of walkable cell pairs
	// across a border to be considered an entrance.
	MinEntranceWidth int
	// MaxEntranceWidth is the widest stretch of a border run one entrance
	// point serves; a longer run is split into ceil(length/MaxEntranceWidth)
	// segments with an entrance at each segment's midpoint. Zero or less
	// gives one entrance per run.
	MaxEntranceWidth int
	// DetectInteriorEntrances flags cells within a cluster that would
	// otherwise leave part of the cluster internally disconnected.
	DetectInteriorEntrances bool
	// MaxIterations caps the abstract-graph A* search and each
	// refinement A* call.
	MaxIterations int
	// DisableBuildOnDemand makes a query against a non-Ready index fail
	// immediately with ErrIndexNotReady instead of building first.
	DisableBuildOnDemand bool
	// RefineWithTheta routes refinement through a caller-supplied
	// any-angle refiner instead of astar.FindPath when set; hpastar has
	// no direct dependency on thetastar, so the caller wires it in.
	RefineWithTheta func(start, goal geom.Point, grid *gridmodel.Grid, movement gridmodel.MovementOptions) ([]geom.Point, float64, bool)
	// Smooth applies a caller-supplied post-processing pass (path
	// optimization) to the refined path when set.
	Smooth func(path []geom.Point, grid *gridmodel.Grid) []geom.Point
	// ValidateInput runs validate.Grid before a query.
	ValidateInput bool
}

// DefaultConfig returns 8-connected movement, 10x10 clusters, minimum
// entrance width 1, maximum entrance width 6, no interior entrances, no
// small-cluster merging, 100000 max iterations, build-on-demand enabled.
func DefaultConfig() Config {
	return Config{
		Movement:         gridmodel.DefaultMovementOptions(),
		ClusterSize:      10,
		MinEntranceWidth: 1,
		MaxEntranceWidth: 6,
		MaxIterations:    100_000,
		ValidateInput:    true,
	}
}

// cluster is an axis-aligned region of the grid.
type cluster struct {
	ID                 int
	MinX, MinY         int
	MaxX, MaxY         int // exclusive
}

func (c cluster) contains(p geom.Point) bool {
	return p.X >= c.MinX && p.X < c.MaxX && p.Y >= c.MinY && p.Y < c.MaxY
}

// entrance is one crossing point between two adjacent clusters. A border
// crossing needs two abstract-graph vertices, one per side, because a
// per-cluster search is bounded to that cluster's own sub-grid and can
// never reach a goal cell sitting in the neighbour: Pos is the cell
// inside ClusterA's bounds, PosB the cell one step across the border
// inside ClusterB's bounds. PosB is the zero Point for an interior
// entrance (ClusterB == -1), which has only one side.
type entrance struct {
	Pos      geom.Point
	PosB     geom.Point
	ClusterA int
	ClusterB int // -1 for an interior entrance
}

// posIn returns the entrance's cell as seen from clusterID's own bounds.
func (e entrance) posIn(clusterID int) geom.Point {
	if clusterID == e.ClusterB {
		return e.PosB
	}

	return e.Pos
}

func entranceVertexID(p geom.Point) string {
	return pointKey(p)
}

// Index holds the cached clustering, entrances, and abstract graph for
// one (grid shape, ClusterSize) pair.
type Index struct {
	state       State
	width       int
	height      int
	clusterSize int
	movement    gridmodel.MovementOptions

	clusters  []cluster
	clusterOf []int // per-cell cluster ID, -1 for obstacles
	entrances []entrance
	graph     *corepath.Graph

	// astarFindPath is swappable for tests; production callers always
	// get astar.FindPath via Build.
	astarFindPath findPathFunc
}

// findPathFunc is astar.FindPath's signature: every intra-cluster edge
// cost, ephemeral start/goal connection, and refinement call goes
// through this indirection so tests can stub it without a real grid
// search.
type findPathFunc func(start, goal geom.Point, grid *gridmodel.Grid, cfg astar.Config) *astar.Result

// State reports the index's current lifecycle state.
func (idx *Index) State() State {
	if idx == nil {
		return Unbuilt
	}

	return idx.state
}

// Result is the outcome of FindPath or FindPathToNearestGoal.
type Result struct {
	Success      bool
	AbstractPath []geom.Point
	Path         []geom.Point
	TotalCost    float64
	GoalReached  geom.Point
	Stats        pathstats.Stats
	Error        string
}
