package hpastar

import (
	"strconv"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/pathstats"
	"github.com/katalvlaran/gridpath/validate"
)

// Build constructs an Index from grid: partitions it into clusters,
// detects entrances along cluster borders, and builds the abstract
// graph connecting them. The returned Index is Ready on success.
func Build(grid *gridmodel.Grid, config Config) (*Index, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if config.ClusterSize <= 0 {
		return nil, ErrBadClusterSize
	}

	idx := &Index{
		state:       Building,
		width:       grid.Width,
		height:      grid.Height,
		clusterSize: config.ClusterSize,
		movement:    config.Movement,
	}

	clusters, clusterOf := clusterize(grid, config.ClusterSize, config.MergeSmallClusters)
	entrances := detectEntrances(grid, clusters, clusterOf, config)
	graph, err := buildAbstractGraph(grid, clusters, entrances, config, astar.FindPath)
	if err != nil {
		idx.state = Unbuilt

		return nil, err
	}

	idx.clusters = clusters
	idx.clusterOf = clusterOf
	idx.entrances = entrances
	idx.graph = graph
	idx.astarFindPath = astar.FindPath
	idx.state = Ready

	return idx, nil
}

// stale reports whether idx was built against a different grid shape or
// ClusterSize than the one now in play.
func (idx *Index) stale(grid *gridmodel.Grid, config Config) bool {
	return idx.width != grid.Width || idx.height != grid.Height || idx.clusterSize != config.ClusterSize
}

// ensureReady rebuilds idx in place if it is Unbuilt or Stale, unless
// build-on-demand is disabled.
func ensureReady(idx **Index, grid *gridmodel.Grid, config Config) error {
	cur := *idx
	if cur != nil && cur.state == Ready && !cur.stale(grid, config) {
		return nil
	}
	if config.DisableBuildOnDemand {
		return ErrIndexNotReady
	}

	rebuilt, err := Build(grid, config)
	if err != nil {
		return err
	}
	*idx = rebuilt

	return nil
}

// FindPath finds a path from start to goal using idx, rebuilding idx in
// place first if it is Unbuilt, Stale, or shape-mismatched (unless
// config.DisableBuildOnDemand is set, in which case ErrIndexNotReady is
// returned). Same-cluster start/goal pairs bypass the abstract graph
// entirely and refine directly.
func FindPath(idx **Index, start, goal geom.Point, grid *gridmodel.Grid, config Config) *Result {
	if grid == nil {
		return &Result{Error: ErrNilGrid.Error()}
	}
	if err := ensureReady(idx, grid, config); err != nil {
		return &Result{Error: err.Error()}
	}
	if config.ValidateInput {
		if vr := validate.Grid(grid, start, goal, config.Movement, validate.DefaultOptions()); !vr.IsValid {
			return &Result{Error: vr.Errors[0]}
		}
	}

	res := &Result{}
	timer := pathstats.StartTimer(&res.Stats)
	findPathAgainst(*idx, start, []geom.Point{goal}, grid, config, res)
	timer.Stop()

	return res
}

// FindPathToNearestGoal behaves like FindPath but treats every point in
// goals as a candidate target, returning the cheapest one reached in
// Result.GoalReached. When any goal lies in the start's cluster, the
// cheapest of those is returned and goals in other clusters are not
// searched.
func FindPathToNearestGoal(idx **Index, start geom.Point, goals []geom.Point, grid *gridmodel.Grid, config Config) *Result {
	if grid == nil {
		return &Result{Error: ErrNilGrid.Error()}
	}
	if len(goals) == 0 {
		return &Result{Error: ErrNoGoals.Error()}
	}
	if err := ensureReady(idx, grid, config); err != nil {
		return &Result{Error: err.Error()}
	}
	if config.ValidateInput {
		for _, g := range goals {
			if vr := validate.Grid(grid, start, g, config.Movement, validate.DefaultOptions()); !vr.IsValid {
				// A blocked/out-of-bounds individual goal is not fatal as
				// long as at least one goal validates; only a bad start
				// fails the whole call.
				if vr.Errors[0] == validate.MsgStartBlocked || vr.Errors[0] == validate.MsgStartOutOfBounds {
					return &Result{Error: vr.Errors[0]}
				}
			}
		}
	}

	res := &Result{}
	timer := pathstats.StartTimer(&res.Stats)
	findPathAgainst(*idx, start, goals, grid, config, res)
	timer.Stop()

	return res
}

func findPathAgainst(idx *Index, start geom.Point, goals []geom.Point, grid *gridmodel.Grid, config Config, res *Result) {
	if !grid.Walkable(start) {
		res.Error = "start cell is not walkable"

		return
	}
	startCluster := idx.clusterOf[grid.Index(start)]
	if startCluster < 0 {
		res.Error = "start cell is not walkable"

		return
	}

	var walkableGoals []geom.Point
	for _, g := range goals {
		if grid.Walkable(g) && idx.clusterOf[grid.Index(g)] >= 0 {
			walkableGoals = append(walkableGoals, g)
		}
	}
	if len(walkableGoals) == 0 {
		res.Error = "no walkable goal"

		return
	}

	acfg := astar.DefaultConfig()
	acfg.Movement = config.Movement
	acfg.ValidateInput = false
	if config.MaxIterations > 0 {
		acfg.MaxIterations = config.MaxIterations
	}

	// Same-cluster shortcut: refine directly to the cheapest goal in the
	// start's cluster, skip the abstract graph.
	for _, g := range walkableGoals {
		if idx.clusterOf[grid.Index(g)] != startCluster {
			continue
		}
		refined, cost, ok := refineSegment(start, g, grid, config, acfg, idx.astarFindPath)
		if !ok || (res.Success && cost >= res.TotalCost) {
			continue
		}
		res.Success = true
		res.Path = refined
		res.TotalCost = cost
		res.GoalReached = g
	}
	if res.Success {
		return
	}

	pos := make(map[string]geom.Point, 2*len(idx.entrances)+len(walkableGoals)+1)
	for _, e := range idx.entrances {
		pos[entranceVertexID(e.Pos)] = e.Pos
		if e.ClusterB >= 0 {
			pos[entranceVertexID(e.PosB)] = e.PosB
		}
	}

	overlay := newOverlayGraph(idx.graph)
	startID := "start:" + pointKey(start)
	pos[startID] = start
	if !connectEphemeral(overlay, idx, grid, startCluster, start, startID, config, acfg) {
		res.Error = "start cluster has no entrances"

		return
	}

	var goalIDs []string
	for gi, g := range walkableGoals {
		gc := idx.clusterOf[grid.Index(g)]
		gid := "goal:" + pointKey(g) + ":" + strconv.Itoa(gi)
		pos[gid] = g
		if connectEphemeral(overlay, idx, grid, gc, g, gid, config, acfg) {
			goalIDs = append(goalIDs, gid)
		}
	}
	if len(goalIDs) == 0 {
		res.Error = "no goal cluster has reachable entrances"

		return
	}

	abstractPath, _, ok := searchAbstractGraph(overlay, startID, goalIDs, pos, config.MaxIterations)
	if !ok {
		res.Error = "no abstract path found"

		return
	}

	abstractPoints := make([]geom.Point, len(abstractPath))
	for i, id := range abstractPath {
		abstractPoints[i] = pos[id]
	}

	refined, total, ok := refineAbstractPath(abstractPoints, grid, config, acfg, idx.astarFindPath)
	if !ok {
		res.Error = "refinement failed"

		return
	}

	res.Success = true
	res.AbstractPath = abstractPoints
	res.Path = refined
	res.TotalCost = total
	res.GoalReached = abstractPoints[len(abstractPoints)-1]
}

// connectEphemeral links an ephemeral start/goal vertex to every
// entrance of its own cluster, weighted by the real intra-cluster A*
// cost. Returns false if no entrance of that cluster is reachable.
func connectEphemeral(overlay *overlayGraph, idx *Index, grid *gridmodel.Grid, clusterID int, p geom.Point, vertexID string, config Config, acfg astar.Config) bool {
	c := idx.clusters[clusterID]
	sub, err := clusterGrid(grid, c)
	if err != nil {
		return false
	}
	local := toLocal(c, p)
	connected := false
	for _, e := range idx.entrances {
		if e.ClusterA != clusterID && e.ClusterB != clusterID {
			continue
		}
		ePos := e.posIn(clusterID)
		res := idx.astarFindPath(local, toLocal(c, ePos), sub, acfg)
		if !res.Success {
			continue
		}
		overlay.addEdge(vertexID, entranceVertexID(ePos), res.TotalCost)
		connected = true
	}

	return connected
}

func refineSegment(a, b geom.Point, grid *gridmodel.Grid, config Config, acfg astar.Config, find findPathFunc) ([]geom.Point, float64, bool) {
	if config.RefineWithTheta != nil {
		path, cost, ok := config.RefineWithTheta(a, b, grid, config.Movement)
		if ok {
			return applySmooth(path, grid, config), cost, true
		}
	}
	res := find(a, b, grid, acfg)
	if !res.Success {
		return nil, 0, false
	}

	return applySmooth(res.Path, grid, config), res.TotalCost, true
}

func refineAbstractPath(points []geom.Point, grid *gridmodel.Grid, config Config, acfg astar.Config, find findPathFunc) ([]geom.Point, float64, bool) {
	var full []geom.Point
	var total float64
	for i := 0; i < len(points)-1; i++ {
		seg, cost, ok := refineSegment(points[i], points[i+1], grid, config, acfg, find)
		if !ok {
			return nil, 0, false
		}
		if i > 0 && len(seg) > 0 {
			seg = seg[1:] // drop the duplicate join point
		}
		full = append(full, seg...)
		total += cost
	}

	return full, total, true
}

func applySmooth(path []geom.Point, grid *gridmodel.Grid, config Config) []geom.Point {
	if config.Smooth == nil {
		return path
	}

	return config.Smooth(path, grid)
}

