package astar

import (
	"container/heap"
	"strconv"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/pathstats"
	"github.com/katalvlaran/gridpath/rescache"
	"github.com/katalvlaran/gridpath/validate"
)

// FindPath searches grid for a shortest path from start to goal under
// config. It never panics on a bad grid or bad start/goal; those are
// surfaced as a failed Result with a stable Error string. Config fields
// that represent programming errors (MaxIterations <= 0) panic
// immediately, matching dijkstra.WithMaxDistance's fail-fast discipline.
func FindPath(start, goal geom.Point, grid *gridmodel.Grid, config Config) *Result {
	if config.MaxIterations <= 0 {
		panic(ErrBadMaxIterations.Error())
	}

	res := &Result{}
	if grid == nil {
		res.Error = ErrNilGrid.Error()

		return res
	}

	if config.ValidateInput {
		vopts := validate.DefaultOptions()
		vopts.CheckConnectivity = config.CheckConnectivity
		vres := validate.Grid(grid, start, goal, config.Movement, vopts)
		if !vres.IsValid {
			res.Error = vres.Errors[0]

			return res
		}
	}

	if start.Equal(goal) {
		res.Success = true
		res.Path = []geom.Point{start}
		res.TotalCost = 0
		res.Stats.Success = true

		return res
	}

	var cacheKey rescache.Key
	if config.EnableCaching && config.Cache != nil {
		cacheKey = rescache.NewKey(grid, start, goal, paramsDigest(config))
		if cached, ok := config.Cache.Get(cacheKey); ok {
			hit := cached.(Result)
			hit.Stats.ExecutionTime = 0
			hit.Stats.Iterations = 0

			return &hit
		}
	}

	timer := pathstats.StartTimer(&res.Stats)
	run(start, goal, grid, config, res)
	timer.Stop()

	if config.EnableCaching && config.Cache != nil {
		config.Cache.Put(cacheKey, *res)
	}

	return res
}

// paramsDigest produces a stable serialization of the configuration
// fields that affect search outcome, for cache-key purposes.
// Cache/RetainExploredSet do not affect the computed path and are
// excluded.
func paramsDigest(c Config) uint64 {
	s := ""
	if c.Movement.Conn == gridmodel.Eight {
		s += "8"
	} else {
		s += "4"
	}
	if c.Movement.DiagonalOnlyWhenClear {
		s += "c"
	}
	if c.UseTieBreaking {
		s += "t"
	}
	s += "|" + strconv.FormatFloat(c.Movement.CardinalCost, 'g', -1, 64)
	s += "|" + strconv.FormatFloat(c.Movement.DiagonalCost, 'g', -1, 64)
	s += "|" + strconv.Itoa(c.MaxIterations)

	return rescache.ParamsDigest(s)
}

// run executes the core A* loop, writing directly into res.
func run(start, goal geom.Point, grid *gridmodel.Grid, config Config, res *Result) {
	heuristic := heuristicFor(config.Movement)

	arena := make([]node, 0, grid.Width*grid.Height/4+1)
	index := make(map[geom.Point]int, grid.Width*grid.Height/4+1)

	startIdx := 0
	arena = append(arena, node{pos: start, g: 0, h: heuristic(start, goal), parent: -1})
	arena[0].f = arena[0].g + arena[0].h
	index[start] = startIdx

	open := &openSet{tieBreak: config.UseTieBreaking}
	heap.Init(open)
	heap.Push(open, openItem{arenaIdx: startIdx, f: arena[startIdx].f, g: arena[startIdx].g})

	var explored []geom.Point

	for open.Len() > 0 {
		if res.Stats.Iterations >= config.MaxIterations {
			res.Success = false
			res.Error = ErrMaxIterationsExceeded
			res.Stats.LastError = res.Error

			return
		}
		res.Stats.Iterations++

		top := heap.Pop(open).(openItem)
		cur := &arena[top.arenaIdx]
		if cur.closed {
			continue // stale heap entry
		}
		if top.f != cur.f {
			continue // superseded by a better relaxation since pushed
		}
		cur.closed = true
		res.Stats.NodesExplored++
		if config.RetainExploredSet {
			explored = append(explored, cur.pos)
		}

		if cur.pos.Equal(goal) {
			res.Success = true
			res.Path = reconstruct(arena, top.arenaIdx)
			res.TotalCost = cur.g
			res.Stats.Success = true
			res.ExploredSet = explored
			countSteps(res)

			return
		}

		for _, n := range grid.Neighbours(cur.pos, config.Movement) {
			step := gridmodel.MovementCost(cur.pos, n, config.Movement)
			tentativeG := cur.g + step

			nIdx, ok := index[n]
			if !ok {
				nIdx = len(arena)
				arena = append(arena, node{pos: n, g: tentativeG, h: heuristic(n, goal), parent: top.arenaIdx})
				arena[nIdx].f = arena[nIdx].g + arena[nIdx].h
				index[n] = nIdx
				heap.Push(open, openItem{arenaIdx: nIdx, f: arena[nIdx].f, g: arena[nIdx].g})

				continue
			}
			if arena[nIdx].closed || tentativeG >= arena[nIdx].g {
				continue
			}
			arena[nIdx].g = tentativeG
			arena[nIdx].f = tentativeG + arena[nIdx].h
			arena[nIdx].parent = top.arenaIdx
			heap.Push(open, openItem{arenaIdx: nIdx, f: arena[nIdx].f, g: arena[nIdx].g})
		}
	}

	res.Success = false
	res.Error = validate.MsgNoPath
	res.Stats.LastError = res.Error
}

// reconstruct walks parent links from goalIdx back to the start and
// reverses the result.
func reconstruct(arena []node, goalIdx int) []geom.Point {
	var rev []geom.Point
	for i := goalIdx; i != -1; i = arena[i].parent {
		rev = append(rev, arena[i].pos)
	}
	path := make([]geom.Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}

	return path
}

// countSteps tallies diagonal vs cardinal steps along the final path.
func countSteps(res *Result) {
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		if a.X != b.X && a.Y != b.Y {
			res.Stats.DiagonalSteps++
		} else {
			res.Stats.CardinalSteps++
		}
	}
}

// heuristicFor returns Euclidean for 8-connected search (admissible
// under the sqrt(2)-diagonal cost model) and Manhattan for 4-connected
// search.
func heuristicFor(movement gridmodel.MovementOptions) func(a, b geom.Point) float64 {
	if movement.Conn == gridmodel.Eight {
		return geom.Euclidean
	}

	return geom.Manhattan
}
