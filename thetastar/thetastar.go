package thetastar

import (
	"container/heap"
	"strconv"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/los"
	"github.com/katalvlaran/gridpath/pathstats"
	"github.com/katalvlaran/gridpath/rescache"
	"github.com/katalvlaran/gridpath/validate"
)

// FindPath searches grid for an any-angle shortest path from start to
// goal under config. Failures are reported through Result.Error rather
// than panics, except for programming errors in config itself.
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
	s += "|" + strconv.Itoa(int(c.LOS.Algorithm))
	if c.LOS.UseEarlyTermination {
		s += "e"
	}
	s += "|" + strconv.FormatFloat(c.LOS.MaxDistance, 'g', -1, 64)
	s += "|" + strconv.FormatFloat(c.LOS.RayCastStep, 'g', -1, 64)

	return rescache.ParamsDigest(s)
}

func run(start, goal geom.Point, grid *gridmodel.Grid, config Config, res *Result) {
	heuristic := heuristicFor(config.Movement)
	losOpts := config.LOS
	losOpts.CheckEndpoints = true
	cache := newLOSCache()

	hasLOS := func(a, b geom.Point) bool {
		if v, ok := cache.get(a, b); ok {
			return v
		}
		res.Stats.LineOfSightChecks++
		v := los.Check(grid, a, b, losOpts).HasLOS
		cache.put(a, b, v)
		cache.put(b, a, v)

		return v
	}

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
		if cur.closed || top.f != cur.f {
			continue
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

			return
		}

		curParentIdx := cur.parent

		for _, n := range grid.Neighbours(cur.pos, config.Movement) {
			nIdx, exists := index[n]
			if exists && arena[nIdx].closed {
				continue
			}

			// Path 2 (parent update): try shortcutting through cur's
			// own parent when it has line of sight to n.
			if curParentIdx >= 0 {
				gp := &arena[curParentIdx]
				if hasLOS(gp.pos, n) {
					tentativeG := gp.g + geom.Euclidean(gp.pos, n)
					if !exists || tentativeG < arena[nIdx].g {
						relax(&arena, index, n, tentativeG, curParentIdx, heuristic(n, goal), open, &nIdx, &exists)
						res.Stats.ParentUpdates++

						continue
					}
				}
			}

			// Path 1: standard A* relaxation through cur.
			step := gridmodel.MovementCost(cur.pos, n, config.Movement)
			tentativeG := cur.g + step
			if !exists || tentativeG < arena[nIdx].g {
				relax(&arena, index, n, tentativeG, top.arenaIdx, heuristic(n, goal), open, &nIdx, &exists)
			}
		}
	}

	res.Success = false
	res.Error = validate.MsgNoPath
	res.Stats.LastError = res.Error
}

// relax inserts or updates the arena node for pos, pushing a fresh heap
// entry. exists/nIdx are updated in place so the caller's loop-local
// bookkeeping stays consistent after a first-discovery insert.
func relax(arena *[]node, index map[geom.Point]int, pos geom.Point, g float64, parent int, h float64, open *openSet, nIdx *int, exists *bool) {
	if !*exists {
		*nIdx = len(*arena)
		*arena = append(*arena, node{pos: pos, g: g, h: h, parent: parent})
		index[pos] = *nIdx
		*exists = true
	} else {
		(*arena)[*nIdx].g = g
		(*arena)[*nIdx].parent = parent
	}
	(*arena)[*nIdx].f = g + (*arena)[*nIdx].h
	heap.Push(open, openItem{arenaIdx: *nIdx, f: (*arena)[*nIdx].f, g: (*arena)[*nIdx].g})
}

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

func heuristicFor(movement gridmodel.MovementOptions) func(a, b geom.Point) float64 {
	if movement.Conn == gridmodel.Eight {
		return geom.Euclidean
	}

	return geom.Manhattan
}
