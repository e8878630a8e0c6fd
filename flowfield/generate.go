package flowfield

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/pathstats"
	"github.com/katalvlaran/gridpath/validate"
)

// Generate builds an integration field and flow field over grid for the
// given goal set. Goal cells that are obstacles are ignored; if every
// goal is an obstacle, the resulting field is all-Unreachable but
// Success is still true (generation itself did not fail).
func Generate(grid *gridmodel.Grid, goals []geom.Point, config Config) *Result {
	res := &Result{}
	if grid == nil {
		res.Error = ErrNilGrid.Error()

		return res
	}
	if len(goals) == 0 {
		res.Error = ErrNoGoals.Error()

		return res
	}

	if config.ValidateInput {
		vres := validate.GridShape(grid.Cells, grid.Width, grid.Height)
		if !vres.IsValid {
			res.Error = vres.Errors[0]

			return res
		}
	}

	if config.MaxIterations < 0 {
		res.Error = ErrBadMaxIterations.Error()

		return res
	}
	maxIter := config.MaxIterations
	if maxIter == 0 {
		maxIter = grid.Width * grid.Height
	}

	res.Width, res.Height = grid.Width, grid.Height
	n := grid.Width * grid.Height
	res.IntegrationField = make([]float64, n)
	for i := range res.IntegrationField {
		res.IntegrationField[i] = Unreachable
	}

	timer := pathstats.StartTimer(&res.Stats)
	expand(grid, goals, config, res, maxIter)
	timer.Stop()

	deriveFlowField(grid, config, res)

	res.Success = true
	res.Stats.Success = true

	return res
}

type pqItem struct {
	pos  geom.Point
	cost float64
}

type costPQ []pqItem

func (q costPQ) Len() int            { return len(q) }
func (q costPQ) Less(i, j int) bool  { return q[i].cost < q[j].cost }
func (q costPQ) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *costPQ) Push(x interface{}) { *q = append(*q, x.(pqItem)) }
func (q *costPQ) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

// expand runs the best-first (Dijkstra-style) flood from every walkable
// goal cell at cost 0, writing into res.IntegrationField.
func expand(grid *gridmodel.Grid, goals []geom.Point, config Config, res *Result, maxIter int) {
	pq := &costPQ{}
	heap.Init(pq)

	for _, g := range goals {
		if !grid.InBounds(g) || !grid.Walkable(g) {
			continue
		}
		idx := grid.Index(g)
		if res.IntegrationField[idx] == 0 {
			continue // duplicate goal
		}
		res.IntegrationField[idx] = 0
		heap.Push(pq, pqItem{pos: g, cost: 0})
	}

	iterations := 0
	for pq.Len() > 0 {
		iterations++
		if iterations > maxIter {
			return
		}
		res.Stats.Iterations++

		top := heap.Pop(pq).(pqItem)
		curIdx := grid.Index(top.pos)
		if top.cost > res.IntegrationField[curIdx] {
			continue // stale entry
		}
		res.Stats.NodesExplored++

		for _, n := range grid.Neighbours(top.pos, config.Movement) {
			step := gridmodel.MovementCost(top.pos, n, config.Movement)
			newCost := top.cost + step
			nIdx := grid.Index(n)
			if newCost < res.IntegrationField[nIdx] {
				res.IntegrationField[nIdx] = newCost
				heap.Push(pq, pqItem{pos: n, cost: newCost})
			}
		}
	}
}

// deriveFlowField computes, for each walkable non-goal cell, the unit or
// raw vector toward the neighbour with the strictly lowest integration
// cost, ties broken by gridmodel's fixed neighbour order.
func deriveFlowField(grid *gridmodel.Grid, config Config, res *Result) {
	n := grid.Width * grid.Height
	res.FlowField = make([]geom.Vec2, n)
	res.Valid = make([]bool, n)

	for idx := 0; idx < n; idx++ {
		p := grid.Coordinate(idx)
		if !grid.Walkable(p) || res.IntegrationField[idx] == Unreachable {
			continue
		}
		if res.IntegrationField[idx] == 0 {
			continue // goal cell: zero vector, not valid (terminus)
		}

		best := Unreachable
		var bestDir geom.Point
		found := false
		for _, nb := range grid.Neighbours(p, config.Movement) {
			c := res.IntegrationField[grid.Index(nb)]
			if c < best {
				best = c
				bestDir = nb.Sub(p)
				found = true
			}
		}
		if !found || best >= res.IntegrationField[idx] {
			continue
		}

		vec := geom.Vec2{X: float64(bestDir.X), Y: float64(bestDir.Y)}
		if config.NormalizeFlowVectors {
			mag := vec.X*vec.X + vec.Y*vec.Y
			if mag > 0 {
				inv := 1 / math.Sqrt(mag)
				vec.X *= inv
				vec.Y *= inv
			}
		}
		res.FlowField[idx] = vec
		res.Valid[idx] = true
	}
}
