package hpastar

import (
	"container/heap"

	"github.com/katalvlaran/gridpath/geom"
)

// abstractNode is one entry in the abstract-graph open set, keyed by
// vertex ID with its world position carried alongside for the heuristic.
type abstractNode struct {
	id     string
	pos    geom.Point
	g      float64
	parent string
	closed bool
}

type abstractItem struct {
	id string
	f  float64
}

type abstractOpenSet []abstractItem

func (s abstractOpenSet) Len() int            { return len(s) }
func (s abstractOpenSet) Less(i, j int) bool   { return s[i].f < s[j].f }
func (s abstractOpenSet) Swap(i, j int)        { s[i], s[j] = s[j], s[i] }
func (s *abstractOpenSet) Push(x interface{})  { *s = append(*s, x.(abstractItem)) }
func (s *abstractOpenSet) Pop() interface{} {
	old := *s
	n := len(old)
	item := old[n-1]
	*s = old[:n-1]

	return item
}

// abstractGraph is the subset of corepath.Graph's API the abstract
// search needs, so a query can search an overlay (persisted graph plus
// ephemeral start/goal edges) without mutating the shared *corepath.Graph.
type abstractGraph interface {
	NeighborIDs(id string) ([]string, error)
	EdgeWeight(u, v string) (float64, bool)
}

// searchAbstractGraph runs A* over graph from startID to the nearest of
// goalIDs (world positions given in pos, used for the Euclidean
// heuristic), returning the vertex-ID path and its total cost.
func searchAbstractGraph(graph abstractGraph, startID string, goalIDs []string, pos map[string]geom.Point, maxIterations int) ([]string, float64, bool) {
	goalSet := make(map[string]bool, len(goalIDs))
	for _, g := range goalIDs {
		goalSet[g] = true
	}

	nodes := map[string]*abstractNode{
		startID: {id: startID, pos: pos[startID], g: 0, parent: ""},
	}
	open := &abstractOpenSet{}
	heap.Init(open)
	heap.Push(open, abstractItem{id: startID, f: nearestHeuristic(pos[startID], goalIDs, pos)})

	iterations := 0
	for open.Len() > 0 {
		iterations++
		if maxIterations > 0 && iterations > maxIterations {
			return nil, 0, false
		}
		top := heap.Pop(open).(abstractItem)
		cur := nodes[top.id]
		if cur.closed {
			continue
		}
		cur.closed = true

		if goalSet[cur.id] {
			return reconstructAbstract(nodes, cur.id), cur.g, true
		}

		neighborIDs, err := graph.NeighborIDs(cur.id)
		if err != nil {
			continue
		}
		for _, nid := range neighborIDs {
			w, ok := graph.EdgeWeight(cur.id, nid)
			if !ok {
				continue
			}
			tentativeG := cur.g + w
			n, seen := nodes[nid]
			if !seen {
				n = &abstractNode{id: nid, pos: pos[nid], g: tentativeG, parent: cur.id}
				nodes[nid] = n
				heap.Push(open, abstractItem{id: nid, f: tentativeG + nearestHeuristic(n.pos, goalIDs, pos)})
				continue
			}
			if n.closed || tentativeG >= n.g {
				continue
			}
			n.g = tentativeG
			n.parent = cur.id
			heap.Push(open, abstractItem{id: nid, f: tentativeG + nearestHeuristic(n.pos, goalIDs, pos)})
		}
	}

	return nil, 0, false
}

func nearestHeuristic(from geom.Point, goalIDs []string, pos map[string]geom.Point) float64 {
	best := geom.Euclidean(from, pos[goalIDs[0]])
	for _, g := range goalIDs[1:] {
		if d := geom.Euclidean(from, pos[g]); d < best {
			best = d
		}
	}

	return best
}

func reconstructAbstract(nodes map[string]*abstractNode, goalID string) []string {
	var path []string
	for id := goalID; id != ""; {
		path = append([]string{id}, path...)
		id = nodes[id].parent
	}

	return path
}
