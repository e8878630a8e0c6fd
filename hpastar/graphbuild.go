package hpastar

import (
	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
	"github.com/katalvlaran/gridpath/internal/corepath"
)

// buildAbstractGraph adds every entrance as a vertex, connects entrances
// within the same cluster with an edge weighted by the real A* path cost
// between them (restricted to that cluster via clusterGrid), and
// connects the two sides of each border crossing with a direct edge
// whose weight is the cardinal or diagonal step cost.
func buildAbstractGraph(grid *gridmodel.Grid, clusters []cluster, entrances []entrance, config Config, find findPathFunc) (*corepath.Graph, error) {
	graph := corepath.NewGraph()

	byCluster := make(map[int][]entrance)
	for _, e := range entrances {
		if err := graph.AddVertex(entranceVertexID(e.Pos)); err != nil {
			return nil, err
		}
		byCluster[e.ClusterA] = append(byCluster[e.ClusterA], e)
		if e.ClusterB >= 0 {
			if err := graph.AddVertex(entranceVertexID(e.PosB)); err != nil {
				return nil, err
			}
			byCluster[e.ClusterB] = append(byCluster[e.ClusterB], e)
		}
	}

	acfg := astar.DefaultConfig()
	acfg.Movement = config.Movement
	acfg.ValidateInput = false
	if config.MaxIterations > 0 {
		acfg.MaxIterations = config.MaxIterations
	}

	for _, c := range clusters {
		members := byCluster[c.ID]
		if len(members) < 2 {
			continue
		}
		sub, err := clusterGrid(grid, c)
		if err != nil {
			return nil, err
		}
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				aPos, bPos := members[i].posIn(c.ID), members[j].posIn(c.ID)
				res := find(toLocal(c, aPos), toLocal(c, bPos), sub, acfg)
				if !res.Success {
					continue
				}
				if err := graph.AddEdge(entranceVertexID(aPos), entranceVertexID(bPos), res.TotalCost); err != nil {
					return nil, err
				}
			}
		}
	}

	addCrossingEdges(graph, entrances, config)

	return graph, nil
}

// entranceSide is one cluster-local vertex of a border crossing: either
// an entrance's Pos (its ClusterA side) or PosB (its ClusterB side).
type entranceSide struct {
	pos                geom.Point
	clusterA, clusterB int
}

// addCrossingEdges links entrance-side points that sit on opposite sides
// of the same border crossing (adjacent or diagonal-adjacent cells) with
// a direct step-cost edge. Every entrance's own Pos/PosB pair is one
// step apart by construction, so this always links the two sides hpastar
// just split a single crossing into; entrances from the same run split
// across MaxEntranceWidth segments add further adjacent pairs.
func addCrossingEdges(graph *corepath.Graph, entrances []entrance, config Config) {
	var sides []entranceSide
	for _, e := range entrances {
		if e.ClusterB < 0 {
			continue
		}
		sides = append(sides, entranceSide{pos: e.Pos, clusterA: e.ClusterA, clusterB: e.ClusterB})
		sides = append(sides, entranceSide{pos: e.PosB, clusterA: e.ClusterA, clusterB: e.ClusterB})
	}

	for i := 0; i < len(sides); i++ {
		for j := i + 1; j < len(sides); j++ {
			a, b := sides[i], sides[j]
			if a.clusterA != b.clusterA || a.clusterB != b.clusterB {
				continue
			}
			if geom.Chebyshev(a.pos, b.pos) != 1 {
				continue
			}
			cost := config.Movement.CardinalCost
			if a.pos.X != b.pos.X && a.pos.Y != b.pos.Y {
				cost = config.Movement.DiagonalCost
			}
			_ = graph.AddEdge(entranceVertexID(a.pos), entranceVertexID(b.pos), cost)
		}
	}
}
