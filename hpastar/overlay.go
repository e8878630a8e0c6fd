package hpastar

// overlayGraph augments a persisted *Index graph with ephemeral edges
// for one query's start/goal nodes, without mutating the shared graph
// (Index.graph is reused across queries).
type overlayGraph struct {
	base  abstractGraph
	extra map[string]map[string]float64
}

func newOverlayGraph(base abstractGraph) *overlayGraph {
	return &overlayGraph{base: base, extra: make(map[string]map[string]float64)}
}

func (o *overlayGraph) addEdge(u, v string, weight float64) {
	if o.extra[u] == nil {
		o.extra[u] = make(map[string]float64)
	}
	if o.extra[v] == nil {
		o.extra[v] = make(map[string]float64)
	}
	o.extra[u][v] = weight
	o.extra[v][u] = weight
}

func (o *overlayGraph) NeighborIDs(id string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	if base, err := o.base.NeighborIDs(id); err == nil {
		for _, n := range base {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	for n := range o.extra[id] {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}

	return out, nil
}

func (o *overlayGraph) EdgeWeight(u, v string) (float64, bool) {
	if o.extra[u] != nil {
		if w, ok := o.extra[u][v]; ok {
			return w, true
		}
	}

	return o.base.EdgeWeight(u, v)
}
