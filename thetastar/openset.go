package thetastar

import "github.com/katalvlaran/gridpath/geom"

// node is a search node stored in a per-call arena; parent is an index
// into that arena (-1 for the start node). Unlike plain A*, parent may
// point past the immediate predecessor to any ancestor with line of
// sight, so the reconstructed path can contain non-adjacent segments.
type node struct {
	pos     geom.Point
	g, h, f float64
	parent  int
	closed  bool
}

// openItem is a heap entry referencing an arena slot by index.
type openItem struct {
	arenaIdx int
	f, g     float64
}

// openSet is a binary min-heap over openItem ordered by f ascending,
// tie-broken by larger g (deeper nodes) when tieBreak is set. It
// implements container/heap.Interface.
type openSet struct {
	items    []openItem
	tieBreak bool
}

func (s *openSet) Len() int { return len(s.items) }

func (s *openSet) Less(i, j int) bool {
	a, b := s.items[i], s.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if s.tieBreak {
		return a.g > b.g
	}

	return false
}

func (s *openSet) Swap(i, j int) { s.items[i], s.items[j] = s.items[j], s.items[i] }

func (s *openSet) Push(x interface{}) { s.items = append(s.items, x.(openItem)) }

func (s *openSet) Pop() interface{} {
	old := s.items
	n := len(old)
	item := old[n-1]
	s.items = old[:n-1]

	return item
}
