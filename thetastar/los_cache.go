package thetastar

import "github.com/katalvlaran/gridpath/geom"

// losCacheLimit bounds the per-call line-of-sight cache so a search
// over a very large grid cannot grow it without bound.
const losCacheLimit = 1 << 16

// losCache memoizes line-of-sight checks within a single FindPath call,
// keyed by a packed (from, to) coordinate pair. Theta*'s parent-update
// step repeatedly tests line of sight from the same ancestor to nearby
// neighbours, so this cache turns many calls into map lookups.
type losCache struct {
	m map[uint64]bool
}

func newLOSCache() *losCache {
	return &losCache{m: make(map[uint64]bool)}
}

func losKey(from, to geom.Point) uint64 {
	return uint64(uint32(from.X))<<48 | uint64(uint32(from.Y))<<32 | uint64(uint32(to.X))<<16 | uint64(uint32(to.Y))
}

// get returns the cached result and whether it was present.
func (c *losCache) get(from, to geom.Point) (bool, bool) {
	v, ok := c.m[losKey(from, to)]

	return v, ok
}

// put stores a result, silently declining once the cache hits its cap.
func (c *losCache) put(from, to geom.Point, hasLOS bool) {
	if len(c.m) >= losCacheLimit {
		return
	}
	c.m[losKey(from, to)] = hasLOS
}
