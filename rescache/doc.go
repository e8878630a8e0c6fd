// Package rescache implements the bounded, insertion-order result cache
// shared by every pathfinder: a mapping from a (grid, params) fingerprint
// to a prior result, evicting the first-inserted entry on overflow.
//
// What:
//
//   - Key: {GridDigest, Width, Height, Start, Goal, ParamsDigest}.
//   - Cache: fixed-capacity map with O(1) insert/lookup and O(1)
//     amortized eviction via a FIFO index queue.
//
// Why:
//
//   - Mirrors the lazy-decrease-key heap idiom dijkstra.nodePQ documents
//     ("push duplicates, skip stale entries") but applied to eviction
//     instead of priority: rather than scanning on every insert, a
//     bounded ring of keys is consulted only when the map is full.
//
// Notes:
//
//   - Do not hash the entire grid on every call: GridDigest samples a
//     fixed stride of cells into a checksum, and Key carries width and
//     height alongside it.
//   - Cache hits are behaviourally indistinguishable from a fresh run
//     except stats.ExecutionTime and stats.Iterations may read 0.
//   - Clearing the cache resets hit/miss counters, not historical stats.
package rescache
