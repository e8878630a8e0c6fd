// Package corepath is a small, thread-safe labeled-graph substrate: a
// weighted, undirected graph of string-keyed vertices, sized for
// hpastar's abstract graph of cluster entrances.
//
// hpastar is the sole caller. It keys vertices by entrance and query
// point (pointKey-encoded world coordinates) but looks up the actual
// geom.Point values through its own side table, not through the graph;
// corepath only needs to answer "what is id adjacent to, at what
// weight" for the abstract search, so that is the entire surface it
// exports.
//
// corepath carries no directed/multi-edge/loop configuration knobs:
// nothing in gridpath needs a directed or parallel-edge graph, so that
// surface would be unused weight here. Mutation is synchronized with a
// single sync.RWMutex rather than a split read/write-path lock, since
// callers never hold a corepath.Graph open across concurrent writers
// and readers.
package corepath
