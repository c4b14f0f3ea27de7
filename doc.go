// Package graphcore is an in-memory, labeled, typed property-graph store
// whose edges are represented as a family of Boolean sparse matrices —
// one adjacency matrix, a growable array of per-relation-type matrices,
// and a growable array of per-label matrices — sharing a common square
// dimension equal to the current node count.
//
// Node identity is a dense, contiguous integer space allocated from
// blockpool.Pool, giving nodes stable addresses in memory while remaining
// indexable by ID. Graph is the coordinator: it enforces the square-
// dimension invariant, node-count monotonicity outside deletion, and the
// cross-consistency invariant between the adjacency matrix and the
// per-relation matrices, and it owns both the node block pool and the
// matrix pool.
//
// Graph is not safe for concurrent writers: bulk mutations (CreateNodes,
// ConnectNodes, DeleteEdge, DeleteNodes, LabelNodes) must be serialized by
// the caller. Matrix handles returned by accessors are always consistent
// with node_count at the moment of return — the pool's resize-on-read
// policy guarantees this under its own mutex — but a handle obtained
// before a concurrent CreateNodes may be stale the instant a writer runs
// again. Read-only traversal clients that only ever call accessors
// between writes are safe.
//
// The query language, its parser and AST, pattern-matching engines, node
// property storage, and any host key-value runtime that might persist a
// Graph are explicitly out of scope: this package has no import of any
// such collaborator, by design.
package graphcore
