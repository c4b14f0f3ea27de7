package graphcore

import "github.com/dendrograph/graphcore/boolmx"

// Adjacency returns the current adjacency matrix handle, resized to
// node_count. External traversal/query clients may read it and perform
// linear-algebra queries, but must not resize it independently.
func (g *Graph) Adjacency() *boolmx.Matrix {
	return g.matrices.Adjacency(g.nodeCount)
}

// Relation returns the current handle for relation matrix idx, resized to
// node_count.
func (g *Graph) Relation(idx int) *boolmx.Matrix {
	return g.matrices.Relation(idx, g.nodeCount)
}

// Label returns the current handle for label matrix idx, resized to
// node_count.
func (g *Graph) Label(idx int) *boolmx.Matrix {
	return g.matrices.Label(idx, g.nodeCount)
}
