package graphcore

import (
	"github.com/dendrograph/graphcore/boolmx"
	"github.com/dendrograph/graphcore/internal/assert"
)

// DeleteEdge removes one edge. If relation is NoRelation, the entry is
// removed from the adjacency matrix and from every relation matrix that
// has it. Otherwise only the named relation matrix loses the entry; the
// adjacency matrix keeps it only if some other relation still has it. A
// non-existent edge is a no-op.
//
// Removal is a masked column extract that excludes the target row,
// assigned back to the column — this drops exactly the (dest,src) entry
// while leaving the rest of the column untouched.
func (g *Graph) DeleteEdge(src, dest, relation int) {
	assert.True(src >= 0 && src < g.nodeCount, "graphcore: DeleteEdge src %d out of range [0,%d)", src, g.nodeCount)
	assert.True(dest >= 0 && dest < g.nodeCount, "graphcore: DeleteEdge dest %d out of range [0,%d)", dest, g.nodeCount)

	adj := g.matrices.Adjacency(g.nodeCount)
	if !adj.At(dest, src) {
		return
	}

	if relation == NoRelation {
		for i := 0; i < g.matrices.RelationCount(); i++ {
			R := g.matrices.Relation(i, g.nodeCount)
			clearEntry(R, dest, src)
		}
		clearEntry(adj, dest, src)

		return
	}

	assert.True(relation >= 0 && relation < g.matrices.RelationCount(),
		"graphcore: DeleteEdge relation %d out of range [0,%d)", relation, g.matrices.RelationCount())
	R := g.matrices.Relation(relation, g.nodeCount)
	clearEntry(R, dest, src)

	for i := 0; i < g.matrices.RelationCount(); i++ {
		if g.matrices.Relation(i, g.nodeCount).At(dest, src) {
			return // some other relation still holds this edge; keep A
		}
	}
	clearEntry(adj, dest, src)
}

// clearEntry removes M[dest,src] via masked column extract + assign,
// leaving the rest of column src untouched.
func clearEntry(m *boolmx.Matrix, dest, src int) {
	col := m.ExtractCol(src, dest)
	m.AssignCol(src, col)
}
