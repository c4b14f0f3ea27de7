package graphcore

import "github.com/dendrograph/graphcore/internal/assert"

// ConnectNodes sets A[dest,src]=true for every triple, and additionally
// R_relation[dest,src]=true when the triple names a relation. Matrices
// are Boolean, so repeated triples are idempotent: connecting the same
// pair twice leaves the same bit set.
func (g *Graph) ConnectNodes(triples []Triple) {
	if len(triples) == 0 {
		return
	}

	adj := g.matrices.Adjacency(g.nodeCount)
	for _, t := range triples {
		assert.True(t.Src >= 0 && t.Src < g.nodeCount, "graphcore: ConnectNodes src %d out of range [0,%d)", t.Src, g.nodeCount)
		assert.True(t.Dest >= 0 && t.Dest < g.nodeCount, "graphcore: ConnectNodes dest %d out of range [0,%d)", t.Dest, g.nodeCount)

		adj.Set(t.Dest, t.Src, true)

		if t.Relation != NoRelation {
			assert.True(t.Relation >= 0 && t.Relation < g.matrices.RelationCount(),
				"graphcore: ConnectNodes relation %d out of range [0,%d)", t.Relation, g.matrices.RelationCount())
			R := g.matrices.Relation(t.Relation, g.nodeCount)
			R.Set(t.Dest, t.Src, true)
		}
	}
}
