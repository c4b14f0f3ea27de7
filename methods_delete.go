package graphcore

import (
	"github.com/dendrograph/graphcore/boolmx"
	"github.com/dendrograph/graphcore/graphlog"
	"github.com/dendrograph/graphcore/internal/assert"
)

// DeleteNodes removes the given node IDs and restores invariant 4 (dense
// [0, node_count) IDs) in place via swap-compaction: every surviving
// high-ID node is relocated into a vacated low slot, so only |ids| row/
// column migrations are performed rather than a full matrix rebuild.
//
// ids must be sorted ascending with no duplicates; violating this is a
// programmer error.
//
// Algorithm: let post = node_count - len(ids). Walk toReplaceIdx up
// through ids and idToSave down from node_count-1, skipping any idToSave
// that is itself scheduled for deletion, and relocate the surviving node
// at idToSave into slot ids[toReplaceIdx] until ids[toReplaceIdx] >=
// post — at that point every remaining deletion target is already
// beyond the new boundary and needs no relocation, only truncation.
func (g *Graph) DeleteNodes(ids []int) {
	k := len(ids)
	if k == 0 {
		return
	}

	for i, id := range ids {
		assert.True(id >= 0 && id < g.nodeCount, "graphcore: DeleteNodes id %d out of range [0,%d)", id, g.nodeCount)
		if i > 0 {
			assert.True(ids[i-1] < id, "graphcore: DeleteNodes ids must be sorted ascending with no duplicates")
		}
	}

	post := g.nodeCount - k
	adj := g.matrices.Adjacency(g.nodeCount)
	relCount := g.matrices.RelationCount()
	labelCount := g.matrices.LabelCount()

	toReplaceIdx := 0
	idToSave := g.nodeCount - 1
	largestDeleteIdx := k - 1

	for toReplaceIdx < k && ids[toReplaceIdx] < post {
		for largestDeleteIdx >= 0 && idToSave == ids[largestDeleteIdx] {
			idToSave--
			largestDeleteIdx--
		}

		g.relocate(ids[toReplaceIdx], idToSave, adj, relCount, labelCount)

		toReplaceIdx++
		idToSave--
	}

	g.nodeCount = post
	// Force adjacency's resize now; relation/label matrices resize
	// lazily on their next access.
	g.matrices.Adjacency(g.nodeCount)

	graphlog.Compact(g.log, k, g.nodeCount)
}

// relocate moves the surviving node at src into the vacated slot dst,
// rewriting every matrix's row/column and the label diagonals, then
// physically copying the node record and overwriting its ID.
func (g *Graph) relocate(dst, src int, adj *boolmx.Matrix, relCount, labelCount int) {
	migrateEdges(adj, dst, src)
	for i := 0; i < relCount; i++ {
		migrateEdges(g.matrices.Relation(i, g.nodeCount), dst, src)
	}
	for i := 0; i < labelCount; i++ {
		migrateLabel(g.matrices.Label(i, g.nodeCount), dst, src)
	}

	srcNode := g.blocks.Lookup(src, g.nodeCount)
	dstNode := g.blocks.Lookup(dst, g.nodeCount)
	dstNode.Props = srcNode.Props
	dstNode.ID = dst
}

// migrateEdges rewrites m's row and column for the relocation dst<-src:
// clear the destination column, copy the source row into the destination
// row, then copy the source column into the destination column.
func migrateEdges(m *boolmx.Matrix, dst, src int) {
	m.ClearCol(dst)
	row := m.ExtractRow(src)
	m.AssignRow(dst, row)
	col := m.ExtractCol(src, -1)
	m.AssignCol(dst, col)
}

// migrateLabel replaces the destination's diagonal bit with the source's:
// if src has the label and dst did not, set it; if dst had it and src
// does not, clear it. Equal values need no change.
func migrateLabel(L *boolmx.Matrix, dst, src int) {
	srcHas := L.At(src, src)
	dstHas := L.At(dst, dst)

	switch {
	case srcHas && !dstHas:
		L.Set(dst, dst, true)
	case dstHas && !srcHas:
		L.ClearCol(dst)
	}
}
