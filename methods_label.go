package graphcore

import (
	"github.com/dendrograph/graphcore/blockpool"
	"github.com/dendrograph/graphcore/internal/assert"
)

// LabelNodes sets L_label[id,id]=true for every id in the inclusive range
// [start, end].
func (g *Graph) LabelNodes(start, end, label int) {
	assert.True(start >= 0 && start <= end, "graphcore: LabelNodes range [%d,%d] invalid", start, end)
	assert.True(end < g.nodeCount, "graphcore: LabelNodes end %d out of range [0,%d)", end, g.nodeCount)
	assert.True(label >= 0 && label < g.matrices.LabelCount(), "graphcore: LabelNodes label %d out of range [0,%d)", label, g.matrices.LabelCount())

	L := g.matrices.Label(label, g.nodeCount)
	for id := start; id <= end; id++ {
		L.Set(id, id, true)
	}
}

// LabelNodesIter behaves like LabelNodes but also returns a cursor over
// the labeled range.
func (g *Graph) LabelNodesIter(start, end, label int) *blockpool.Iterator {
	g.LabelNodes(start, end, label)

	return g.blocks.Iter(start, end+1, 1)
}
