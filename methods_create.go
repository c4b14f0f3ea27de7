package graphcore

import (
	"github.com/dendrograph/graphcore/blockpool"
	"github.com/dendrograph/graphcore/internal/assert"
)

// CreateNodes grows block storage to accommodate n more nodes, increments
// node_count by n, resizes the adjacency matrix, and — if labels is
// non-nil — sets the diagonal entry L_label[id,id]=true for every new
// node whose label is not NoLabel. labels, if non-nil, must have length n.
//
// Returns the starting ID of the newly created range [start, start+n).
//
// Complexity: O(n) for node initialization plus O(n) per touched label
// matrix's diagonal writes.
func (g *Graph) CreateNodes(n int, labels []int) int {
	assert.True(n >= 0, "graphcore: CreateNodes n must be >= 0, got %d", n)
	if labels != nil {
		assert.True(len(labels) == n, "graphcore: labels length %d must equal n %d", len(labels), n)
	}

	start := g.nodeCount
	if n == 0 {
		return start
	}

	newTotal := g.nodeCount + n
	g.blocks.Grow(newTotal)
	g.matrices.SyncNodeCap(g.blocks.Cap())
	g.nodeCount = newTotal

	for id := start; id < newTotal; id++ {
		node := g.blocks.Lookup(id, g.nodeCount)
		node.Props = nil
	}

	// Resize-on-read: fetching the adjacency matrix now brings its
	// dimension in line with the new node_count.
	g.matrices.Adjacency(g.nodeCount)

	if labels != nil {
		for i, lbl := range labels {
			if lbl == NoLabel {
				continue
			}
			id := start + i
			L := g.matrices.Label(lbl, g.nodeCount)
			L.Set(id, id, true)
		}
	}

	return start
}

// CreateNodesIter behaves like CreateNodes but also returns a cursor over
// the newly created ID range.
func (g *Graph) CreateNodesIter(n int, labels []int) (start int, it *blockpool.Iterator) {
	start = g.CreateNodes(n, labels)

	return start, g.blocks.Iter(start, start+n, 1)
}
