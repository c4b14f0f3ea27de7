package graphcore

import "github.com/dendrograph/graphcore/blockpool"

// ScanNodes returns a cursor over every live node in ascending ID order.
func (g *Graph) ScanNodes() *blockpool.Iterator {
	return g.blocks.Iter(0, g.nodeCount, 1)
}
