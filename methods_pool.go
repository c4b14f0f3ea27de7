package graphcore

// AddLabelMatrix allocates a fresh label matrix at the current node_cap
// and returns its index.
func (g *Graph) AddLabelMatrix() int {
	return g.matrices.AddLabelMatrix()
}

// AddRelationMatrix allocates a fresh relation matrix at the current
// node_cap and returns its index.
func (g *Graph) AddRelationMatrix() int {
	return g.matrices.AddRelationMatrix()
}

// CommitPendingOps forces materialization of every matrix the graph owns
// by querying each one's non-zero count. The backing kernel may defer
// work internally; this is the documented way to flush it before an
// external reader inspects matrix state directly.
func (g *Graph) CommitPendingOps() {
	g.matrices.Adjacency(g.nodeCount).NVals()
	for i := 0; i < g.matrices.RelationCount(); i++ {
		g.matrices.Relation(i, g.nodeCount).NVals()
	}
	for i := 0; i < g.matrices.LabelCount(); i++ {
		g.matrices.Label(i, g.nodeCount).NVals()
	}
}

// Free releases the node block pool and every matrix. Node.Props memory
// is not explicitly walked and freed here; it becomes unreachable (and
// so collectible) once the block chain it lives in is released.
func (g *Graph) Free() {
	g.blocks.Free()
	g.matrices.Free()
	g.nodeCount = 0
}
