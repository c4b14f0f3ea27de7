package graphcore

import (
	"github.com/rs/zerolog"

	"github.com/dendrograph/graphcore/blockpool"
	"github.com/dendrograph/graphcore/graphcfg"
	"github.com/dendrograph/graphcore/matrixpool"
)

// Sentinels for "no label chosen" / "no relation type". Matrix indices
// are always non-negative, so any negative value works; -1 is
// conventional.
const (
	NoLabel    = -1
	NoRelation = -1
)

// Triple is one (src, dest, relation) edge to connect. Relation may be
// NoRelation for an untyped edge.
type Triple struct {
	Src      int
	Dest     int
	Relation int
}

// Graph is the public coordinator: it owns a node block pool and a
// matrix pool, and every exported method either reads node_count/
// node_cap or mutates both pools together so the square-dimension and
// cross-consistency invariants hold at every externally observable
// moment.
type Graph struct {
	blocks   *blockpool.Pool
	matrices *matrixpool.Pool
	log      zerolog.Logger

	nodeCount int
}

// New constructs an empty Graph pre-sized to accommodate at least
// initialCap nodes without an immediate block-pool grow.
func New(initialCap int, opts ...graphcfg.Option) *Graph {
	cfg := graphcfg.New(opts...)

	blocks := blockpool.New(cfg.BlockCap(), cfg.Logger())
	blocks.Grow(initialCap)

	return &Graph{
		blocks:   blocks,
		matrices: matrixpool.New(blocks.Cap(), cfg.PoolStep(), cfg.Logger()),
		log:      cfg.Logger(),
	}
}

// NodeCount returns the graph's current live node count (== every
// matrix's logical dimension).
func (g *Graph) NodeCount() int { return g.nodeCount }

// NodeCap returns block_count * NODEBLOCK_CAP, the node block pool's
// current slot capacity.
func (g *Graph) NodeCap() int { return g.blocks.Cap() }

// RelationCount returns the number of relation matrices created so far.
func (g *Graph) RelationCount() int { return g.matrices.RelationCount() }

// LabelCount returns the number of label matrices created so far.
func (g *Graph) LabelCount() int { return g.matrices.LabelCount() }
