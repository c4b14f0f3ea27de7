package blockpool

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/dendrograph/graphcore/internal/assert"
)

// DefaultBlockCap is NODEBLOCK_CAP when the caller does not override it via
// graphcfg.WithBlockCap. Power of two, per the glossary's recommendation.
const DefaultBlockCap = 1024

// growthFactor is the multiplier applied to block_count on each Grow call
// that needs more capacity. Doubling amortizes reallocation of the index
// array over geometric growth.
const growthFactor = 2

// Node is an entity with a mutable ID and opaque caller-owned attributes.
// Its address is stable for its lifetime after creation; its ID field is
// rewritten in place when the deletion engine relocates it into a vacated
// slot.
type Node struct {
	// ID is the node's current position in the dense [0, node_count) space.
	ID int

	// Props stores arbitrary caller data. blockpool never interprets it.
	Props map[string]any
}

// block is a fixed-capacity array of Node slots plus a forward link.
// Blocks are allocated once and never freed individually; freeing happens
// only when the owning Pool is freed.
type block struct {
	nodes []Node
	next  *block
}

// Pool is the node block chain plus its ID→block index.
//
// mu guards only the index slice and the block-count/tail bookkeeping
// during Grow; it does not protect individual Node contents, which callers
// serialize themselves per the package's concurrency model.
type Pool struct {
	mu sync.RWMutex

	blockCap   int
	blocks     []*block // index: id/blockCap -> block; len == blockCount
	tail       *block
	blockCount int

	log zerolog.Logger
}

// New constructs an empty Pool with the given block capacity. blockCap must
// be positive; callers normally pass DefaultBlockCap or a
// graphcfg-overridden value.
func New(blockCap int, log zerolog.Logger) *Pool {
	assert.True(blockCap > 0, "blockpool: blockCap must be > 0, got %d", blockCap)

	return &Pool{blockCap: blockCap, log: log}
}

// Cap returns node_cap = block_count * NODEBLOCK_CAP.
func (p *Pool) Cap() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.blockCount * p.blockCap
}

// BlockCap returns the configured NODEBLOCK_CAP for this pool.
func (p *Pool) BlockCap() int {
	return p.blockCap
}

// Lookup returns a reference to the node in slot id%blockCap of block
// id/blockCap, and writes id into the node's ID field so the returned
// node is authoritative even if it was relocated here by the deletion
// engine. nodeCount is the caller's current live node count; Lookup
// asserts id is within [0, nodeCount).
func (p *Pool) Lookup(id, nodeCount int) *Node {
	assert.True(id >= 0 && id < nodeCount, "blockpool: id %d out of range [0,%d)", id, nodeCount)

	p.mu.RLock()
	blk := p.blocks[id/p.blockCap]
	p.mu.RUnlock()

	n := &blk.nodes[id%p.blockCap]
	n.ID = id

	return n
}

// Grow ensures node_cap >= newTotal, doubling block_count until it does.
// It never moves existing blocks; only the index array is reallocated.
// A no-op if capacity already covers newTotal.
func (p *Pool) Grow(newTotal int) {
	assert.True(newTotal >= 0, "blockpool: newTotal must be >= 0, got %d", newTotal)

	p.mu.Lock()
	defer p.mu.Unlock()

	if newTotal <= p.blockCount*p.blockCap {
		return
	}

	oldCount := p.blockCount
	newCount := p.blockCount
	if newCount == 0 {
		newCount = 1
	}
	for newCount*p.blockCap < newTotal {
		newCount *= growthFactor
	}

	grown := make([]*block, newCount)
	copy(grown, p.blocks)
	for i := oldCount; i < newCount; i++ {
		b := &block{nodes: make([]Node, p.blockCap)}
		grown[i] = b
		if p.tail != nil {
			p.tail.next = b
		}
		p.tail = b
	}
	p.blocks = grown
	p.blockCount = newCount

	p.log.Debug().
		Str("event", "blockpool.grow").
		Int("old_block_count", oldCount).
		Int("new_block_count", newCount).
		Int("node_cap", newCount*p.blockCap).
		Msg("grew node block pool")
}

// Iter returns a cursor over IDs [start, end) advancing by stride, starting
// at the block that currently owns id=start. The cursor is invalidated by
// any mutation of node_count or node relocation; callers must not mutate
// the graph while iterating.
func (p *Pool) Iter(start, end, stride int) *Iterator {
	assert.True(stride > 0, "blockpool: stride must be > 0, got %d", stride)
	assert.True(start >= 0, "blockpool: start must be >= 0, got %d", start)

	it := &Iterator{id: start, end: end, stride: stride, blockCap: p.blockCap}
	if start < end {
		p.mu.RLock()
		it.cur = p.blocks[start/p.blockCap]
		p.mu.RUnlock()
		it.pos = start % p.blockCap
	}

	return it
}

// Free releases the block chain and its index. Node.Props memory is not
// explicitly reclaimed here; once the chain is unreachable the Go garbage
// collector reclaims it along with everything Props referenced.
func (p *Pool) Free() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.blocks = nil
	p.tail = nil
	p.blockCount = 0
}
