package matrixpool

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/dendrograph/graphcore/boolmx"
	"github.com/dendrograph/graphcore/graphlog"
	"github.com/dendrograph/graphcore/internal/assert"
)

// Pool is the graph's matrix pool: one adjacency matrix plus growable
// arrays of relation and label matrices, all lazily resized to the
// current node count on access.
//
// mu is the single coarse mutex guarding resize of every matrix in the
// pool, and also the pool's own bookkeeping (nodeCap, the relation and
// label slices and their capacities). It lives here because this pool is
// the only place resize happens. Graph holds exactly one Pool, so there
// is exactly one resize mutex per graph.
type Pool struct {
	mu sync.Mutex

	nodeCap int // node_cap at the time a new matrix is allocated

	adjacency *boolmx.Matrix

	relations   []*boolmx.Matrix
	relationCap int
	step        int

	labels   []*boolmx.Matrix
	labelCap int

	log zerolog.Logger
}

// New constructs a Pool with an adjacency matrix pre-sized to initialCap
// and an empty relation/label pool growing by step entries at a time.
func New(initialCap, step int, log zerolog.Logger) *Pool {
	assert.True(initialCap >= 0, "matrixpool: initialCap must be >= 0, got %d", initialCap)
	assert.True(step > 0, "matrixpool: step must be > 0, got %d", step)

	return &Pool{
		nodeCap:   initialCap,
		adjacency: boolmx.New(initialCap),
		step:      step,
		log:       log,
	}
}

// SyncNodeCap records the graph's current node_cap so the next
// AddLabelMatrix/AddRelationMatrix call allocates at the right size.
func (p *Pool) SyncNodeCap(nodeCap int) {
	p.mu.Lock()
	p.nodeCap = nodeCap
	p.mu.Unlock()
}

// resizeIfNeeded implements the lazy double-checked-locking resize: a
// cheap unlocked check first, then a locked re-check before the actual
// resize, so the common case (already correctly sized) never takes the
// lock.
func (p *Pool) resizeIfNeeded(m *boolmx.Matrix, kind string, index, nodeCount int) {
	if m.NRows() == nodeCount {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if m.NRows() != nodeCount {
		from := m.NRows()
		m.Resize(nodeCount)
		graphlog.Resize(p.log, kind, index, from, nodeCount)
	}
}

// Adjacency returns the adjacency matrix, resized to nodeCount if needed.
func (p *Pool) Adjacency(nodeCount int) *boolmx.Matrix {
	p.resizeIfNeeded(p.adjacency, "adjacency", -1, nodeCount)

	return p.adjacency
}

// RelationCount returns the number of relation matrices created so far.
func (p *Pool) RelationCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.relations)
}

// LabelCount returns the number of label matrices created so far.
func (p *Pool) LabelCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.labels)
}

// Relation returns relation matrix idx, resized to nodeCount if needed.
func (p *Pool) Relation(idx, nodeCount int) *boolmx.Matrix {
	p.mu.Lock()
	assert.True(idx >= 0 && idx < len(p.relations), "matrixpool: relation index %d out of range [0,%d)", idx, len(p.relations))
	m := p.relations[idx]
	p.mu.Unlock()

	p.resizeIfNeeded(m, "relation", idx, nodeCount)

	return m
}

// Label returns label matrix idx, resized to nodeCount if needed.
func (p *Pool) Label(idx, nodeCount int) *boolmx.Matrix {
	p.mu.Lock()
	assert.True(idx >= 0 && idx < len(p.labels), "matrixpool: label index %d out of range [0,%d)", idx, len(p.labels))
	m := p.labels[idx]
	p.mu.Unlock()

	p.resizeIfNeeded(m, "label", idx, nodeCount)

	return m
}

// AddRelationMatrix allocates a fresh matrix at the current node_cap and
// appends it to the relation pool, growing the pool's backing capacity by
// a fixed step when full. Returns the new matrix's index.
func (p *Pool) AddRelationMatrix() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.relations) == p.relationCap {
		newCap := p.relationCap + p.step
		grown := make([]*boolmx.Matrix, len(p.relations), newCap)
		copy(grown, p.relations)
		p.relations = grown
		p.relationCap = newCap
	}
	p.relations = append(p.relations, boolmx.New(p.nodeCap))

	return len(p.relations) - 1
}

// AddLabelMatrix allocates a fresh matrix at the current node_cap and
// appends it to the label pool, growing the pool's backing capacity by a
// fixed step when full. Returns the new matrix's index.
func (p *Pool) AddLabelMatrix() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.labels) == p.labelCap {
		newCap := p.labelCap + p.step
		grown := make([]*boolmx.Matrix, len(p.labels), newCap)
		copy(grown, p.labels)
		p.labels = grown
		p.labelCap = newCap
	}
	p.labels = append(p.labels, boolmx.New(p.nodeCap))

	return len(p.labels) - 1
}

// Free drops references to every matrix in the pool.
func (p *Pool) Free() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.adjacency = nil
	p.relations = nil
	p.labels = nil
}
