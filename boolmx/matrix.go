package boolmx

import (
	"gonum.org/v1/gonum/mat"

	"github.com/james-bowman/sparse"

	"github.com/dendrograph/graphcore/internal/assert"
)

// Matrix is a square Boolean-valued sparse matrix: a stored entry is true,
// an absent entry is false. Encoding convention: M[dest, src] means an
// edge from src to dest.
//
// Matrix is not safe for concurrent use without external synchronization;
// matrixpool is the sole owner and serializes access behind its own
// resize mutex plus the caller's own write serialization.
type Matrix struct {
	dok *sparse.DOK
}

// New allocates a dim x dim Boolean matrix.
func New(dim int) *Matrix {
	assert.True(dim >= 0, "boolmx: dim must be >= 0, got %d", dim)

	return &Matrix{dok: sparse.NewDOK(dim, dim)}
}

// NRows returns the current row count (== current column count; Matrix is
// always square).
func (m *Matrix) NRows() int {
	r, _ := m.dok.Dims()

	return r
}

// NVals forces materialization of pending kernel work and returns the
// number of true entries. A DOK-backed matrix has no deferred writes, so
// nothing is flushed here; the count is a full scan of all NRows x NRows
// coordinates. A kernel that does defer work (a real GraphBLAS backend,
// say) would do real materialization at this call.
func (m *Matrix) NVals() int {
	n := m.NRows()
	count := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m.dok.At(i, j) != 0 {
				count++
			}
		}
	}

	return count
}

// At reports whether entry (row, col) is set.
func (m *Matrix) At(row, col int) bool {
	return m.dok.At(row, col) != 0
}

// Set assigns entry (row, col).
func (m *Matrix) Set(row, col int, v bool) {
	if v {
		m.dok.Set(row, col, 1)
	} else {
		m.dok.Set(row, col, 0)
	}
}

// Resize reallocates the matrix to dim x dim, preserving every entry whose
// coordinates still fall within the new bounds. Growing never loses
// entries; shrinking drops entries outside [0,dim).
func (m *Matrix) Resize(dim int) {
	assert.True(dim >= 0, "boolmx: dim must be >= 0, got %d", dim)

	oldDim := m.NRows()
	next := sparse.NewDOK(dim, dim)

	limit := oldDim
	if dim < limit {
		limit = dim
	}
	for i := 0; i < limit; i++ {
		for j := 0; j < limit; j++ {
			if v := m.dok.At(i, j); v != 0 {
				next.Set(i, j, v)
			}
		}
	}
	m.dok = next
}

// ExtractCol returns the Boolean column col as a dense []bool of length
// NRows. If excludeRow is >= 0, that row's entry is reported as false
// regardless of its stored value — the masked column extract DeleteEdge
// uses to drop a single entry while preserving the rest of the column.
func (m *Matrix) ExtractCol(col, excludeRow int) []bool {
	n := m.NRows()
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		if i == excludeRow {
			continue
		}
		out[i] = m.dok.At(i, col) != 0
	}

	return out
}

// AssignCol overwrites column col with vals, which must have length NRows.
func (m *Matrix) AssignCol(col int, vals []bool) {
	assert.True(len(vals) == m.NRows(), "boolmx: AssignCol length %d != NRows %d", len(vals), m.NRows())
	for i, v := range vals {
		m.Set(i, col, v)
	}
}

// ExtractRow returns the Boolean row as a dense []bool of length NRows.
// Equivalent to a column extract against the matrix transpose, but reads
// the row directly without materializing one.
func (m *Matrix) ExtractRow(row int) []bool {
	n := m.NRows()
	out := make([]bool, n)
	for j := 0; j < n; j++ {
		out[j] = m.dok.At(row, j) != 0
	}

	return out
}

// AssignRow overwrites row with vals, which must have length NRows.
func (m *Matrix) AssignRow(row int, vals []bool) {
	assert.True(len(vals) == m.NRows(), "boolmx: AssignRow length %d != NRows %d", len(vals), m.NRows())
	for j, v := range vals {
		m.Set(row, j, v)
	}
}

// ClearCol sets every entry of column col to false.
func (m *Matrix) ClearCol(col int) {
	n := m.NRows()
	for i := 0; i < n; i++ {
		m.Set(i, col, false)
	}
}

// ToDense materializes the matrix into a *mat.Dense snapshot for debugging
// or for handing to a gonum-based consumer that wants ordinary dense
// linear algebra over the current state. Not used on any hot path.
func (m *Matrix) ToDense() *mat.Dense {
	n := m.NRows()
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m.dok.At(i, j) != 0 {
				d.Set(i, j, 1)
			}
		}
	}

	return d
}
