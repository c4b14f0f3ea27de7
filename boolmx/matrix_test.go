package boolmx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dendrograph/graphcore/boolmx"
)

// TestSetAtRoundTrip verifies a set entry reads back true and an absent
// entry reads back false.
func TestSetAtRoundTrip(t *testing.T) {
	m := boolmx.New(4)
	require.False(t, m.At(1, 2))

	m.Set(1, 2, true)
	require.True(t, m.At(1, 2))

	m.Set(1, 2, false)
	require.False(t, m.At(1, 2))
}

// TestNewRejectsNegativeDim verifies New panics on a negative dimension.
func TestNewRejectsNegativeDim(t *testing.T) {
	require.Panics(t, func() { boolmx.New(-1) })
}

// TestNVals counts exactly the set entries.
func TestNVals(t *testing.T) {
	m := boolmx.New(3)
	require.Equal(t, 0, m.NVals())

	m.Set(0, 0, true)
	m.Set(1, 2, true)
	require.Equal(t, 2, m.NVals())

	m.Set(0, 0, false)
	require.Equal(t, 1, m.NVals())
}

// TestResizeGrowPreservesEntries verifies entries within the old bounds
// survive a grow.
func TestResizeGrowPreservesEntries(t *testing.T) {
	m := boolmx.New(2)
	m.Set(1, 1, true)

	m.Resize(5)
	require.Equal(t, 5, m.NRows())
	require.True(t, m.At(1, 1))
	require.False(t, m.At(4, 4))
}

// TestResizeShrinkDropsOutOfBoundsEntries verifies entries outside the
// new bounds are dropped, while in-bounds entries survive.
func TestResizeShrinkDropsOutOfBoundsEntries(t *testing.T) {
	m := boolmx.New(5)
	m.Set(0, 0, true)
	m.Set(4, 4, true)

	m.Resize(2)
	require.Equal(t, 2, m.NRows())
	require.True(t, m.At(0, 0))
	require.Equal(t, 1, m.NVals())
}

// TestExtractColMasksExcludedRow verifies ExtractCol reports false for
// excludeRow regardless of its stored value, leaving the rest intact.
func TestExtractColMasksExcludedRow(t *testing.T) {
	m := boolmx.New(4)
	m.Set(0, 2, true)
	m.Set(1, 2, true)
	m.Set(3, 2, true)

	col := m.ExtractCol(2, 1)
	require.Equal(t, []bool{true, false, false, true}, col)

	full := m.ExtractCol(2, -1)
	require.Equal(t, []bool{true, true, false, true}, full)
}

// TestAssignColRoundTrip verifies AssignCol overwrites exactly the given
// column and nothing else.
func TestAssignColRoundTrip(t *testing.T) {
	m := boolmx.New(3)
	m.Set(0, 1, true) // a decoy entry in a different column

	m.AssignCol(0, []bool{true, false, true})
	require.True(t, m.At(0, 0))
	require.False(t, m.At(1, 0))
	require.True(t, m.At(2, 0))
	require.True(t, m.At(0, 1)) // untouched
}

// TestAssignColRejectsWrongLength verifies a length mismatch panics.
func TestAssignColRejectsWrongLength(t *testing.T) {
	m := boolmx.New(3)
	require.Panics(t, func() { m.AssignCol(0, []bool{true, false}) })
}

// TestExtractAssignRowRoundTrip verifies a row can be read out and
// written back unchanged.
func TestExtractAssignRowRoundTrip(t *testing.T) {
	m := boolmx.New(3)
	m.Set(1, 0, true)
	m.Set(1, 2, true)

	row := m.ExtractRow(1)
	require.Equal(t, []bool{true, false, true}, row)

	m2 := boolmx.New(3)
	m2.AssignRow(1, row)
	require.True(t, m2.At(1, 0))
	require.False(t, m2.At(1, 1))
	require.True(t, m2.At(1, 2))
}

// TestClearCol zeroes every entry of the targeted column only.
func TestClearCol(t *testing.T) {
	m := boolmx.New(3)
	m.Set(0, 1, true)
	m.Set(2, 1, true)
	m.Set(0, 2, true)

	m.ClearCol(1)
	require.False(t, m.At(0, 1))
	require.False(t, m.At(2, 1))
	require.True(t, m.At(0, 2)) // untouched
}

// TestToDense snapshots set entries as 1 and absent entries as 0.
func TestToDense(t *testing.T) {
	m := boolmx.New(2)
	m.Set(0, 1, true)

	d := m.ToDense()
	require.Equal(t, 1.0, d.At(0, 1))
	require.Equal(t, 0.0, d.At(1, 0))
}
