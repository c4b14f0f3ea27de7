package blockpool_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/dendrograph/graphcore/blockpool"
)

// TestNewRejectsNonPositiveBlockCap ensures New panics on a non-positive
// block capacity.
func TestNewRejectsNonPositiveBlockCap(t *testing.T) {
	require.Panics(t, func() { blockpool.New(0, zerolog.Nop()) })
	require.Panics(t, func() { blockpool.New(-1, zerolog.Nop()) })
}

// TestGrowDoublesBlockCount verifies Grow doubles block_count until
// capacity covers the requested total, and is a no-op once it does.
func TestGrowDoublesBlockCount(t *testing.T) {
	p := blockpool.New(4, zerolog.Nop())
	require.Equal(t, 0, p.Cap())

	p.Grow(5) // needs 2 blocks of 4 -> cap 8
	require.Equal(t, 8, p.Cap())

	p.Grow(8) // already covered, no-op
	require.Equal(t, 8, p.Cap())

	p.Grow(9) // needs 3 blocks worth -> doubles to 4 blocks -> cap 16
	require.Equal(t, 16, p.Cap())
}

// TestLookupWritesIDAndAssertsBounds verifies Lookup returns a node whose
// ID field matches the requested slot, and panics when id is out of
// [0, nodeCount).
func TestLookupWritesIDAndAssertsBounds(t *testing.T) {
	p := blockpool.New(4, zerolog.Nop())
	p.Grow(10)

	n := p.Lookup(7, 10)
	require.Equal(t, 7, n.ID)

	require.Panics(t, func() { p.Lookup(10, 10) })
	require.Panics(t, func() { p.Lookup(-1, 10) })
}

// TestLookupStableAcrossGrow verifies a Node's address survives a later
// Grow call: growth only appends blocks and reallocates the index, never
// relocating existing slots.
func TestLookupStableAcrossGrow(t *testing.T) {
	p := blockpool.New(4, zerolog.Nop())
	p.Grow(4)

	n := p.Lookup(1, 4)
	n.Props = map[string]any{"k": "v"}

	p.Grow(100)

	again := p.Lookup(1, 100)
	require.Same(t, n, again)
	require.Equal(t, "v", again.Props["k"])
}

// TestIteratorCrossesBlockBoundaries verifies Iter produces ascending IDs
// across multiple blocks and stops at end.
func TestIteratorCrossesBlockBoundaries(t *testing.T) {
	p := blockpool.New(4, zerolog.Nop())
	p.Grow(10)

	it := p.Iter(2, 9, 1)
	var got []int
	for {
		n, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, n.ID)
	}
	require.Equal(t, []int{2, 3, 4, 5, 6, 7, 8}, got)
}

// TestIteratorStride verifies a non-unit stride skips IDs accordingly.
func TestIteratorStride(t *testing.T) {
	p := blockpool.New(4, zerolog.Nop())
	p.Grow(12)

	it := p.Iter(0, 12, 3)
	var got []int
	for {
		n, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, n.ID)
	}
	require.Equal(t, []int{0, 3, 6, 9}, got)
}

// TestIteratorEmptyRange verifies start == end yields no nodes.
func TestIteratorEmptyRange(t *testing.T) {
	p := blockpool.New(4, zerolog.Nop())
	p.Grow(4)

	it := p.Iter(2, 2, 1)
	_, ok := it.Next()
	require.False(t, ok)
}

// TestFreeResetsPool verifies Free drops capacity back to zero.
func TestFreeResetsPool(t *testing.T) {
	p := blockpool.New(4, zerolog.Nop())
	p.Grow(20)
	require.Greater(t, p.Cap(), 0)

	p.Free()
	require.Equal(t, 0, p.Cap())
}
