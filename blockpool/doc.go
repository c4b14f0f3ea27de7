// Package blockpool is the graph's pointer-stable node storage: a chain of
// fixed-capacity block slabs plus a flat index for O(1) ID→slot lookup.
//
// A block is never freed individually and its node slots never move once
// allocated — growth only ever appends new blocks and reallocates the
// index array that points at them. This gives callers two complementary
// ways to reach a Node: by ID (Pool.Lookup, O(1) via the index) and by
// cursor (Pool.Iter, following each block's next link), the latter remaining
// valid as the pool grows because growth never relocates existing slots.
//
// Pool does not know the graph's live node count; callers pass it into
// Lookup so the precondition "id must be a live node" can be asserted
// without this package needing to track a counter it does not own.
package blockpool
